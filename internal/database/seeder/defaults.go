package seeder

// Defaults returns the seeders in dependency order, reading fixtures from dir.
func Defaults(dir string) []Seeder {
	return []Seeder{
		CategoriesSeeder{Dir: dir},
		SkillsSeeder{Dir: dir},
	}
}

// WithDemo appends the development data seeder.
func WithDemo(seeders []Seeder, dir string) []Seeder {
	return append(seeders, DemoSeeder{Dir: dir})
}
