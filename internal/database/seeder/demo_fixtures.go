package seeder

import (
	"fmt"
	"path/filepath"
	"strings"
)

type DemoBuyer struct {
	Email       string `yaml:"email"`
	FullName    string `yaml:"full_name"`
	CompanyName string `yaml:"company_name"`
	Location    string `yaml:"location"`
	Verified    bool   `yaml:"verified"`
}

type DemoTalent struct {
	Email           string   `yaml:"email"`
	FullName        string   `yaml:"full_name"`
	Location        string   `yaml:"location"`
	Headline        string   `yaml:"headline"`
	HourlyRate      *float64 `yaml:"hourly_rate"`
	Rating          *float64 `yaml:"rating"`
	TotalJobs       int      `yaml:"total_jobs"`
	ExperienceLevel string   `yaml:"experience_level"`
	Skills          []string `yaml:"skills"`
	Verified        bool     `yaml:"verified"`
}

type DemoJob struct {
	Poster             string   `yaml:"poster"`
	Category           string   `yaml:"category"`
	Title              string   `yaml:"title"`
	Description        string   `yaml:"description"`
	BudgetType         string   `yaml:"budget_type"`
	BudgetMin          *float64 `yaml:"budget_min"`
	BudgetMax          *float64 `yaml:"budget_max"`
	Currency           string   `yaml:"currency"`
	ExperienceLevel    string   `yaml:"experience_level"`
	Skills             []string `yaml:"skills"`
	Duration           string   `yaml:"duration"`
	Remote             *bool    `yaml:"remote"`
	LocationPreference string   `yaml:"location_preference"`
	ScreeningQuestions []string `yaml:"screening_questions"`
}

type DemoData struct {
	Password string       `yaml:"password"`
	Buyers   []DemoBuyer  `yaml:"buyers"`
	Talents  []DemoTalent `yaml:"talents"`
	Jobs     []DemoJob    `yaml:"jobs"`
}

// LoadDemo reads demo.yaml and fills in the posting defaults. Every job must
// name a declared buyer.
func LoadDemo(dir string) (DemoData, error) {
	var d DemoData
	if err := readYAML(filepath.Join(dir, "demo.yaml"), &d); err != nil {
		return DemoData{}, err
	}
	if len(d.Password) < 8 {
		return DemoData{}, fmt.Errorf("demo.yaml: password must be at least 8 characters")
	}

	buyers := map[string]struct{}{}
	for i, b := range d.Buyers {
		d.Buyers[i].Email = strings.ToLower(strings.TrimSpace(b.Email))
		buyers[d.Buyers[i].Email] = struct{}{}
	}
	for i, t := range d.Talents {
		d.Talents[i].Email = strings.ToLower(strings.TrimSpace(t.Email))
		if t.ExperienceLevel == "" {
			d.Talents[i].ExperienceLevel = "intermediate"
		}
	}
	for i, j := range d.Jobs {
		j.Poster = strings.ToLower(strings.TrimSpace(j.Poster))
		if _, ok := buyers[j.Poster]; !ok {
			return DemoData{}, fmt.Errorf("demo.yaml: job %q posted by unknown buyer %q", j.Title, j.Poster)
		}
		if strings.TrimSpace(j.Title) == "" || strings.TrimSpace(j.Category) == "" {
			return DemoData{}, fmt.Errorf("demo.yaml: job %d needs a title and a category", i)
		}
		if j.Currency == "" {
			j.Currency = "INR"
		}
		if j.ExperienceLevel == "" {
			j.ExperienceLevel = "intermediate"
		}
		if j.Remote == nil {
			remote := true
			j.Remote = &remote
		}
		if j.Skills == nil {
			j.Skills = []string{}
		}
		if j.ScreeningQuestions == nil {
			j.ScreeningQuestions = []string{}
		}
		d.Jobs[i] = j
	}
	return d, nil
}
