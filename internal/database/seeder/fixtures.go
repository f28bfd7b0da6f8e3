package seeder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type CategoryFixture struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	IconURL     string `yaml:"icon_url"`
	Parent      string `yaml:"parent"`
}

type SkillFixture struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type categoriesFile struct {
	Categories []CategoryFixture `yaml:"categories"`
}

type skillsFile struct {
	Skills []SkillFixture `yaml:"skills"`
}

func LoadCategories(dir string) ([]CategoryFixture, error) {
	var f categoriesFile
	if err := readYAML(filepath.Join(dir, "categories.yaml"), &f); err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]CategoryFixture, 0, len(f.Categories))
	for _, c := range f.Categories {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return nil, fmt.Errorf("categories.yaml: category without name")
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("categories.yaml: duplicate category %q", c.Name)
		}
		seen[c.Name] = struct{}{}
		out = append(out, c)
	}

	// parents must be declared before their children
	declared := map[string]struct{}{}
	for _, c := range out {
		if c.Parent != "" {
			if _, ok := declared[c.Parent]; !ok {
				return nil, fmt.Errorf("categories.yaml: %q references unknown parent %q", c.Name, c.Parent)
			}
		}
		declared[c.Name] = struct{}{}
	}
	return out, nil
}

func LoadSkills(dir string) ([]SkillFixture, error) {
	var f skillsFile
	if err := readYAML(filepath.Join(dir, "skills.yaml"), &f); err != nil {
		return nil, err
	}

	out := make([]SkillFixture, 0, len(f.Skills))
	for _, s := range f.Skills {
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func readYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
