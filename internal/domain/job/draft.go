package job

import "strings"

// Draft is the editable state of the job-posting form.
type Draft struct {
	Title              string
	Description        string
	CategoryID         string
	BudgetType         string
	BudgetMin          *float64
	BudgetMax          *float64
	Currency           string
	Duration           string
	ExperienceLevel    string
	SkillsRequired     []string
	LocationPreference string
	IsRemote           bool
	ScreeningQuestions []string
}

// NewDraft returns a draft with the form defaults.
func NewDraft() Draft {
	return Draft{
		BudgetType:      string(BudgetFixed),
		Currency:        DefaultCurrency,
		ExperienceLevel: string(ExperienceIntermediate),
		IsRemote:        true,
	}
}

// AddSkill appends a trimmed skill unless it is blank or already present.
func (d *Draft) AddSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return false
	}
	for _, s := range d.SkillsRequired {
		if s == skill {
			return false
		}
	}
	d.SkillsRequired = append(d.SkillsRequired, skill)
	return true
}

func (d *Draft) RemoveSkill(skill string) {
	out := d.SkillsRequired[:0]
	for _, s := range d.SkillsRequired {
		if s != skill {
			out = append(out, s)
		}
	}
	d.SkillsRequired = out
}

// AddQuestion appends a trimmed screening question; blanks are ignored.
func (d *Draft) AddQuestion(q string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return false
	}
	d.ScreeningQuestions = append(d.ScreeningQuestions, q)
	return true
}

func (d *Draft) RemoveQuestion(index int) {
	if index < 0 || index >= len(d.ScreeningQuestions) {
		return
	}
	d.ScreeningQuestions = append(d.ScreeningQuestions[:index], d.ScreeningQuestions[index+1:]...)
}
