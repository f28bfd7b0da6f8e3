package repository

import (
	"strconv"
	"strings"

	"workspark/internal/discovery"
)

const jobSelectColumns = `j.id, j.poster_id, j.category_id, COALESCE(c.name, ''),
	j.title, j.description, j.budget_type, j.budget_min, j.budget_max, j.currency,
	j.experience_level, j.skills_required, j.is_remote, j.location_preference, j.duration,
	j.screening_questions, j.status, j.applications_count, j.expires_at, j.created_at,
	COALESCE(p.full_name, ''), COALESCE(p.company_name, ''), COALESCE(p.location, ''), COALESCE(p.is_verified, false)`

const jobFromClause = `FROM jobs j
	LEFT JOIN profiles p ON p.id = j.poster_id
	LEFT JOIN job_categories c ON c.id = j.category_id`

// sqlArgs collects positional parameters while a statement is assembled.
type sqlArgs struct {
	values []any
}

func (a *sqlArgs) add(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// buildJobListSQL renders q as one parameterized statement. Only the
// predicates present in q are emitted.
func buildJobListSQL(q discovery.JobQuery) (string, []any) {
	var args sqlArgs
	var where []string

	if q.Status != "" {
		where = append(where, "j.status = "+args.add(string(q.Status)))
	}
	if q.CategoryID != nil {
		where = append(where, "j.category_id = "+args.add(*q.CategoryID))
	}
	if q.ExperienceLevel != nil {
		where = append(where, "j.experience_level = "+args.add(string(*q.ExperienceLevel)))
	}
	if text := strings.TrimSpace(q.SearchText); text != "" {
		p := args.add("%" + escapeLike(text) + "%")
		where = append(where, "(j.title ILIKE "+p+" OR j.description ILIKE "+p+")")
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(jobSelectColumns)
	b.WriteString("\n")
	b.WriteString(jobFromClause)
	if len(where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	if q.OrderByCreatedDesc {
		b.WriteString("\nORDER BY j.created_at DESC, j.id DESC")
	}
	if q.Limit > 0 {
		b.WriteString("\nLIMIT ")
		b.WriteString(args.add(q.Limit))
	}
	return b.String(), args.values
}

// buildTalentListSQL renders a talent query ordered by rating, unrated last.
func buildTalentListSQL(q discovery.TalentQuery) (string, []any) {
	var args sqlArgs

	var b strings.Builder
	b.WriteString(`SELECT t.id, t.profile_id, t.headline, t.hourly_rate, t.rating, t.skills, t.total_jobs,
	t.experience_level, t.availability, t.created_at,
	COALESCE(p.full_name, ''), COALESCE(p.location, ''), COALESCE(p.avatar_url, ''), p.is_verified
FROM talent_profiles t
	JOIN profiles p ON p.id = t.profile_id`)
	if skill := strings.TrimSpace(q.Skill); skill != "" {
		b.WriteString("\nWHERE t.skills @> jsonb_build_array(")
		b.WriteString(args.add(skill))
		b.WriteString("::text)")
	}
	b.WriteString("\nORDER BY t.rating DESC NULLS LAST, t.created_at DESC")
	if q.Limit > 0 {
		b.WriteString("\nLIMIT ")
		b.WriteString(args.add(q.Limit))
	}
	return b.String(), args.values
}
