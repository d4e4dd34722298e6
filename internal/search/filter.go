// Package search implements the directory filter: narrowing a fetched mentor
// list by a (category, text) query. Pure and deterministic; callers own the
// empty-result fallback policy.
package search

import (
	"strconv"
	"strings"

	"mentorhub_backend/internal/models"
)

// Category selects which mentor attribute the filter text is matched against.
type Category string

const (
	CategoryTechnologies Category = "technologies"
	CategoryFullName     Category = "fullName"
	CategoryExperience   Category = "yearsOfExperience"
)

// Query is a (category, text) pair narrowing a directory listing.
type Query struct {
	Category Category
	Text     string
}

// IsEmpty reports whether the query filters nothing.
func (q Query) IsEmpty() bool {
	return q.Category == "" && q.Text == ""
}

// Filter returns the mentors matching the query, preserving input order.
//
// Rules:
//   - empty query: the input is returned unchanged
//   - technologies: any entry contains the text, case-insensitively
//   - fullName: "First Last" contains the text, case-insensitively
//   - yearsOfExperience: the string form of the number equals the text
//     exactly ("5" never matches 15 or 50)
//   - any other category: nothing matches
//
// The result is never nil once filtering happens, so an empty match set
// serializes as [] rather than null.
func Filter(mentors []models.Mentor, q Query) []models.Mentor {
	if q.IsEmpty() {
		return mentors
	}

	text := strings.ToLower(strings.TrimSpace(q.Text))

	matched := make([]models.Mentor, 0, len(mentors))
	for _, m := range mentors {
		if matches(&m, q.Category, text) {
			matched = append(matched, m)
		}
	}
	return matched
}

func matches(m *models.Mentor, category Category, text string) bool {
	switch category {
	case CategoryTechnologies:
		for _, tech := range m.Technologies {
			if strings.Contains(strings.ToLower(tech), text) {
				return true
			}
		}
		return false
	case CategoryFullName:
		fullName := strings.ToLower(m.FirstName + " " + m.LastName)
		return strings.Contains(fullName, text)
	case CategoryExperience:
		return strconv.Itoa(m.YearsOfExperience) == text
	default:
		return false
	}
}
