package tutor

import (
	"strings"

	"mentu/models"
)

// wildcard reports whether a filter value matches everything. The directory
// UI sends "all"; an absent query parameter arrives as "".
func wildcard(v string) bool {
	return v == "" || v == "all"
}

// matchesSearch does a case-insensitive substring check against the tutor's
// name and each of their subjects.
func matchesSearch(t models.Tutor, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(t.Name), needle) {
		return true
	}
	for _, subject := range t.Subjects {
		if strings.Contains(strings.ToLower(subject), needle) {
			return true
		}
	}
	return false
}

// Filter applies the directory's three criteria conjunctively and preserves
// the source order. It is pure: the input slice is never modified.
func Filter(tutors []models.Tutor, query models.TutorQuery) []models.Tutor {
	out := make([]models.Tutor, 0, len(tutors))
	for _, t := range tutors {
		if query.Search != "" && !matchesSearch(t, query.Search) {
			continue
		}
		if !wildcard(query.Subject) && !t.HasSubject(query.Subject) {
			continue
		}
		if !wildcard(query.SessionType) && !t.OffersSessionType(models.SessionType(query.SessionType)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Subjects returns the unique subjects across the given tutors in first-seen
// order, for the directory's subject filter dropdown.
func Subjects(tutors []models.Tutor) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tutors {
		for _, subject := range t.Subjects {
			if !seen[subject] {
				seen[subject] = true
				out = append(out, subject)
			}
		}
	}
	return out
}
