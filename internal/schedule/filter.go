package schedule

import (
	"sort"
	"strings"

	"github.com/hray3182/FamilyBoard/internal/models"
)

// FilterEvents keeps events whose date falls inside the window and, when the
// person allow-list is non-empty, whose person is listed. Input order is
// preserved and the input slice is never mutated; filtering twice with the
// same arguments is a no-op.
func FilterEvents(events []*models.Event, w Window, persons []string) []*models.Event {
	var allow map[string]struct{}
	if len(persons) > 0 {
		allow = make(map[string]struct{}, len(persons))
		for _, p := range persons {
			allow[p] = struct{}{}
		}
	}

	out := make([]*models.Event, 0, len(events))
	for _, e := range events {
		if !w.Contains(e.Date) {
			continue
		}
		if allow != nil {
			if _, ok := allow[e.Person]; !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// DistinctPersons returns the sorted set of trimmed, non-empty person names
// across the given events. Used to populate the filter control.
func DistinctPersons(events []*models.Event) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range events {
		p := strings.TrimSpace(e.Person)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
