package club

import (
	"sort"
	"strings"
	"time"

	"clubsync/internal/model"
)

// Derived views over the caches. These never reorder or mutate cache
// contents; they copy, filter, and sort for display.

// UnknownStudentName labels dangling winner/runner-up references.
const UnknownStudentName = "Unknown"

// UpcomingEvents returns events whose date has not passed, soonest first.
func (s *Store) UpcomingEvents(now time.Time) []model.Event {
	return sortByDate(filterEvents(s.events.All(), func(e model.Event) bool {
		return !e.IsPast(now)
	}), true)
}

// PastEvents returns events whose date has passed, most recent first.
func (s *Store) PastEvents(now time.Time) []model.Event {
	return sortByDate(filterEvents(s.events.All(), func(e model.Event) bool {
		return e.IsPast(now)
	}), false)
}

// SearchEvents returns events whose title, description, or location contains
// query, case-insensitively. An empty query matches everything.
func (s *Store) SearchEvents(query string) []model.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.events.All()
	}
	return filterEvents(s.events.All(), func(e model.Event) bool {
		return strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Location), q)
	})
}

// ActiveAnnouncements returns announcements currently flagged active.
func (s *Store) ActiveAnnouncements() []model.Announcement {
	var out []model.Announcement
	for _, a := range s.announcements.All() {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out
}

// ResultsForEvent returns results recorded against the given event id.
func (s *Store) ResultsForEvent(eventID string) []model.Result {
	var out []model.Result
	for _, r := range s.results.All() {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out
}

// ResolveStudents maps student ids to cached records. Dangling references
// resolve to a placeholder named UnknownStudentName rather than being
// dropped, so winner lists keep their length.
func (s *Store) ResolveStudents(ids []string) []model.Student {
	out := make([]model.Student, 0, len(ids))
	for _, id := range ids {
		if student, ok := s.students.Cached(id); ok {
			out = append(out, student)
			continue
		}
		out = append(out, model.Student{ID: id, Name: UnknownStudentName})
	}
	return out
}

func filterEvents(events []model.Event, keep func(model.Event) bool) []model.Event {
	var out []model.Event
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func sortByDate(events []model.Event, ascending bool) []model.Event {
	sort.SliceStable(events, func(i, j int) bool {
		di, _ := time.Parse("2006-01-02", events[i].Date)
		dj, _ := time.Parse("2006-01-02", events[j].Date)
		if ascending {
			return di.Before(dj)
		}
		return dj.Before(di)
	})
	return events
}
