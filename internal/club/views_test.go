package club

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsync/internal/model"
)

func seededStore() *Store {
	s := NewStore(nil)
	s.events.cache.ReplaceAll([]model.Event{
		{ID: "e1", Title: "AI Workshop", Description: "hands on", Location: "Lab 2", Date: "2026-09-10"},
		{ID: "e2", Title: "Hackathon", Description: "24h build", Location: "Auditorium", Date: "2026-05-01"},
		{ID: "e3", Title: "Orientation", Description: "welcome talk", Location: "Seminar hall", Date: "2026-11-20"},
		{ID: "e4", Title: "Alumni meet", Description: "", Location: "", Date: "not-a-date"},
	})
	s.results.cache.ReplaceAll([]model.Result{
		{ID: "r1", EventID: "e2", Winner: []string{"s1"}},
		{ID: "r2", EventID: "e9", Winner: []string{"ghost"}},
	})
	s.students.cache.ReplaceAll([]model.Student{
		{ID: "s1", Name: "Priya Sharma", RegNo: "21ITF001"},
	})
	s.announcements.cache.ReplaceAll([]model.Announcement{
		{ID: "a1", Title: "Recruitment open", IsActive: true},
		{ID: "a2", Title: "Old notice", IsActive: false},
	})
	return s
}

func TestUpcomingAndPastEvents(t *testing.T) {
	s := seededStore()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	up := s.UpcomingEvents(now)
	require.Len(t, up, 3) // e1, e3, plus the unparseable e4 kept as upcoming
	assert.Equal(t, "e1", up[0].ID, "soonest first")
	assert.Equal(t, "e3", up[1].ID)

	past := s.PastEvents(now)
	require.Len(t, past, 1)
	assert.Equal(t, "e2", past[0].ID)
}

func TestUpcomingDoesNotReorderCache(t *testing.T) {
	s := seededStore()
	before := s.events.All()
	s.UpcomingEvents(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, before, s.events.All())
}

func TestSearchEvents(t *testing.T) {
	s := seededStore()

	byTitle := s.SearchEvents("hackathon")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "e2", byTitle[0].ID)

	byLocation := s.SearchEvents("LAB")
	require.Len(t, byLocation, 1)
	assert.Equal(t, "e1", byLocation[0].ID)

	byDescription := s.SearchEvents("welcome")
	require.Len(t, byDescription, 1)
	assert.Equal(t, "e3", byDescription[0].ID)

	assert.Len(t, s.SearchEvents("  "), 4, "blank query matches everything")
	assert.Empty(t, s.SearchEvents("quantum"))
}

func TestActiveAnnouncements(t *testing.T) {
	s := seededStore()
	active := s.ActiveAnnouncements()
	require.Len(t, active, 1)
	assert.Equal(t, "a1", active[0].ID)
}

func TestResultsForEvent(t *testing.T) {
	s := seededStore()
	got := s.ResultsForEvent("e2")
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].ID)
	assert.Empty(t, s.ResultsForEvent("e1"))
}

func TestResolveStudentsKeepsDanglingReferences(t *testing.T) {
	s := seededStore()
	got := s.ResolveStudents([]string{"s1", "ghost"})
	require.Len(t, got, 2)
	assert.Equal(t, "Priya Sharma", got[0].Name)
	assert.Equal(t, model.Student{ID: "ghost", Name: UnknownStudentName}, got[1])
}
