package club

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"clubsync/internal/api"
	"clubsync/internal/model"
)

// Store owns the six resource caches and their synchronizers. It is created
// once at application start and handed to consumers; there is no ambient
// global state.
type Store struct {
	events        *Syncer[model.Event, EventInput]
	results       *Syncer[model.Result, ResultInput]
	team          *Syncer[model.TeamMember, TeamMemberInput]
	professors    *Syncer[model.Professor, ProfessorInput]
	students      *Syncer[model.Student, StudentInput]
	announcements *Syncer[model.Announcement, AnnouncementInput]

	ready atomic.Bool
}

// NewStore builds a store with empty caches over the given client.
func NewStore(client *api.Client) *Store {
	return &Store{
		events:        newEventSyncer(client),
		results:       newResultSyncer(client),
		team:          newTeamSyncer(client),
		professors:    newProfessorSyncer(client),
		students:      newStudentSyncer(client),
		announcements: newAnnouncementSyncer(client),
	}
}

func (s *Store) Events() *Syncer[model.Event, EventInput] { return s.events }

func (s *Store) Results() *Syncer[model.Result, ResultInput] { return s.results }

func (s *Store) Team() *Syncer[model.TeamMember, TeamMemberInput] { return s.team }

func (s *Store) Professors() *Syncer[model.Professor, ProfessorInput] { return s.professors }

func (s *Store) Students() *Syncer[model.Student, StudentInput] { return s.students }

func (s *Store) Announcements() *Syncer[model.Announcement, AnnouncementInput] {
	return s.announcements
}

// Ready reports whether the initial load has settled. Until then, consumers
// should treat empty caches as "not loaded yet", not as "no data exists".
func (s *Store) Ready() bool { return s.ready.Load() }

// loadable lets the loader treat the six differently-typed syncers uniformly.
type loadable interface {
	Name() string
	load(ctx context.Context) error
}

func (s *Syncer[T, In]) load(ctx context.Context) error { return s.loadAll(ctx) }

// LoadReport records the outcome of a bulk load, per resource.
type LoadReport struct {
	Failed map[string]error
}

// Ok reports whether every resource loaded.
func (r *LoadReport) Ok() bool { return len(r.Failed) == 0 }

// Err summarizes the failed resources, or nil when all succeeded.
func (r *LoadReport) Err() error {
	if r.Ok() {
		return nil
	}
	names := make([]string, 0, len(r.Failed))
	for name := range r.Failed {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Errorf("failed to load: %s", strings.Join(names, ", "))
}

// Load fetches all six collections concurrently and populates the caches.
// Each fetch resolves independently: one resource's failure never blocks the
// others from populating. Ready flips true once all six have settled,
// success or not.
func (s *Store) Load(ctx context.Context) *LoadReport {
	report := &LoadReport{Failed: make(map[string]error)}
	targets := []loadable{s.events, s.results, s.team, s.professors, s.students, s.announcements}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, t := range targets {
		wg.Add(1)
		go func(t loadable) {
			defer wg.Done()
			if err := t.load(ctx); err != nil {
				mu.Lock()
				report.Failed[t.Name()] = err
				mu.Unlock()
			}
		}(t)
	}
	wg.Wait()

	s.ready.Store(true)
	return report
}
