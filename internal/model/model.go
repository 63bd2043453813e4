// Package model defines the six resource records mirrored from the club
// backend, plus the authenticated user. Records carry exactly one identifier
// convention: the backend's `_id`/`id` split is folded into ID while
// decoding (see ids.go).
package model

import "time"

// Event is a club event, upcoming or past.
type Event struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Date             string `json:"date"` // YYYY-MM-DD
	Time             string `json:"time,omitempty"`
	Location         string `json:"location"`
	RegistrationLink string `json:"registrationLink,omitempty"`
	Poster           string `json:"poster,omitempty"`
	Type             string `json:"type,omitempty"`
	Status           string `json:"status,omitempty"`
}

func (e Event) Key() string { return e.ID }

// IsPast reports whether the event date lies before now. Events with an
// unparseable date are treated as upcoming rather than dropped.
func (e Event) IsPast(now time.Time) bool {
	d, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return false
	}
	return d.Before(now.Truncate(24 * time.Hour))
}

// Result records the outcome of a past event. Winner and RunnerUp hold
// student ids; the backend does not enforce them as foreign keys, so they may
// dangle.
type Result struct {
	ID               string   `json:"id"`
	EventID          string   `json:"eventID"`
	EventName        string   `json:"eventName"`
	Winner           []string `json:"winner"`
	RunnerUp         []string `json:"runnerUp"`
	Date             string   `json:"date"`
	NoOfParticipants int      `json:"noOfParticipants"`
	Venue            string   `json:"venue,omitempty"`
	Video            string   `json:"video,omitempty"`
	ResultSheet      string   `json:"resultSheet,omitempty"`
	EventsImages     []string `json:"eventsImages,omitempty"`
}

func (r Result) Key() string { return r.ID }

// TeamMember is a member of the association's core team. Image and GitHub use
// the backend's wire names; the UI-facing aliases (imageUrl, github) are
// mapped at the synchronizer boundary, never stored.
type TeamMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RollNumber string `json:"rollNumber"`
	Role       string `json:"role"`
	Image      string `json:"image,omitempty"`
	Email      string `json:"email,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	GitHub     string `json:"gitHub,omitempty"`
}

func (m TeamMember) Key() string { return m.ID }

// Professor is a faculty mentor shown on the team page.
type Professor struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Designation   string `json:"designation"`
	Department    string `json:"department"`
	Experience    string `json:"experience,omitempty"`
	Email         string `json:"email,omitempty"`
	LinkedIn      string `json:"linkedIn,omitempty"`
	GoogleScholar string `json:"googleScholar,omitempty"`
	Message       string `json:"message,omitempty"`
	Image         string `json:"image,omitempty"`
}

func (p Professor) Key() string { return p.ID }

// Student is a registered association member.
type Student struct {
	ID            string `json:"id"`
	RegNo         string `json:"regno"`
	Name          string `json:"name"`
	StudentEmail  string `json:"studentEmail"`
	Year          string `json:"year,omitempty"`
	Section       string `json:"section,omitempty"`
	Image         string `json:"image,omitempty"`
	LinkedIn      string `json:"linkedin,omitempty"`
	GitHub        string `json:"github,omitempty"`
	PersonalEmail string `json:"personalEmail,omitempty"`
	Portfolio     string `json:"portfolio,omitempty"`
}

func (s Student) Key() string { return s.ID }

// Announcement is a dated notice, shown publicly while active.
type Announcement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	IsActive    bool   `json:"isActive"`
}

func (a Announcement) Key() string { return a.ID }

// User is the authenticated admin identity returned by /auth/me and
// /auth/login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

func (u User) Key() string { return u.ID }
