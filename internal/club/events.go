package club

import (
	"clubsync/internal/api"
	"clubsync/internal/model"
)

// EventInput is the validated field set for creating or updating an event.
// ImageURL is the UI-facing name; the backend stores it as "poster".
type EventInput struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string `json:"time,omitempty"`
	Location         string `json:"location" validate:"required"`
	RegistrationLink string `json:"registrationLink,omitempty" validate:"omitempty,url"`
	ImageURL         string `json:"poster,omitempty"`
	Type             string `json:"type,omitempty"`
	Status           string `json:"status,omitempty"`
}

func newEventSyncer(client *api.Client) *Syncer[model.Event, EventInput] {
	return newSyncer(client, resource[model.Event, EventInput]{
		name:       "events",
		base:       "events",
		createVerb: "create",
		createAuth: true,
		listKey:    "events",
		itemKeys:   []string{"event"},
		setID:      func(e *model.Event, id string) { e.ID = id },
	})
}
