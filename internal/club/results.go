package club

import (
	"clubsync/internal/api"
	"clubsync/internal/model"
)

// ResultInput is the validated field set for recording an event result.
// Winner and RunnerUp carry student ids; they are not checked against the
// students cache; dangling references degrade to an unknown placeholder at
// display time.
type ResultInput struct {
	EventID          string   `json:"eventID" validate:"required"`
	EventName        string   `json:"eventName" validate:"required"`
	Winner           []string `json:"winner" validate:"required,min=1"`
	RunnerUp         []string `json:"runnerUp,omitempty"`
	Date             string   `json:"date" validate:"required,datetime=2006-01-02"`
	NoOfParticipants int      `json:"noOfParticipants" validate:"gte=0"`
	Venue            string   `json:"venue,omitempty"`
	Video            string   `json:"video,omitempty" validate:"omitempty,url"`
	ResultSheet      string   `json:"resultSheet,omitempty"`
	EventsImages     []string `json:"eventsImages,omitempty"`
}

func newResultSyncer(client *api.Client) *Syncer[model.Result, ResultInput] {
	return newSyncer(client, resource[model.Result, ResultInput]{
		name:       "results",
		base:       "results",
		createVerb: "create",
		createAuth: true,
		listKey:    "results",
		itemKeys:   []string{"result"},
		setID:      func(r *model.Result, id string) { r.ID = id },
	})
}
