package club

import (
	"github.com/google/uuid"

	"clubsync/internal/api"
	"clubsync/internal/model"
)

// AnnouncementInput is the validated field set for an announcement.
type AnnouncementInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	IsActive    bool   `json:"isActive"`
}

func newAnnouncementSyncer(client *api.Client) *Syncer[model.Announcement, AnnouncementInput] {
	return newSyncer(client, resource[model.Announcement, AnnouncementInput]{
		name:       "announcements",
		base:       "announcements",
		createVerb: "create",
		createAuth: true,
		listKey:    "announcements",
		// announcement endpoints answer with a bare record, no envelope key
		itemKeys: nil,
		setID:    func(a *model.Announcement, id string) { a.ID = id },
		// The backend sometimes returns a sparse record here. Fill the gaps
		// from the submitted fields and mint an id when none came back, so
		// the cache never holds a half-empty entry.
		fill: func(a *model.Announcement, in AnnouncementInput) {
			if a.ID == "" {
				a.ID = uuid.NewString()
			}
			if a.Title == "" {
				a.Title = in.Title
			}
			if a.Description == "" {
				a.Description = in.Description
			}
			if a.Date == "" {
				a.Date = in.Date
			}
			if !a.IsActive {
				a.IsActive = in.IsActive
			}
		},
	})
}
