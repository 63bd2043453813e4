package club

import (
	"clubsync/internal/api"
	"clubsync/internal/model"
)

// TeamMemberInput accepts the UI-facing field names (ImageURL, GitHub) and
// serializes them under the backend's wire names ("image", "gitHub"). The
// alias mapping lives here and only here; the cache stores the canonical
// model.TeamMember shape.
type TeamMemberInput struct {
	Name       string `json:"name" validate:"required"`
	RollNumber string `json:"rollNumber" validate:"required"`
	Role       string `json:"role" validate:"required"`
	ImageURL   string `json:"image,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	LinkedIn   string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub     string `json:"gitHub,omitempty" validate:"omitempty,url"`
}

func newTeamSyncer(client *api.Client) *Syncer[model.TeamMember, TeamMemberInput] {
	return newSyncer(client, resource[model.TeamMember, TeamMemberInput]{
		name:       "team",
		base:       "team",
		createVerb: "add",
		createAuth: true,
		listKey:    "teams",
		// creates return "user", updates return "member"; both are tried.
		itemKeys: []string{"member", "user"},
		setID:    func(m *model.TeamMember, id string) { m.ID = id },
	})
}
