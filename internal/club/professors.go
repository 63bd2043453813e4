package club

import (
	"clubsync/internal/api"
	"clubsync/internal/model"
)

// ProfessorInput is the validated field set for a faculty mentor.
type ProfessorInput struct {
	Name          string `json:"name" validate:"required"`
	Designation   string `json:"designation" validate:"required"`
	Department    string `json:"department" validate:"required"`
	Experience    string `json:"experience,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	LinkedIn      string `json:"linkedIn,omitempty" validate:"omitempty,url"`
	GoogleScholar string `json:"googleScholar,omitempty" validate:"omitempty,url"`
	Message       string `json:"message,omitempty"`
	Image         string `json:"image,omitempty"`
}

func newProfessorSyncer(client *api.Client) *Syncer[model.Professor, ProfessorInput] {
	return newSyncer(client, resource[model.Professor, ProfessorInput]{
		name:       "professors",
		base:       "professors",
		createVerb: "add",
		createAuth: true,
		// the backend lists professors under "faculties", of all things
		listKey:  "faculties",
		itemKeys: []string{"professor"},
		setID:    func(p *model.Professor, id string) { p.ID = id },
	})
}
