package club

import (
	"clubsync/internal/api"
	"clubsync/internal/model"
)

// StudentInput is the validated field set for member registration. Student
// creation is the one public write: the registration form is open to
// visitors, so no credential is attached.
type StudentInput struct {
	RegNo         string `json:"regno" validate:"required"`
	Name          string `json:"name" validate:"required"`
	StudentEmail  string `json:"studentEmail" validate:"required,email"`
	Year          string `json:"year,omitempty"`
	Section       string `json:"section,omitempty"`
	Image         string `json:"image,omitempty"`
	LinkedIn      string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub        string `json:"github,omitempty" validate:"omitempty,url"`
	PersonalEmail string `json:"personalEmail,omitempty" validate:"omitempty,email"`
	Portfolio     string `json:"portfolio,omitempty" validate:"omitempty,url"`
}

func newStudentSyncer(client *api.Client) *Syncer[model.Student, StudentInput] {
	return newSyncer(client, resource[model.Student, StudentInput]{
		name:       "students",
		base:       "students",
		createVerb: "add",
		createAuth: false,
		listKey:    "students",
		// creation answers with "Student" (capitalized), updates with "user",
		// single reads with "student"
		itemKeys: []string{"Student", "student", "user"},
		setID:    func(s *model.Student, id string) { s.ID = id },
	})
}
