package model

import "encoding/json"

// The backend is split between two identifier conventions: Mongo-shaped
// resources serialize `_id` while others use `id`. Both are folded into the
// canonical ID field here, at the decode boundary, so exactly one convention
// ever reaches a cache.

func legacyID(b []byte) string {
	var aux struct {
		ID string `json:"_id"`
	}
	_ = json.Unmarshal(b, &aux)
	return aux.ID
}

func (e *Event) UnmarshalJSON(b []byte) error {
	type alias Event
	if err := json.Unmarshal(b, (*alias)(e)); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = legacyID(b)
	}
	return nil
}

func (r *Result) UnmarshalJSON(b []byte) error {
	type alias Result
	if err := json.Unmarshal(b, (*alias)(r)); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = legacyID(b)
	}
	return nil
}

func (m *TeamMember) UnmarshalJSON(b []byte) error {
	type alias TeamMember
	if err := json.Unmarshal(b, (*alias)(m)); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = legacyID(b)
	}
	return nil
}

func (p *Professor) UnmarshalJSON(b []byte) error {
	type alias Professor
	if err := json.Unmarshal(b, (*alias)(p)); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = legacyID(b)
	}
	return nil
}

func (s *Student) UnmarshalJSON(b []byte) error {
	type alias Student
	if err := json.Unmarshal(b, (*alias)(s)); err != nil {
		return err
	}
	if s.ID == "" {
		s.ID = legacyID(b)
	}
	return nil
}

func (a *Announcement) UnmarshalJSON(b []byte) error {
	type alias Announcement
	if err := json.Unmarshal(b, (*alias)(a)); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = legacyID(b)
	}
	return nil
}

func (u *User) UnmarshalJSON(b []byte) error {
	type alias User
	if err := json.Unmarshal(b, (*alias)(u)); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = legacyID(b)
	}
	return nil
}
