package mockapi

import "github.com/google/uuid"

// seed loads a small demo dataset so the public pages have something to show
// against a fresh mock backend.
func (s *Server) seed() {
	byBase := make(map[string]*table, len(s.tables))
	for _, t := range s.tables {
		byBase[t.base] = t
	}

	hackathonID := uuid.NewString()
	studentID := uuid.NewString()

	byBase["events"].docs = []map[string]any{
		{
			"_id":         hackathonID,
			"title":       "Annual Hackathon",
			"description": "24-hour build sprint across all years.",
			"date":        "2025-03-01",
			"time":        "09:00",
			"location":    "Block A Auditorium",
			"type":        "competition",
			"status":      "completed",
		},
		{
			"_id":         uuid.NewString(),
			"title":       "Intro to Open Source",
			"description": "Hands-on session on contributing to open source.",
			"date":        "2027-01-15",
			"time":        "14:00",
			"location":    "Lab 3",
			"type":        "workshop",
			"status":      "scheduled",
		},
	}

	byBase["students"].docs = []map[string]any{
		{
			"_id":          studentID,
			"regno":        "21ITF001",
			"name":         "Priya Sharma",
			"studentEmail": "priya@college.edu",
			"year":         "3",
			"section":      "B",
		},
	}

	byBase["results"].docs = []map[string]any{
		{
			"_id":              uuid.NewString(),
			"eventID":          hackathonID,
			"eventName":        "Annual Hackathon",
			"winner":           []string{studentID},
			"runnerUp":         []string{},
			"date":             "2025-03-02",
			"noOfParticipants": 80,
			"venue":            "Block A Auditorium",
		},
	}

	byBase["team"].docs = []map[string]any{
		{
			"id":         uuid.NewString(),
			"name":       "Arjun Mehta",
			"rollNumber": "21ITF042",
			"role":       "President",
			"email":      "arjun@college.edu",
		},
	}

	byBase["professors"].docs = []map[string]any{
		{
			"_id":         uuid.NewString(),
			"name":        "Dr. K. Raman",
			"designation": "Professor",
			"department":  "Information Technology",
			"experience":  "18 years",
		},
	}

	byBase["announcements"].docs = []map[string]any{
		{
			"_id":         uuid.NewString(),
			"title":       "Recruitment open",
			"description": "Core team applications close Friday.",
			"date":        "2026-08-01",
			"isActive":    true,
		},
	}
}
