package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return parsed
}

func TestMongoIDIsFoldedIntoID(t *testing.T) {
	var e Event
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"abc123","title":"Hackathon"}`), &e))
	assert.Equal(t, "abc123", e.ID)
	assert.Equal(t, "abc123", e.Key())
}

func TestPlainIDWinsOverLegacy(t *testing.T) {
	var m TeamMember
	require.NoError(t, json.Unmarshal([]byte(`{"id":"m1","_id":"stale","name":"Arjun"}`), &m))
	assert.Equal(t, "m1", m.ID)
}

func TestMissingIDStaysEmpty(t *testing.T) {
	var a Announcement
	require.NoError(t, json.Unmarshal([]byte(`{"title":"notice"}`), &a))
	assert.Empty(t, a.ID)
}

func TestUserIDNormalization(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"u1","email":"a@b.c"}`), &u))
	assert.Equal(t, "u1", u.ID)
}

func TestEventIsPast(t *testing.T) {
	now := mustParse(t, "2026-08-28")

	assert.True(t, Event{Date: "2026-08-27"}.IsPast(now))
	assert.False(t, Event{Date: "2026-08-29"}.IsPast(now))
	assert.False(t, Event{Date: "garbage"}.IsPast(now), "unparseable dates count as upcoming")
}
