package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameEmail(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"alice@x.com", "alice@x.com", true},
		{" Alice@X.com ", "alice@x.com", true},
		{"alice@x.com", "bob@x.com", false},
		{"", "", false},
		{"  ", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SameEmail(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestEvent_ApplyKeepsOwnership(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	e := NewEvent(EventFields{Title: "Old", EventType: "Meetup"}, "alice@x.com", created)
	e.Apply(EventFields{Title: "New", EventType: "Sports", Location: "Gym"})

	assert.Equal(t, "New", e.Title)
	assert.Equal(t, "Sports", e.EventType)
	assert.Equal(t, "Gym", e.Location)
	assert.Equal(t, "alice@x.com", e.CreatorEmail)
	assert.Equal(t, created, e.CreatedAt)
	assert.True(t, e.IsOwnedBy("ALICE@x.com"))
	assert.False(t, e.IsOwnedBy("bob@x.com"))
}
