// Package testfixtures provides deterministic clocks, id generators and
// entity builders shared by tests across packages.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/conference-hub/internal/model"
)

var (
	conferenceCounter uint64
	speakerCounter    uint64
	sessionCounter    uint64
	venueCounter      uint64
)

var referenceTime = time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures:
// the morning of the fixture conference's first day.
func ReferenceTime() time.Time {
	return referenceTime
}

// ConferenceOption configures a generated conference fixture.
type ConferenceOption func(*model.Conference)

// NewConference returns a deterministic conference fixture with optional
// overrides.
func NewConference(opts ...ConferenceOption) model.Conference {
	idx := atomic.AddUint64(&conferenceCounter, 1)
	c := model.Conference{
		Meta:      model.Meta{ID: fmt.Sprintf("conf-%03d", idx)},
		Name:      fmt.Sprintf("Conference %03d", idx),
		StartDate: referenceTime.Truncate(24 * time.Hour),
		EndDate:   referenceTime.Truncate(24 * time.Hour).Add(48 * time.Hour),
		IsActive:  true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// SpeakerOption configures a generated speaker fixture.
type SpeakerOption func(*model.Speaker)

// NewSpeaker returns a deterministic speaker fixture with optional overrides.
func NewSpeaker(opts ...SpeakerOption) model.Speaker {
	idx := atomic.AddUint64(&speakerCounter, 1)
	s := model.Speaker{
		Meta:     model.Meta{ID: fmt.Sprintf("spk-%03d", idx)},
		Name:     fmt.Sprintf("Speaker %03d", idx),
		Bio:      "Speaks about Go.",
		Company:  "Example Corp",
		JobTitle: "Engineer",
		Email:    fmt.Sprintf("spk-%03d@example.com", idx),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// SessionOption configures a generated session fixture.
type SessionOption func(*model.Session)

// NewSession returns a deterministic accepted session fixture scheduled for
// the reference morning, with optional overrides.
func NewSession(conferenceID string, speakerID string, opts ...SessionOption) model.Session {
	idx := atomic.AddUint64(&sessionCounter, 1)
	start := referenceTime.Add(time.Duration(idx-1) * time.Hour)
	s := model.Session{
		Meta:         model.Meta{ID: fmt.Sprintf("sess-%03d", idx)},
		ConferenceID: conferenceID,
		Title:        fmt.Sprintf("Session %03d", idx),
		Description:  "A deterministic fixture session.",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Track:        "Main",
		SpeakerIDs:   []string{speakerID},
		Level:        "Intermediate",
		Status:       model.StatusAccepted,
		SessionType:  "Talk",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// VenueOption configures a generated venue fixture.
type VenueOption func(*model.Venue)

// NewVenue returns a deterministic venue fixture with optional overrides.
func NewVenue(opts ...VenueOption) model.Venue {
	idx := atomic.AddUint64(&venueCounter, 1)
	v := model.Venue{
		Meta:     model.Meta{ID: fmt.Sprintf("venue-%03d", idx)},
		Name:     fmt.Sprintf("Venue %03d", idx),
		Address:  fmt.Sprintf("%d Main St", idx),
		City:     "Berlin",
		Country:  "Germany",
		Capacity: 500,
		Rooms: []model.Room{
			{ID: fmt.Sprintf("room-%03d-a", idx), Name: "A", Capacity: 120},
			{ID: fmt.Sprintf("room-%03d-b", idx), Name: "B", Capacity: 60},
		},
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}
