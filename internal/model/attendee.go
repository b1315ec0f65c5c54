package model

import (
	"strings"
	"time"
)

// Attendee represents a person registered for sessions across conferences.
//
// ConferenceRegistrations maps a conference id to the session ids the attendee
// registered for within that conference. An attendee is identified by email.
type Attendee struct {
	Meta
	ConferenceRegistrations map[string][]string `json:"conferenceRegistrations,omitempty"`
	Name                    string              `json:"name"`
	Email                   string              `json:"email"`
	Company                 string              `json:"company,omitempty"`
	JobTitle                string              `json:"jobTitle,omitempty"`
	RegistrationDate        time.Time           `json:"registrationDate"`
}

// Kind returns the partition tag for attendees.
func (Attendee) Kind() string { return KindAttendee }

// FirstName returns the leading word of the attendee's full name.
func (a Attendee) FirstName() string {
	parts := strings.Fields(a.Name)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// LastName returns everything after the first word of the full name.
func (a Attendee) LastName() string {
	parts := strings.Fields(a.Name)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}

// RegisteredFor reports whether the attendee is registered for the session
// within the given conference.
func (a Attendee) RegisteredFor(conferenceID, sessionID string) bool {
	for _, id := range a.ConferenceRegistrations[conferenceID] {
		if id == sessionID {
			return true
		}
	}
	return false
}
