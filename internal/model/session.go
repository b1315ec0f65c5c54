package model

import (
	"fmt"
	"strings"
	"time"
)

// SessionStatus is the closed set of review/scheduling states for a session.
type SessionStatus string

const (
	StatusProposed    SessionStatus = "Proposed"
	StatusUnderReview SessionStatus = "UnderReview"
	StatusAccepted    SessionStatus = "Accepted"
	StatusRejected    SessionStatus = "Rejected"
	StatusScheduled   SessionStatus = "Scheduled"
	StatusCancelled   SessionStatus = "Cancelled"
	StatusCompleted   SessionStatus = "Completed"
)

var sessionStatuses = []SessionStatus{
	StatusProposed,
	StatusUnderReview,
	StatusAccepted,
	StatusRejected,
	StatusScheduled,
	StatusCancelled,
	StatusCompleted,
}

// ParseSessionStatus resolves a status string case-insensitively against the
// closed set, rejecting anything else.
func ParseSessionStatus(value string) (SessionStatus, error) {
	trimmed := strings.TrimSpace(value)
	for _, status := range sessionStatuses {
		if strings.EqualFold(trimmed, string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid session status %q", value)
}

// Schedulable reports whether a session in this status may be placed onto an
// agenda. Only accepted and already-scheduled sessions qualify.
func (s SessionStatus) Schedulable() bool {
	return s == StatusAccepted || s == StatusScheduled
}

// Session represents a talk, workshop or panel proposed for a conference.
type Session struct {
	Meta
	ConferenceID   string        `json:"conferenceId"`
	CallForPaperID string        `json:"callForPaperId,omitempty"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	StartTime      time.Time     `json:"startTime"`
	EndTime        time.Time     `json:"endTime"`
	Track          string        `json:"track"`
	SpeakerIDs     []string      `json:"speakerIds"`
	Level          string        `json:"level"`
	Tags           []string      `json:"tags,omitempty"`
	Status         SessionStatus `json:"status"`
	MaxAttendees   *int          `json:"maxAttendees,omitempty"`
	ReviewNotes    string        `json:"reviewNotes,omitempty"`
	SessionType    string        `json:"sessionType"`
}

// Kind returns the partition tag for sessions.
func (Session) Kind() string { return KindSession }

// PrimarySpeakerID returns the first assigned speaker, or empty when none.
// Read-only view; callers mutate SpeakerIDs directly.
func (s Session) PrimarySpeakerID() string {
	if len(s.SpeakerIDs) == 0 {
		return ""
	}
	return s.SpeakerIDs[0]
}

// Duration returns the session length derived from its time range.
func (s Session) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// HasTag reports whether the session carries the tag, ignoring case.
func (s Session) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// HasSpeaker reports whether the speaker is assigned to the session.
func (s Session) HasSpeaker(speakerID string) bool {
	for _, id := range s.SpeakerIDs {
		if id == speakerID {
			return true
		}
	}
	return false
}
