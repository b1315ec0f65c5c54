package model

import "time"

// Entity kind tags used to partition the document store.
const (
	KindConference   = "Conference"
	KindSpeaker      = "Speaker"
	KindSession      = "Session"
	KindAttendee     = "Attendee"
	KindVenue        = "Venue"
	KindCallForPaper = "CallForPaper"
	KindAgendaDay    = "AgendaDay"
)

// Meta carries document identity and bookkeeping shared by every entity.
//
// Rev is a monotonically increasing revision maintained by the document
// store, not part of the serialized body. Agenda placement uses it for
// conditional writes; plain CRUD ignores it and writes last-wins.
type Meta struct {
	ID        string     `json:"id"`
	Rev       int64      `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
