package model

import (
	"fmt"
	"strings"
	"time"
)

// SlotType is the closed set of agenda time slot categories.
type SlotType string

const (
	SlotSession      SlotType = "Session"
	SlotBreak        SlotType = "Break"
	SlotKeynote      SlotType = "Keynote"
	SlotWorkshop     SlotType = "Workshop"
	SlotRegistration SlotType = "Registration"
	SlotPanel        SlotType = "Panel"
	SlotTalk         SlotType = "Talk"
)

var slotTypes = []SlotType{
	SlotSession,
	SlotBreak,
	SlotKeynote,
	SlotWorkshop,
	SlotRegistration,
	SlotPanel,
	SlotTalk,
}

// ParseSlotType resolves a slot type string case-insensitively against the
// closed set, rejecting anything else.
func ParseSlotType(value string) (SlotType, error) {
	trimmed := strings.TrimSpace(value)
	for _, st := range slotTypes {
		if strings.EqualFold(trimmed, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid slot type %q", value)
}

// RequiresLocation reports whether slots of this type must name a venue and
// room. Breaks and registration desks float free of the booking grid.
func (s SlotType) RequiresLocation() bool {
	switch s {
	case SlotSession, SlotKeynote, SlotWorkshop, SlotPanel, SlotTalk:
		return true
	default:
		return false
	}
}

// AgendaDay is the schedule for one conference calendar date. At most one
// agenda day exists per (conference, date) pair.
//
// TimeSlotsByTrack maps a track name to its slots, kept sorted ascending by
// start time after every mutation. The agenda day exclusively owns the map
// and every slot value within it.
type AgendaDay struct {
	Meta
	ConferenceID     string                      `json:"conferenceId"`
	Date             time.Time                   `json:"date"`
	Title            string                      `json:"title"`
	Description      string                      `json:"description,omitempty"`
	TimeSlotsByTrack map[string][]AgendaTimeSlot `json:"timeSlotsByTrack"`
}

// Kind returns the partition tag for agenda days.
func (AgendaDay) Kind() string { return KindAgendaDay }

// SameDate reports whether t falls on the agenda day's calendar date,
// comparing date components only.
func (d AgendaDay) SameDate(t time.Time) bool {
	dy, dm, dd := d.Date.Date()
	ty, tm, td := t.Date()
	return dy == ty && dm == tm && dd == td
}

// Clone returns a deep copy of the agenda day so callers can mutate slot
// lists without aliasing stored state.
func (d AgendaDay) Clone() AgendaDay {
	out := d
	if d.TimeSlotsByTrack != nil {
		out.TimeSlotsByTrack = make(map[string][]AgendaTimeSlot, len(d.TimeSlotsByTrack))
		for track, slots := range d.TimeSlotsByTrack {
			out.TimeSlotsByTrack[track] = append([]AgendaTimeSlot(nil), slots...)
		}
	}
	return out
}

// AgendaTimeSlot is one scheduled interval within a track. SessionID is empty
// for breaks and other non-session entries.
type AgendaTimeSlot struct {
	SessionID string    `json:"sessionId,omitempty"`
	Title     string    `json:"title,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	SlotType  SlotType  `json:"slotType"`
	VenueID   string    `json:"venueId,omitempty"`
	Room      string    `json:"room,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}
