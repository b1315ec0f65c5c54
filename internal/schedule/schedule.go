// Package schedule holds the pure agenda placement rules: interval overlap,
// room conflict detection and ordered slot maintenance. It never touches
// storage, which keeps the rules trivially testable.
package schedule

import (
	"sort"
	"time"

	"github.com/example/conference-hub/internal/model"
)

// Overlaps reports whether two open intervals share any time. Back-to-back
// slots where one ends exactly when the other starts do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Conflict describes why a slot cannot be placed on an agenda day.
type Conflict struct {
	Track    string
	Existing model.AgendaTimeSlot
	// SameSession is true when the session is already on the agenda,
	// false when the conflict is a room double-booking.
	SameSession bool
}

// FindConflict scans every track of the day for a reason the candidate slot
// cannot be placed. A conflict exists when an existing slot books the same
// venue and room for an overlapping interval, or when the candidate's
// session already appears anywhere on the day. Returns nil when the slot
// fits.
func FindConflict(day model.AgendaDay, candidate model.AgendaTimeSlot) *Conflict {
	for track, slots := range day.TimeSlotsByTrack {
		for _, existing := range slots {
			if candidate.SessionID != "" && existing.SessionID == candidate.SessionID {
				return &Conflict{Track: track, Existing: existing, SameSession: true}
			}
			if existing.VenueID == candidate.VenueID && existing.Room == candidate.Room &&
				Overlaps(existing.StartTime, existing.EndTime, candidate.StartTime, candidate.EndTime) {
				return &Conflict{Track: track, Existing: existing}
			}
		}
	}
	return nil
}

// Insert adds the slot to the named track and re-sorts the track by start
// time. The sort is stable so slots sharing a start time keep their
// insertion order.
func Insert(day *model.AgendaDay, track string, slot model.AgendaTimeSlot) {
	if day.TimeSlotsByTrack == nil {
		day.TimeSlotsByTrack = make(map[string][]model.AgendaTimeSlot)
	}
	slots := append(day.TimeSlotsByTrack[track], slot)
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})
	day.TimeSlotsByTrack[track] = slots
}

// Remove deletes the slots linked to the session and prunes tracks that
// become empty. The scan is exhaustive across all tracks, removing the first
// match in each, so a day that somehow carries the session in several tracks
// is fully cleaned up. Returns false when the session is not on the day.
func Remove(day *model.AgendaDay, sessionID string) bool {
	removed := false
	for track, slots := range day.TimeSlotsByTrack {
		for i, slot := range slots {
			if slot.SessionID != sessionID {
				continue
			}
			slots = append(slots[:i], slots[i+1:]...)
			if len(slots) == 0 {
				delete(day.TimeSlotsByTrack, track)
			} else {
				day.TimeSlotsByTrack[track] = slots
			}
			removed = true
			break
		}
	}
	return removed
}

// Contains reports whether the session is scheduled anywhere on the day.
func Contains(day model.AgendaDay, sessionID string) bool {
	for _, slots := range day.TimeSlotsByTrack {
		for _, slot := range slots {
			if slot.SessionID == sessionID {
				return true
			}
		}
	}
	return false
}
