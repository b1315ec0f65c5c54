// Package ics renders agenda days as iCalendar documents so attendees can
// pull a conference day straight into their calendar client.
package ics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/example/conference-hub/internal/model"
)

const productID = "-//conference-hub//agenda//EN"

// AgendaDay serializes one agenda day as an iCalendar document with a VEVENT
// per time slot. Tracks are emitted in name order so output is deterministic.
// venueNames maps venue ids to display names for the LOCATION property;
// unresolved ids fall back to the raw id.
func AgendaDay(day model.AgendaDay, venueNames map[string]string, now func() time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if day.Title != "" {
		cal.SetName(day.Title)
	}

	tracks := make([]string, 0, len(day.TimeSlotsByTrack))
	for track := range day.TimeSlotsByTrack {
		tracks = append(tracks, track)
	}
	sort.Strings(tracks)

	stamp := now().UTC()
	for _, track := range tracks {
		for i, slot := range day.TimeSlotsByTrack[track] {
			event := cal.AddEvent(eventUID(day, track, i, slot))
			event.SetDtStampTime(stamp)
			event.SetStartAt(slot.StartTime)
			event.SetEndAt(slot.EndTime)
			event.SetSummary(eventSummary(slot))
			if location := eventLocation(slot, venueNames); location != "" {
				event.SetLocation(location)
			}
			description := fmt.Sprintf("Track: %s", track)
			if slot.Notes != "" {
				description += "\n" + slot.Notes
			}
			event.SetDescription(description)
		}
	}

	return cal.Serialize()
}

// eventUID must be stable across exports so calendar clients update events
// in place instead of duplicating them.
func eventUID(day model.AgendaDay, track string, index int, slot model.AgendaTimeSlot) string {
	if slot.SessionID != "" {
		return fmt.Sprintf("%s-%s@conference-hub", day.ID, slot.SessionID)
	}
	return fmt.Sprintf("%s-%s-%d@conference-hub", day.ID, strings.ToLower(track), index)
}

func eventSummary(slot model.AgendaTimeSlot) string {
	if slot.Title != "" {
		return slot.Title
	}
	return string(slot.SlotType)
}

func eventLocation(slot model.AgendaTimeSlot, venueNames map[string]string) string {
	venue := slot.VenueID
	if name, ok := venueNames[slot.VenueID]; ok {
		venue = name
	}
	switch {
	case venue != "" && slot.Room != "":
		return fmt.Sprintf("%s, room %s", venue, slot.Room)
	case venue != "":
		return venue
	default:
		return slot.Room
	}
}
