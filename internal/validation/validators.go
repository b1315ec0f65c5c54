package validation

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/example/conference-hub/internal/model"
)

var validLevels = []string{"Beginner", "Intermediate", "Advanced"}

// ValidateConference checks field constraints on a conference.
func ValidateConference(c model.Conference) *Error {
	vErr := &Error{}

	requireString(vErr, "name", c.Name, 200)
	requireString(vErr, "description", c.Description, 2000)

	if c.StartDate.IsZero() {
		vErr.Add("startDate", "start date is required")
	}
	if c.EndDate.IsZero() {
		vErr.Add("endDate", "end date is required")
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate) {
		vErr.Add("endDate", "end date must not be before start date")
	}

	optionalURL(vErr, "website", c.Website)
	optionalURL(vErr, "logoUrl", c.LogoURL)

	return vErr
}

// ValidateSpeaker checks field constraints on a speaker.
func ValidateSpeaker(s model.Speaker) *Error {
	vErr := &Error{}

	requireString(vErr, "name", s.Name, 100)
	requireString(vErr, "bio", s.Bio, 2000)
	requireString(vErr, "company", s.Company, 100)
	requireString(vErr, "jobTitle", s.JobTitle, 100)
	requireEmail(vErr, "email", s.Email)
	optionalURL(vErr, "website", s.Website)
	optionalURL(vErr, "photoUrl", s.PhotoURL)

	return vErr
}

// ValidateVenue checks field constraints on a venue and its rooms.
func ValidateVenue(v model.Venue) *Error {
	vErr := &Error{}

	requireString(vErr, "name", v.Name, 200)
	requireString(vErr, "address", v.Address, 300)
	requireString(vErr, "city", v.City, 100)
	requireString(vErr, "country", v.Country, 100)
	if v.Capacity <= 0 {
		vErr.Add("capacity", "capacity must be positive")
	}
	for _, room := range v.Rooms {
		if strings.TrimSpace(room.Name) == "" {
			vErr.Add("rooms", "room name is required")
		}
		if room.Capacity < 0 {
			vErr.Add("rooms", "room capacity must not be negative")
		}
	}

	return vErr
}

// ValidateSession checks field constraints on a session proposal.
func ValidateSession(s model.Session) *Error {
	vErr := &Error{}

	requireString(vErr, "title", s.Title, 200)
	requireString(vErr, "description", s.Description, 2000)
	requireString(vErr, "conferenceId", s.ConferenceID, 0)
	requireString(vErr, "track", s.Track, 100)
	requireString(vErr, "sessionType", s.SessionType, 50)

	if s.StartTime.IsZero() {
		vErr.Add("startTime", "start time is required")
	}
	if s.EndTime.IsZero() {
		vErr.Add("endTime", "end time is required")
	}
	if !s.StartTime.IsZero() && !s.EndTime.IsZero() && !s.StartTime.Before(s.EndTime) {
		vErr.Add("time", "start time must be before end time")
	}

	if strings.TrimSpace(s.Level) == "" {
		vErr.Add("level", "level is required")
	} else if !isValidLevel(s.Level) {
		vErr.Add("level", "level must be Beginner, Intermediate, or Advanced")
	}

	if len(s.SpeakerIDs) == 0 {
		vErr.Add("speakerIds", "at least one speaker must be assigned")
	}

	return vErr
}

// ValidateAttendee checks field constraints on an attendee.
func ValidateAttendee(a model.Attendee) *Error {
	vErr := &Error{}

	requireString(vErr, "name", a.Name, 100)
	requireEmail(vErr, "email", a.Email)

	return vErr
}

// ValidateCallForPaper checks field constraints on a call for papers.
func ValidateCallForPaper(c model.CallForPaper) *Error {
	vErr := &Error{}

	requireString(vErr, "conferenceId", c.ConferenceID, 0)
	requireString(vErr, "title", c.Title, 200)
	requireString(vErr, "description", c.Description, 2000)

	if c.StartDate.IsZero() {
		vErr.Add("startDate", "start date is required")
	}
	if c.Deadline.IsZero() {
		vErr.Add("deadline", "deadline is required")
	}
	if !c.StartDate.IsZero() && !c.Deadline.IsZero() && c.Deadline.Before(c.StartDate) {
		vErr.Add("deadline", "deadline must not be before start date")
	}
	if len(c.SessionTypes) == 0 {
		vErr.Add("sessionTypes", "at least one session type is required")
	}
	if c.ContactEmail != "" {
		requireEmail(vErr, "contactEmail", c.ContactEmail)
	}
	optionalURL(vErr, "infoUrl", c.InfoURL)

	return vErr
}

// ValidateAgendaDay checks field constraints on an agenda day and every slot
// it carries.
func ValidateAgendaDay(d model.AgendaDay) *Error {
	vErr := &Error{}

	requireString(vErr, "conferenceId", d.ConferenceID, 0)
	requireString(vErr, "title", d.Title, 200)
	if d.Date.IsZero() {
		vErr.Add("date", "date is required")
	}
	if d.Description != "" && len(d.Description) > 1000 {
		vErr.Add("description", "description cannot exceed 1000 characters")
	}

	for track, slots := range d.TimeSlotsByTrack {
		if strings.TrimSpace(track) == "" {
			vErr.Add("timeSlotsByTrack", "track name cannot be empty")
		}
		for _, slot := range slots {
			vErr.Merge(validateTimeSlot(slot))
		}
	}

	return vErr
}

func validateTimeSlot(slot model.AgendaTimeSlot) *Error {
	vErr := &Error{}

	if slot.StartTime.IsZero() {
		vErr.Add("slot.startTime", "slot start time is required")
	}
	if slot.EndTime.IsZero() {
		vErr.Add("slot.endTime", "slot end time is required")
	}
	if !slot.StartTime.IsZero() && !slot.EndTime.IsZero() && !slot.StartTime.Before(slot.EndTime) {
		vErr.Add("slot.time", "slot start time must be before end time")
	}

	if _, err := model.ParseSlotType(string(slot.SlotType)); err != nil {
		vErr.Add("slot.slotType", "slot type is invalid")
	} else if slot.SlotType.RequiresLocation() {
		if strings.TrimSpace(slot.VenueID) == "" {
			vErr.Add("slot.venueId", "venue is required for session time slots")
		}
		if strings.TrimSpace(slot.Room) == "" {
			vErr.Add("slot.room", "room is required for session time slots")
		}
	}

	// Breaks and other unlinked entries need a display title of their own.
	if slot.SessionID == "" && strings.TrimSpace(slot.Title) == "" {
		vErr.Add("slot.title", "title is required when no session is linked")
	}

	return vErr
}

func requireString(vErr *Error, field, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		vErr.Add(field, field+" is required")
		return
	}
	if maxLen > 0 && len(value) > maxLen {
		vErr.Add(field, field+" is too long")
	}
}

func requireEmail(vErr *Error, field, value string) {
	if strings.TrimSpace(value) == "" {
		vErr.Add(field, "email is required")
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		vErr.Add(field, "email is invalid")
	}
}

func optionalURL(vErr *Error, field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if _, err := url.ParseRequestURI(value); err != nil {
		vErr.Add(field, "must be a valid URL")
	}
}

func isValidLevel(level string) bool {
	for _, valid := range validLevels {
		if strings.EqualFold(level, valid) {
			return true
		}
	}
	return false
}
