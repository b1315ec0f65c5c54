package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/conference-hub/internal/docstore"
	"github.com/example/conference-hub/internal/model"
	"github.com/example/conference-hub/internal/validation"
)

// AttendeeService manages attendee profiles and their per-conference session
// registrations.
type AttendeeService struct {
	attendees   AttendeeStore
	sessions    SessionStore
	idGenerator func() string
	now         func() time.Time
}

// NewAttendeeService creates an attendee service.
func NewAttendeeService(attendees AttendeeStore, sessions SessionStore, idGenerator func() string, now func() time.Time) *AttendeeService {
	return &AttendeeService{
		attendees:   attendees,
		sessions:    sessions,
		idGenerator: idGenerator,
		now:         now,
	}
}

// Create stores a new attendee. Email addresses are unique; a duplicate is
// rejected rather than merged because two registrations from one address are
// almost always a client retry.
func (s *AttendeeService) Create(ctx context.Context, attendee model.Attendee) (model.Attendee, error) {
	if err := validation.ValidateAttendee(attendee).OrNil(); err != nil {
		return model.Attendee{}, err
	}

	_, ok, err := s.attendees.FindByEmail(ctx, attendee.Email)
	if err != nil {
		return model.Attendee{}, fmt.Errorf("look up attendee by email: %w", err)
	}
	if ok {
		return model.Attendee{}, conflict("an attendee with this email already exists")
	}

	if attendee.ID == "" {
		attendee.ID = s.idGenerator()
	}
	if attendee.RegistrationDate.IsZero() {
		attendee.RegistrationDate = s.now()
	}
	created, err := s.attendees.Insert(ctx, attendee)
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			return model.Attendee{}, conflict("an attendee with this id already exists")
		}
		return model.Attendee{}, fmt.Errorf("store attendee: %w", err)
	}
	return created, nil
}

// Get returns a single attendee.
func (s *AttendeeService) Get(ctx context.Context, id string) (model.Attendee, error) {
	attendee, ok, err := s.attendees.Get(ctx, id)
	if err != nil {
		return model.Attendee{}, fmt.Errorf("load attendee: %w", err)
	}
	if !ok {
		return model.Attendee{}, notFound("attendee not found")
	}
	return attendee, nil
}

// List returns every attendee.
func (s *AttendeeService) List(ctx context.Context) ([]model.Attendee, error) {
	return s.attendees.List(ctx)
}

// ListByConference returns the attendees holding at least one registration
// for the conference.
func (s *AttendeeService) ListByConference(ctx context.Context, conferenceID string) ([]model.Attendee, error) {
	all, err := s.attendees.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, attendee := range all {
		if _, ok := attendee.ConferenceRegistrations[conferenceID]; ok {
			out = append(out, attendee)
		}
	}
	return out, nil
}

// Update replaces an existing attendee.
func (s *AttendeeService) Update(ctx context.Context, attendee model.Attendee) (model.Attendee, error) {
	if err := validation.ValidateAttendee(attendee).OrNil(); err != nil {
		return model.Attendee{}, err
	}
	if _, err := s.Get(ctx, attendee.ID); err != nil {
		return model.Attendee{}, err
	}
	updated, err := s.attendees.Put(ctx, attendee)
	if err != nil {
		return model.Attendee{}, fmt.Errorf("store attendee: %w", err)
	}
	return updated, nil
}

// Delete removes an attendee.
func (s *AttendeeService) Delete(ctx context.Context, id string) error {
	if err := s.attendees.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return notFound("attendee not found")
		}
		return fmt.Errorf("delete attendee: %w", err)
	}
	return nil
}

// RegisterForSession adds a session to the attendee's registrations under the
// session's conference. Registering twice is a no-op.
func (s *AttendeeService) RegisterForSession(ctx context.Context, attendeeID, sessionID string) (model.Attendee, error) {
	attendee, err := s.Get(ctx, attendeeID)
	if err != nil {
		return model.Attendee{}, err
	}
	session, ok, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.Attendee{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return model.Attendee{}, notFound("session not found")
	}

	if attendee.RegisteredFor(session.ConferenceID, sessionID) {
		return attendee, nil
	}
	if attendee.ConferenceRegistrations == nil {
		attendee.ConferenceRegistrations = make(map[string][]string)
	}
	attendee.ConferenceRegistrations[session.ConferenceID] = append(
		attendee.ConferenceRegistrations[session.ConferenceID], sessionID)

	updated, err := s.attendees.Put(ctx, attendee)
	if err != nil {
		return model.Attendee{}, fmt.Errorf("store attendee: %w", err)
	}
	return updated, nil
}

// UnregisterFromSession removes a session registration. When the attendee's
// last registration for a conference goes away the conference entry itself is
// pruned from the map.
func (s *AttendeeService) UnregisterFromSession(ctx context.Context, attendeeID, sessionID string) (model.Attendee, error) {
	attendee, err := s.Get(ctx, attendeeID)
	if err != nil {
		return model.Attendee{}, err
	}

	found := false
	for conferenceID, sessionIDs := range attendee.ConferenceRegistrations {
		for i, id := range sessionIDs {
			if id != sessionID {
				continue
			}
			sessionIDs = append(sessionIDs[:i], sessionIDs[i+1:]...)
			if len(sessionIDs) == 0 {
				delete(attendee.ConferenceRegistrations, conferenceID)
			} else {
				attendee.ConferenceRegistrations[conferenceID] = sessionIDs
			}
			found = true
			break
		}
		if found {
			break
		}
	}
	if !found {
		return model.Attendee{}, notFound("registration not found")
	}

	updated, err := s.attendees.Put(ctx, attendee)
	if err != nil {
		return model.Attendee{}, fmt.Errorf("store attendee: %w", err)
	}
	return updated, nil
}
