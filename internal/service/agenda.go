package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/conference-hub/internal/docstore"
	"github.com/example/conference-hub/internal/model"
	"github.com/example/conference-hub/internal/schedule"
	"github.com/example/conference-hub/internal/validation"
)

// AgendaService manages agenda days and drives session placement.
type AgendaService struct {
	days        AgendaDayStore
	sessions    SessionStore
	conferences ConferenceStore
	idGenerator func() string
}

// NewAgendaService creates an agenda service.
func NewAgendaService(days AgendaDayStore, sessions SessionStore, conferences ConferenceStore, idGenerator func() string) *AgendaService {
	return &AgendaService{
		days:        days,
		sessions:    sessions,
		conferences: conferences,
		idGenerator: idGenerator,
	}
}

// Create stores a new agenda day. The conference must exist and at most one
// agenda day may exist per conference calendar date.
func (s *AgendaService) Create(ctx context.Context, day model.AgendaDay) (model.AgendaDay, error) {
	if err := validation.ValidateAgendaDay(day).OrNil(); err != nil {
		return model.AgendaDay{}, err
	}

	_, ok, err := s.conferences.Get(ctx, day.ConferenceID)
	if err != nil {
		return model.AgendaDay{}, fmt.Errorf("load conference: %w", err)
	}
	if !ok {
		return model.AgendaDay{}, notFound("conference not found")
	}

	existing, err := s.days.ListByConference(ctx, day.ConferenceID)
	if err != nil {
		return model.AgendaDay{}, fmt.Errorf("list agenda days: %w", err)
	}
	for _, other := range existing {
		if other.SameDate(day.Date) {
			return model.AgendaDay{}, conflict("an agenda day already exists for this conference date")
		}
	}

	if day.ID == "" {
		day.ID = s.idGenerator()
	}
	created, err := s.days.Insert(ctx, day)
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			return model.AgendaDay{}, conflict("an agenda day with this id already exists")
		}
		return model.AgendaDay{}, fmt.Errorf("store agenda day: %w", err)
	}
	return created, nil
}

// Get returns a single agenda day.
func (s *AgendaService) Get(ctx context.Context, id string) (model.AgendaDay, error) {
	day, ok, err := s.days.Get(ctx, id)
	if err != nil {
		return model.AgendaDay{}, fmt.Errorf("load agenda day: %w", err)
	}
	if !ok {
		return model.AgendaDay{}, notFound("agenda day not found")
	}
	return day, nil
}

// List returns every agenda day.
func (s *AgendaService) List(ctx context.Context) ([]model.AgendaDay, error) {
	return s.days.List(ctx)
}

// ListByConference returns the agenda days of one conference.
func (s *AgendaService) ListByConference(ctx context.Context, conferenceID string) ([]model.AgendaDay, error) {
	return s.days.ListByConference(ctx, conferenceID)
}

// GetByConferenceAndDate returns the agenda day for one conference calendar
// date, matching date components only.
func (s *AgendaService) GetByConferenceAndDate(ctx context.Context, conferenceID string, date time.Time) (model.AgendaDay, error) {
	days, err := s.days.ListByConference(ctx, conferenceID)
	if err != nil {
		return model.AgendaDay{}, fmt.Errorf("list agenda days: %w", err)
	}
	for _, day := range days {
		if day.SameDate(date) {
			return day, nil
		}
	}
	return model.AgendaDay{}, notFound("agenda day not found")
}

// Update replaces an agenda day. Operator edits are last-writer-wins.
func (s *AgendaService) Update(ctx context.Context, day model.AgendaDay) (model.AgendaDay, error) {
	if err := validation.ValidateAgendaDay(day).OrNil(); err != nil {
		return model.AgendaDay{}, err
	}
	if _, err := s.Get(ctx, day.ID); err != nil {
		return model.AgendaDay{}, err
	}
	updated, err := s.days.Put(ctx, day)
	if err != nil {
		return model.AgendaDay{}, fmt.Errorf("store agenda day: %w", err)
	}
	return updated, nil
}

// Delete removes an agenda day.
func (s *AgendaService) Delete(ctx context.Context, id string) error {
	if err := s.days.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return notFound("agenda day not found")
		}
		return fmt.Errorf("delete agenda day: %w", err)
	}
	return nil
}

// PlaceSession schedules a session into the agenda day's track grid.
//
// The session and the agenda day must belong to the same conference and
// calendar date, the session must be accepted or already scheduled, and the
// requested venue/room interval must be free across every track. On success
// the session transitions to Scheduled and both records are persisted in one
// transaction conditional on the agenda day revision the caller read.
func (s *AgendaService) PlaceSession(ctx context.Context, agendaDayID, sessionID, track, venueID, room string) (model.AgendaDay, error) {
	day, ok, err := s.days.Get(ctx, agendaDayID)
	if err != nil {
		return model.AgendaDay{}, fmt.Errorf("load agenda day: %w", err)
	}
	if !ok {
		return model.AgendaDay{}, notFound("agenda day not found")
	}

	session, ok, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.AgendaDay{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return model.AgendaDay{}, notFound("session not found")
	}

	if session.ConferenceID != day.ConferenceID {
		return model.AgendaDay{}, invalidOperation("session is for a different conference")
	}
	if !day.SameDate(session.StartTime) {
		return model.AgendaDay{}, invalidOperation("session date does not match agenda day date")
	}
	if !session.Status.Schedulable() {
		return model.AgendaDay{}, invalidOperation("only accepted or scheduled sessions can be added")
	}

	slotType, err := model.ParseSlotType(session.SessionType)
	if err != nil {
		slotType = model.SlotSession
	}
	slot := model.AgendaTimeSlot{
		SessionID: session.ID,
		Title:     session.Title,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		SlotType:  slotType,
		VenueID:   venueID,
		Room:      room,
	}

	if schedule.FindConflict(day, slot) != nil {
		return model.AgendaDay{}, conflict(fmt.Sprintf(
			"time conflict in venue %s, room %s, or session already scheduled", venueID, room))
	}

	if track == "" {
		track = session.Track
	}
	if track == "" {
		track = "General"
	}

	updated := day.Clone()
	schedule.Insert(&updated, track, slot)
	session.Status = model.StatusScheduled

	if err := s.days.SavePlacement(ctx, updated, session); err != nil {
		if errors.Is(err, docstore.ErrStale) {
			return model.AgendaDay{}, conflict("agenda day was modified concurrently")
		}
		return model.AgendaDay{}, fmt.Errorf("persist placement: %w", err)
	}
	return updated, nil
}

// RemoveSession takes a session off the agenda day. A session whose status is
// Scheduled transitions back to Accepted; the agenda day write happens either
// way so the slot removal always lands.
func (s *AgendaService) RemoveSession(ctx context.Context, agendaDayID, sessionID string) (model.AgendaDay, error) {
	day, ok, err := s.days.Get(ctx, agendaDayID)
	if err != nil {
		return model.AgendaDay{}, fmt.Errorf("load agenda day: %w", err)
	}
	if !ok {
		return model.AgendaDay{}, notFound("agenda day not found")
	}

	updated := day.Clone()
	if !schedule.Remove(&updated, sessionID) {
		return model.AgendaDay{}, notFound("session not found in agenda")
	}

	session, sessionExists, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return model.AgendaDay{}, fmt.Errorf("load session: %w", err)
	}

	if sessionExists && session.Status == model.StatusScheduled {
		session.Status = model.StatusAccepted
		err = s.days.SavePlacement(ctx, updated, session)
	} else {
		err = s.days.UpdateConditional(ctx, updated)
	}
	if err != nil {
		if errors.Is(err, docstore.ErrStale) {
			return model.AgendaDay{}, conflict("agenda day was modified concurrently")
		}
		return model.AgendaDay{}, fmt.Errorf("persist removal: %w", err)
	}
	return updated, nil
}
