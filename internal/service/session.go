package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/conference-hub/internal/docstore"
	"github.com/example/conference-hub/internal/model"
	"github.com/example/conference-hub/internal/validation"
)

// SessionService manages session records and the review workflow that moves
// them through the status state machine.
type SessionService struct {
	sessions    SessionStore
	conferences ConferenceStore
	speakers    SpeakerStore
	idGenerator func() string
}

// NewSessionService creates a session service.
func NewSessionService(sessions SessionStore, conferences ConferenceStore, speakers SpeakerStore, idGenerator func() string) *SessionService {
	return &SessionService{
		sessions:    sessions,
		conferences: conferences,
		speakers:    speakers,
		idGenerator: idGenerator,
	}
}

// Create stores a new session. The conference and every referenced speaker
// must exist; a blank status defaults to Proposed.
func (s *SessionService) Create(ctx context.Context, session model.Session) (model.Session, error) {
	if err := validation.ValidateSession(session).OrNil(); err != nil {
		return model.Session{}, err
	}

	_, ok, err := s.conferences.Get(ctx, session.ConferenceID)
	if err != nil {
		return model.Session{}, fmt.Errorf("load conference: %w", err)
	}
	if !ok {
		return model.Session{}, notFound("conference not found")
	}
	for _, speakerID := range session.SpeakerIDs {
		_, ok, err := s.speakers.Get(ctx, speakerID)
		if err != nil {
			return model.Session{}, fmt.Errorf("load speaker: %w", err)
		}
		if !ok {
			return model.Session{}, invalidOperation(fmt.Sprintf("speaker %s does not exist", speakerID))
		}
	}

	if session.Status == "" {
		session.Status = model.StatusProposed
	} else if _, err := model.ParseSessionStatus(string(session.Status)); err != nil {
		return model.Session{}, invalidOperation(fmt.Sprintf("invalid session status %q", session.Status))
	}

	if session.ID == "" {
		session.ID = s.idGenerator()
	}
	created, err := s.sessions.Insert(ctx, session)
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			return model.Session{}, conflict("a session with this id already exists")
		}
		return model.Session{}, fmt.Errorf("store session: %w", err)
	}
	return created, nil
}

// Get returns a single session.
func (s *SessionService) Get(ctx context.Context, id string) (model.Session, error) {
	session, ok, err := s.sessions.Get(ctx, id)
	if err != nil {
		return model.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return model.Session{}, notFound("session not found")
	}
	return session, nil
}

// List returns every session.
func (s *SessionService) List(ctx context.Context) ([]model.Session, error) {
	return s.sessions.List(ctx)
}

// ListByConference returns the sessions of one conference.
func (s *SessionService) ListByConference(ctx context.Context, conferenceID string) ([]model.Session, error) {
	return s.sessions.ListByConference(ctx, conferenceID)
}

// ListByTrack returns the sessions assigned to a track, across conferences.
func (s *SessionService) ListByTrack(ctx context.Context, track string) ([]model.Session, error) {
	return s.filter(ctx, func(session model.Session) bool {
		return session.Track == track
	})
}

// ListByTag returns the sessions carrying a tag, ignoring case.
func (s *SessionService) ListByTag(ctx context.Context, tag string) ([]model.Session, error) {
	return s.filter(ctx, func(session model.Session) bool {
		return session.HasTag(tag)
	})
}

// ListBySpeaker returns the sessions a speaker is assigned to.
func (s *SessionService) ListBySpeaker(ctx context.Context, speakerID string) ([]model.Session, error) {
	return s.filter(ctx, func(session model.Session) bool {
		return session.HasSpeaker(speakerID)
	})
}

// ListByStatus returns the sessions in a given review status. The status
// string is parsed against the closed set and rejected when unknown.
func (s *SessionService) ListByStatus(ctx context.Context, status string) ([]model.Session, error) {
	parsed, err := model.ParseSessionStatus(status)
	if err != nil {
		return nil, invalidOperation(fmt.Sprintf("invalid session status %q", status))
	}
	return s.filter(ctx, func(session model.Session) bool {
		return session.Status == parsed
	})
}

// ListByConferenceAndStatus narrows ListByStatus to one conference.
func (s *SessionService) ListByConferenceAndStatus(ctx context.Context, conferenceID, status string) ([]model.Session, error) {
	parsed, err := model.ParseSessionStatus(status)
	if err != nil {
		return nil, invalidOperation(fmt.Sprintf("invalid session status %q", status))
	}
	return s.filter(ctx, func(session model.Session) bool {
		return session.ConferenceID == conferenceID && session.Status == parsed
	})
}

func (s *SessionService) filter(ctx context.Context, keep func(model.Session) bool) ([]model.Session, error) {
	all, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, session := range all {
		if keep(session) {
			out = append(out, session)
		}
	}
	return out, nil
}

// Update replaces an existing session.
func (s *SessionService) Update(ctx context.Context, session model.Session) (model.Session, error) {
	if err := validation.ValidateSession(session).OrNil(); err != nil {
		return model.Session{}, err
	}
	if _, err := s.Get(ctx, session.ID); err != nil {
		return model.Session{}, err
	}
	if _, err := model.ParseSessionStatus(string(session.Status)); err != nil {
		return model.Session{}, invalidOperation(fmt.Sprintf("invalid session status %q", session.Status))
	}
	updated, err := s.sessions.Put(ctx, session)
	if err != nil {
		return model.Session{}, fmt.Errorf("store session: %w", err)
	}
	return updated, nil
}

// Delete removes a session.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return notFound("session not found")
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// UpdateStatus moves a session to a new review status. The status string is
// parsed against the closed set; unknown values are rejected rather than
// stored.
func (s *SessionService) UpdateStatus(ctx context.Context, id, status string) (model.Session, error) {
	parsed, err := model.ParseSessionStatus(status)
	if err != nil {
		return model.Session{}, invalidOperation(fmt.Sprintf("invalid session status %q", status))
	}
	session, err := s.Get(ctx, id)
	if err != nil {
		return model.Session{}, err
	}
	session.Status = parsed
	updated, err := s.sessions.Put(ctx, session)
	if err != nil {
		return model.Session{}, fmt.Errorf("store session: %w", err)
	}
	return updated, nil
}

// Review attaches reviewer notes to a session and optionally moves its
// status in the same write.
func (s *SessionService) Review(ctx context.Context, id, notes, status string) (model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return model.Session{}, err
	}
	session.ReviewNotes = notes
	if status != "" {
		parsed, err := model.ParseSessionStatus(status)
		if err != nil {
			return model.Session{}, invalidOperation(fmt.Sprintf("invalid session status %q", status))
		}
		session.Status = parsed
	}
	updated, err := s.sessions.Put(ctx, session)
	if err != nil {
		return model.Session{}, fmt.Errorf("store session: %w", err)
	}
	return updated, nil
}
