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

// CallForPaperService manages submission windows and the proposals that come
// in through them.
type CallForPaperService struct {
	calls       CallForPaperStore
	conferences ConferenceStore
	sessions    SessionStore
	speakers    SpeakerStore
	idGenerator func() string
	now         func() time.Time
}

// NewCallForPaperService creates a call-for-papers service.
func NewCallForPaperService(calls CallForPaperStore, conferences ConferenceStore, sessions SessionStore, speakers SpeakerStore, idGenerator func() string, now func() time.Time) *CallForPaperService {
	return &CallForPaperService{
		calls:       calls,
		conferences: conferences,
		sessions:    sessions,
		speakers:    speakers,
		idGenerator: idGenerator,
		now:         now,
	}
}

// Create opens a new call for papers on an existing conference.
func (s *CallForPaperService) Create(ctx context.Context, call model.CallForPaper) (model.CallForPaper, error) {
	if err := validation.ValidateCallForPaper(call).OrNil(); err != nil {
		return model.CallForPaper{}, err
	}

	_, ok, err := s.conferences.Get(ctx, call.ConferenceID)
	if err != nil {
		return model.CallForPaper{}, fmt.Errorf("load conference: %w", err)
	}
	if !ok {
		return model.CallForPaper{}, notFound("conference not found")
	}

	if call.ID == "" {
		call.ID = s.idGenerator()
	}
	created, err := s.calls.Insert(ctx, call)
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			return model.CallForPaper{}, conflict("a call for papers with this id already exists")
		}
		return model.CallForPaper{}, fmt.Errorf("store call for papers: %w", err)
	}
	return created, nil
}

// Get returns a single call for papers.
func (s *CallForPaperService) Get(ctx context.Context, id string) (model.CallForPaper, error) {
	call, ok, err := s.calls.Get(ctx, id)
	if err != nil {
		return model.CallForPaper{}, fmt.Errorf("load call for papers: %w", err)
	}
	if !ok {
		return model.CallForPaper{}, notFound("call for papers not found")
	}
	return call, nil
}

// List returns every call for papers.
func (s *CallForPaperService) List(ctx context.Context) ([]model.CallForPaper, error) {
	return s.calls.List(ctx)
}

// ListByConference returns the calls of one conference.
func (s *CallForPaperService) ListByConference(ctx context.Context, conferenceID string) ([]model.CallForPaper, error) {
	all, err := s.calls.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, call := range all {
		if call.ConferenceID == conferenceID {
			out = append(out, call)
		}
	}
	return out, nil
}

// Update replaces an existing call for papers.
func (s *CallForPaperService) Update(ctx context.Context, call model.CallForPaper) (model.CallForPaper, error) {
	if err := validation.ValidateCallForPaper(call).OrNil(); err != nil {
		return model.CallForPaper{}, err
	}
	if _, err := s.Get(ctx, call.ID); err != nil {
		return model.CallForPaper{}, err
	}
	updated, err := s.calls.Put(ctx, call)
	if err != nil {
		return model.CallForPaper{}, fmt.Errorf("store call for papers: %w", err)
	}
	return updated, nil
}

// Delete removes a call for papers.
func (s *CallForPaperService) Delete(ctx context.Context, id string) error {
	if err := s.calls.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return notFound("call for papers not found")
		}
		return fmt.Errorf("delete call for papers: %w", err)
	}
	return nil
}

// Close marks a call for papers as no longer accepting submissions. Closing
// an already closed call is a no-op.
func (s *CallForPaperService) Close(ctx context.Context, id string) (model.CallForPaper, error) {
	call, err := s.Get(ctx, id)
	if err != nil {
		return model.CallForPaper{}, err
	}
	if !call.IsOpen {
		return call, nil
	}
	call.IsOpen = false
	updated, err := s.calls.Put(ctx, call)
	if err != nil {
		return model.CallForPaper{}, fmt.Errorf("store call for papers: %w", err)
	}
	return updated, nil
}

// CloseExpired closes every open call whose deadline has passed. It returns
// the number of calls closed and is safe to run repeatedly from a scheduled
// job.
func (s *CallForPaperService) CloseExpired(ctx context.Context) (int, error) {
	open, err := s.calls.ListOpen(ctx)
	if err != nil {
		return 0, fmt.Errorf("list open calls: %w", err)
	}

	now := s.now()
	closed := 0
	for _, call := range open {
		if call.Deadline.After(now) {
			continue
		}
		call.IsOpen = false
		if _, err := s.calls.Put(ctx, call); err != nil {
			return closed, fmt.Errorf("close call %s: %w", call.ID, err)
		}
		closed++
	}
	return closed, nil
}

// Submit files a session proposal against an open call for papers.
//
// The call must be open and past neither end of its window for hard closure,
// the proposal's session type must be one the call accepts, and every
// referenced speaker must exist. Speakers gain membership of the call's
// conference, and the stored session is forced to the Proposed status no
// matter what the client sent.
func (s *CallForPaperService) Submit(ctx context.Context, callID string, session model.Session) (model.Session, error) {
	call, err := s.Get(ctx, callID)
	if err != nil {
		return model.Session{}, err
	}
	if !call.IsOpen {
		return model.Session{}, invalidOperation("call for papers is closed")
	}
	if !call.Deadline.IsZero() && s.now().After(call.Deadline) {
		return model.Session{}, invalidOperation("call for papers deadline has passed")
	}

	session.ConferenceID = call.ConferenceID
	session.CallForPaperID = call.ID
	session.Status = model.StatusProposed

	if err := validation.ValidateSession(session).OrNil(); err != nil {
		return model.Session{}, err
	}
	if !call.AllowsSessionType(session.SessionType) {
		return model.Session{}, invalidOperation(
			fmt.Sprintf("session type %q is not accepted by this call for papers", session.SessionType))
	}

	for _, speakerID := range session.SpeakerIDs {
		speaker, ok, err := s.speakers.Get(ctx, speakerID)
		if err != nil {
			return model.Session{}, fmt.Errorf("load speaker: %w", err)
		}
		if !ok {
			return model.Session{}, invalidOperation(fmt.Sprintf("speaker %s does not exist", speakerID))
		}
		if !speaker.MemberOf(call.ConferenceID) {
			speaker.ConferenceIDs = append(speaker.ConferenceIDs, call.ConferenceID)
			if _, err := s.speakers.Put(ctx, speaker); err != nil {
				return model.Session{}, fmt.Errorf("store speaker: %w", err)
			}
		}
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
