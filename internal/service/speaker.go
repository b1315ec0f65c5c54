package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/conference-hub/internal/docstore"
	"github.com/example/conference-hub/internal/model"
	"github.com/example/conference-hub/internal/validation"
)

// SpeakerService manages speaker records. Speakers are deduplicated by email
// address so one person keeps a single profile across conferences.
type SpeakerService struct {
	speakers    SpeakerStore
	idGenerator func() string
}

// NewSpeakerService creates a speaker service.
func NewSpeakerService(speakers SpeakerStore, idGenerator func() string) *SpeakerService {
	return &SpeakerService{speakers: speakers, idGenerator: idGenerator}
}

// Create stores a new speaker. When a speaker with the same email already
// exists, no duplicate is created; instead the existing profile absorbs any
// new conference memberships and is returned.
func (s *SpeakerService) Create(ctx context.Context, speaker model.Speaker) (model.Speaker, error) {
	if err := validation.ValidateSpeaker(speaker).OrNil(); err != nil {
		return model.Speaker{}, err
	}

	existing, ok, err := s.speakers.FindByEmail(ctx, speaker.Email)
	if err != nil {
		return model.Speaker{}, fmt.Errorf("look up speaker by email: %w", err)
	}
	if ok {
		return s.mergeMemberships(ctx, existing, speaker.ConferenceIDs)
	}

	if speaker.ID == "" {
		speaker.ID = s.idGenerator()
	}
	created, err := s.speakers.Insert(ctx, speaker)
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			return model.Speaker{}, conflict("a speaker with this id already exists")
		}
		return model.Speaker{}, fmt.Errorf("store speaker: %w", err)
	}
	return created, nil
}

// AddToConference links an existing speaker to a conference, returning the
// updated profile. Linking an already linked conference is a no-op.
func (s *SpeakerService) AddToConference(ctx context.Context, speakerID, conferenceID string) (model.Speaker, error) {
	speaker, err := s.Get(ctx, speakerID)
	if err != nil {
		return model.Speaker{}, err
	}
	return s.mergeMemberships(ctx, speaker, []string{conferenceID})
}

func (s *SpeakerService) mergeMemberships(ctx context.Context, speaker model.Speaker, conferenceIDs []string) (model.Speaker, error) {
	changed := false
	for _, id := range conferenceIDs {
		if id == "" || speaker.MemberOf(id) {
			continue
		}
		speaker.ConferenceIDs = append(speaker.ConferenceIDs, id)
		changed = true
	}
	if !changed {
		return speaker, nil
	}
	updated, err := s.speakers.Put(ctx, speaker)
	if err != nil {
		return model.Speaker{}, fmt.Errorf("store speaker: %w", err)
	}
	return updated, nil
}

// Get returns a single speaker.
func (s *SpeakerService) Get(ctx context.Context, id string) (model.Speaker, error) {
	speaker, ok, err := s.speakers.Get(ctx, id)
	if err != nil {
		return model.Speaker{}, fmt.Errorf("load speaker: %w", err)
	}
	if !ok {
		return model.Speaker{}, notFound("speaker not found")
	}
	return speaker, nil
}

// List returns every speaker.
func (s *SpeakerService) List(ctx context.Context) ([]model.Speaker, error) {
	return s.speakers.List(ctx)
}

// ListByConference returns the speakers linked to one conference.
func (s *SpeakerService) ListByConference(ctx context.Context, conferenceID string) ([]model.Speaker, error) {
	all, err := s.speakers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, speaker := range all {
		if speaker.MemberOf(conferenceID) {
			out = append(out, speaker)
		}
	}
	return out, nil
}

// Update replaces an existing speaker.
func (s *SpeakerService) Update(ctx context.Context, speaker model.Speaker) (model.Speaker, error) {
	if err := validation.ValidateSpeaker(speaker).OrNil(); err != nil {
		return model.Speaker{}, err
	}
	if _, err := s.Get(ctx, speaker.ID); err != nil {
		return model.Speaker{}, err
	}
	updated, err := s.speakers.Put(ctx, speaker)
	if err != nil {
		return model.Speaker{}, fmt.Errorf("store speaker: %w", err)
	}
	return updated, nil
}

// Delete removes a speaker.
func (s *SpeakerService) Delete(ctx context.Context, id string) error {
	if err := s.speakers.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return notFound("speaker not found")
		}
		return fmt.Errorf("delete speaker: %w", err)
	}
	return nil
}
