package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/conference-hub/internal/docstore"
	"github.com/example/conference-hub/internal/model"
	"github.com/example/conference-hub/internal/validation"
)

// ConferenceService manages conference records.
type ConferenceService struct {
	conferences ConferenceStore
	idGenerator func() string
}

// NewConferenceService creates a conference service.
func NewConferenceService(conferences ConferenceStore, idGenerator func() string) *ConferenceService {
	return &ConferenceService{conferences: conferences, idGenerator: idGenerator}
}

// Create stores a new conference.
func (s *ConferenceService) Create(ctx context.Context, c model.Conference) (model.Conference, error) {
	if err := validation.ValidateConference(c).OrNil(); err != nil {
		return model.Conference{}, err
	}
	if c.ID == "" {
		c.ID = s.idGenerator()
	}
	created, err := s.conferences.Insert(ctx, c)
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			return model.Conference{}, conflict("a conference with this id already exists")
		}
		return model.Conference{}, fmt.Errorf("store conference: %w", err)
	}
	return created, nil
}

// Get returns a single conference.
func (s *ConferenceService) Get(ctx context.Context, id string) (model.Conference, error) {
	c, ok, err := s.conferences.Get(ctx, id)
	if err != nil {
		return model.Conference{}, fmt.Errorf("load conference: %w", err)
	}
	if !ok {
		return model.Conference{}, notFound("conference not found")
	}
	return c, nil
}

// List returns every conference.
func (s *ConferenceService) List(ctx context.Context) ([]model.Conference, error) {
	return s.conferences.List(ctx)
}

// ListActive returns the conferences currently flagged active.
func (s *ConferenceService) ListActive(ctx context.Context) ([]model.Conference, error) {
	all, err := s.conferences.List(ctx)
	if err != nil {
		return nil, err
	}
	active := all[:0]
	for _, c := range all {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

// Update replaces an existing conference.
func (s *ConferenceService) Update(ctx context.Context, c model.Conference) (model.Conference, error) {
	if err := validation.ValidateConference(c).OrNil(); err != nil {
		return model.Conference{}, err
	}
	if _, err := s.Get(ctx, c.ID); err != nil {
		return model.Conference{}, err
	}
	updated, err := s.conferences.Put(ctx, c)
	if err != nil {
		return model.Conference{}, fmt.Errorf("store conference: %w", err)
	}
	return updated, nil
}

// Delete removes a conference.
func (s *ConferenceService) Delete(ctx context.Context, id string) error {
	if err := s.conferences.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return notFound("conference not found")
		}
		return fmt.Errorf("delete conference: %w", err)
	}
	return nil
}
