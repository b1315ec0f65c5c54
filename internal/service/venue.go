package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/conference-hub/internal/docstore"
	"github.com/example/conference-hub/internal/model"
	"github.com/example/conference-hub/internal/validation"
)

// VenueService manages venue records, deduplicated by name and address.
type VenueService struct {
	venues      VenueStore
	idGenerator func() string
}

// NewVenueService creates a venue service.
func NewVenueService(venues VenueStore, idGenerator func() string) *VenueService {
	return &VenueService{venues: venues, idGenerator: idGenerator}
}

// Create stores a new venue. When a venue with the same name and address
// already exists the existing record absorbs any new conference memberships
// and is returned instead of creating a duplicate.
func (s *VenueService) Create(ctx context.Context, venue model.Venue) (model.Venue, error) {
	if err := validation.ValidateVenue(venue).OrNil(); err != nil {
		return model.Venue{}, err
	}

	existing, ok, err := s.venues.FindByNameAndAddress(ctx, venue.Name, venue.Address)
	if err != nil {
		return model.Venue{}, fmt.Errorf("look up venue: %w", err)
	}
	if ok {
		return s.mergeMemberships(ctx, existing, venue.ConferenceIDs)
	}

	if venue.ID == "" {
		venue.ID = s.idGenerator()
	}
	created, err := s.venues.Insert(ctx, venue)
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicate) {
			return model.Venue{}, conflict("a venue with this id already exists")
		}
		return model.Venue{}, fmt.Errorf("store venue: %w", err)
	}
	return created, nil
}

func (s *VenueService) mergeMemberships(ctx context.Context, venue model.Venue, conferenceIDs []string) (model.Venue, error) {
	changed := false
	for _, id := range conferenceIDs {
		if id == "" || venue.MemberOf(id) {
			continue
		}
		venue.ConferenceIDs = append(venue.ConferenceIDs, id)
		changed = true
	}
	if !changed {
		return venue, nil
	}
	updated, err := s.venues.Put(ctx, venue)
	if err != nil {
		return model.Venue{}, fmt.Errorf("store venue: %w", err)
	}
	return updated, nil
}

// Get returns a single venue.
func (s *VenueService) Get(ctx context.Context, id string) (model.Venue, error) {
	venue, ok, err := s.venues.Get(ctx, id)
	if err != nil {
		return model.Venue{}, fmt.Errorf("load venue: %w", err)
	}
	if !ok {
		return model.Venue{}, notFound("venue not found")
	}
	return venue, nil
}

// List returns every venue.
func (s *VenueService) List(ctx context.Context) ([]model.Venue, error) {
	return s.venues.List(ctx)
}

// ListByConference returns the venues linked to one conference.
func (s *VenueService) ListByConference(ctx context.Context, conferenceID string) ([]model.Venue, error) {
	all, err := s.venues.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, venue := range all {
		if venue.MemberOf(conferenceID) {
			out = append(out, venue)
		}
	}
	return out, nil
}

// Update replaces an existing venue.
func (s *VenueService) Update(ctx context.Context, venue model.Venue) (model.Venue, error) {
	if err := validation.ValidateVenue(venue).OrNil(); err != nil {
		return model.Venue{}, err
	}
	if _, err := s.Get(ctx, venue.ID); err != nil {
		return model.Venue{}, err
	}
	updated, err := s.venues.Put(ctx, venue)
	if err != nil {
		return model.Venue{}, fmt.Errorf("store venue: %w", err)
	}
	return updated, nil
}

// Delete removes a venue.
func (s *VenueService) Delete(ctx context.Context, id string) error {
	if err := s.venues.Delete(ctx, id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return notFound("venue not found")
		}
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}
