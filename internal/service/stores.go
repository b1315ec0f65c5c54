package service

import (
	"context"

	"github.com/example/conference-hub/internal/model"
)

// Store interfaces consumed by the services. The docstore repositories
// satisfy them; tests substitute hand-written stubs.

type ConferenceStore interface {
	Get(ctx context.Context, id string) (model.Conference, bool, error)
	Insert(ctx context.Context, c model.Conference) (model.Conference, error)
	Put(ctx context.Context, c model.Conference) (model.Conference, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Conference, error)
}

type SpeakerStore interface {
	Get(ctx context.Context, id string) (model.Speaker, bool, error)
	Insert(ctx context.Context, s model.Speaker) (model.Speaker, error)
	Put(ctx context.Context, s model.Speaker) (model.Speaker, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Speaker, error)
	FindByEmail(ctx context.Context, email string) (model.Speaker, bool, error)
}

type VenueStore interface {
	Get(ctx context.Context, id string) (model.Venue, bool, error)
	Insert(ctx context.Context, v model.Venue) (model.Venue, error)
	Put(ctx context.Context, v model.Venue) (model.Venue, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Venue, error)
	FindByNameAndAddress(ctx context.Context, name, address string) (model.Venue, bool, error)
}

type SessionStore interface {
	Get(ctx context.Context, id string) (model.Session, bool, error)
	Insert(ctx context.Context, s model.Session) (model.Session, error)
	Put(ctx context.Context, s model.Session) (model.Session, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Session, error)
	ListByConference(ctx context.Context, conferenceID string) ([]model.Session, error)
}

type AttendeeStore interface {
	Get(ctx context.Context, id string) (model.Attendee, bool, error)
	Insert(ctx context.Context, a model.Attendee) (model.Attendee, error)
	Put(ctx context.Context, a model.Attendee) (model.Attendee, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Attendee, error)
	FindByEmail(ctx context.Context, email string) (model.Attendee, bool, error)
}

type CallForPaperStore interface {
	Get(ctx context.Context, id string) (model.CallForPaper, bool, error)
	Insert(ctx context.Context, c model.CallForPaper) (model.CallForPaper, error)
	Put(ctx context.Context, c model.CallForPaper) (model.CallForPaper, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.CallForPaper, error)
	ListOpen(ctx context.Context) ([]model.CallForPaper, error)
}

type AgendaDayStore interface {
	Get(ctx context.Context, id string) (model.AgendaDay, bool, error)
	Insert(ctx context.Context, d model.AgendaDay) (model.AgendaDay, error)
	Put(ctx context.Context, d model.AgendaDay) (model.AgendaDay, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.AgendaDay, error)
	ListByConference(ctx context.Context, conferenceID string) ([]model.AgendaDay, error)
	UpdateConditional(ctx context.Context, day model.AgendaDay) error
	SavePlacement(ctx context.Context, day model.AgendaDay, session model.Session) error
}
