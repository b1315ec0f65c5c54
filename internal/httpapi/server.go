// Package httpapi exposes the conference services over a JSON HTTP API.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/example/conference-hub/internal/service"
)

// API bundles the application services behind the HTTP handlers.
type API struct {
	conferences *service.ConferenceService
	speakers    *service.SpeakerService
	venues      *service.VenueService
	sessions    *service.SessionService
	attendees   *service.AttendeeService
	calls       *service.CallForPaperService
	agenda      *service.AgendaService

	respond responder
}

// New creates the API facade.
func New(
	conferences *service.ConferenceService,
	speakers *service.SpeakerService,
	venues *service.VenueService,
	sessions *service.SessionService,
	attendees *service.AttendeeService,
	calls *service.CallForPaperService,
	agenda *service.AgendaService,
	logger *slog.Logger,
) *API {
	return &API{
		conferences: conferences,
		speakers:    speakers,
		venues:      venues,
		sessions:    sessions,
		attendees:   attendees,
		calls:       calls,
		agenda:      agenda,
		respond:     newResponder(logger),
	}
}

// Router builds the chi router with the full API surface mounted under /api.
func (a *API) Router(logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.Get("/healthz", a.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/conferences", func(r chi.Router) {
			r.Get("/", a.listConferences)
			r.Post("/", a.createConference)
			r.Get("/active", a.listActiveConferences)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getConference)
				r.Put("/", a.updateConference)
				r.Delete("/", a.deleteConference)
				r.Get("/speakers", a.listConferenceSpeakers)
				r.Get("/sessions", a.listConferenceSessions)
				r.Get("/attendees", a.listConferenceAttendees)
				r.Get("/venues", a.listConferenceVenues)
			})
		})

		r.Route("/speakers", func(r chi.Router) {
			r.Get("/", a.listSpeakers)
			r.Post("/", a.createSpeaker)
			r.Get("/conference/{conferenceId}", a.listSpeakersByConference)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getSpeaker)
				r.Put("/", a.updateSpeaker)
				r.Delete("/", a.deleteSpeaker)
			})
		})

		r.Route("/venues", func(r chi.Router) {
			r.Get("/", a.listVenues)
			r.Post("/", a.createVenue)
			r.Get("/conference/{conferenceId}", a.listVenuesByConference)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getVenue)
				r.Put("/", a.updateVenue)
				r.Delete("/", a.deleteVenue)
			})
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", a.listSessions)
			r.Post("/", a.createSession)
			r.Get("/conference/{conferenceId}", a.listSessionsByConference)
			r.Get("/track/{track}", a.listSessionsByTrack)
			r.Get("/tag/{tag}", a.listSessionsByTag)
			r.Get("/speaker/{speakerId}", a.listSessionsBySpeaker)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getSession)
				r.Put("/", a.updateSession)
				r.Delete("/", a.deleteSession)
			})
		})

		r.Route("/sessionmanagement", func(r chi.Router) {
			r.Get("/status/{status}", a.listSessionsByStatus)
			r.Get("/conference/{conferenceId}/status/{status}", a.listSessionsByConferenceAndStatus)
			r.Put("/{id}/status/{status}", a.updateSessionStatus)
			r.Put("/{id}/review", a.reviewSession)
		})

		r.Route("/attendees", func(r chi.Router) {
			r.Get("/", a.listAttendees)
			r.Post("/", a.createAttendee)
			r.Get("/conference/{conferenceId}", a.listAttendeesByConference)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getAttendee)
				r.Put("/", a.updateAttendee)
				r.Delete("/", a.deleteAttendee)
				r.Post("/sessions/{sessionId}", a.registerAttendee)
				r.Delete("/sessions/{sessionId}", a.unregisterAttendee)
			})
		})

		r.Route("/callforpapers", func(r chi.Router) {
			r.Get("/", a.listCallForPapers)
			r.Post("/", a.createCallForPaper)
			r.Get("/conference/{conferenceId}", a.listCallForPapersByConference)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getCallForPaper)
				r.Put("/", a.updateCallForPaper)
				r.Delete("/", a.deleteCallForPaper)
				r.Post("/close", a.closeCallForPaper)
				r.Post("/submit", a.submitProposal)
			})
		})

		r.Route("/agenda", func(r chi.Router) {
			r.Get("/", a.listAgendaDays)
			r.Post("/", a.createAgendaDay)
			r.Get("/conference/{conferenceId}", a.listAgendaDaysByConference)
			r.Get("/conference/{conferenceId}/date/{date}", a.getAgendaDayByDate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", a.getAgendaDay)
				r.Put("/", a.updateAgendaDay)
				r.Delete("/", a.deleteAgendaDay)
				r.Get("/ical", a.exportAgendaDayICS)
				r.Post("/sessions/{sessionId}", a.placeSession)
				r.Delete("/sessions/{sessionId}", a.removeSession)
			})
		})
	})

	return r
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.respond.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
