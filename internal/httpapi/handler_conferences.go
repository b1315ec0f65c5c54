package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/conference-hub/internal/model"
)

func (a *API) listConferences(w http.ResponseWriter, r *http.Request) {
	conferences, err := a.conferences.List(r.Context())
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, conferences)
}

func (a *API) listActiveConferences(w http.ResponseWriter, r *http.Request) {
	conferences, err := a.conferences.ListActive(r.Context())
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, conferences)
}

func (a *API) createConference(w http.ResponseWriter, r *http.Request) {
	var conference model.Conference
	if err := decodeJSON(r, &conference); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	created, err := a.conferences.Create(r.Context(), conference)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (a *API) getConference(w http.ResponseWriter, r *http.Request) {
	conference, err := a.conferences.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, conference)
}

func (a *API) updateConference(w http.ResponseWriter, r *http.Request) {
	var conference model.Conference
	if err := decodeJSON(r, &conference); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	conference.ID = chi.URLParam(r, "id")

	updated, err := a.conferences.Update(r.Context(), conference)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (a *API) deleteConference(w http.ResponseWriter, r *http.Request) {
	if err := a.conferences.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (a *API) listConferenceSpeakers(w http.ResponseWriter, r *http.Request) {
	if _, err := a.conferences.Get(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	speakers, err := a.speakers.ListByConference(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, speakers)
}

func (a *API) listConferenceSessions(w http.ResponseWriter, r *http.Request) {
	if _, err := a.conferences.Get(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	sessions, err := a.sessions.ListByConference(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, sessions)
}

func (a *API) listConferenceAttendees(w http.ResponseWriter, r *http.Request) {
	if _, err := a.conferences.Get(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	attendees, err := a.attendees.ListByConference(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, attendees)
}

func (a *API) listConferenceVenues(w http.ResponseWriter, r *http.Request) {
	if _, err := a.conferences.Get(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	venues, err := a.venues.ListByConference(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, venues)
}
