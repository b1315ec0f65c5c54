package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/conference-hub/internal/model"
)

func (a *API) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.sessions.List(r.Context())
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, sessions)
}

func (a *API) listSessionsByConference(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.sessions.ListByConference(r.Context(), chi.URLParam(r, "conferenceId"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, sessions)
}

func (a *API) listSessionsByTrack(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.sessions.ListByTrack(r.Context(), chi.URLParam(r, "track"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, sessions)
}

func (a *API) listSessionsByTag(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.sessions.ListByTag(r.Context(), chi.URLParam(r, "tag"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, sessions)
}

func (a *API) listSessionsBySpeaker(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.sessions.ListBySpeaker(r.Context(), chi.URLParam(r, "speakerId"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, sessions)
}

func (a *API) createSession(w http.ResponseWriter, r *http.Request) {
	var session model.Session
	if err := decodeJSON(r, &session); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	created, err := a.sessions.Create(r.Context(), session)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (a *API) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := a.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, session)
}

func (a *API) updateSession(w http.ResponseWriter, r *http.Request) {
	var session model.Session
	if err := decodeJSON(r, &session); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	session.ID = chi.URLParam(r, "id")

	updated, err := a.sessions.Update(r.Context(), session)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (a *API) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Session management endpoints: review workflow over the same records.

func (a *API) listSessionsByStatus(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.sessions.ListByStatus(r.Context(), chi.URLParam(r, "status"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, sessions)
}

func (a *API) listSessionsByConferenceAndStatus(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.sessions.ListByConferenceAndStatus(r.Context(),
		chi.URLParam(r, "conferenceId"), chi.URLParam(r, "status"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, sessions)
}

func (a *API) updateSessionStatus(w http.ResponseWriter, r *http.Request) {
	updated, err := a.sessions.UpdateStatus(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "status"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}

type reviewRequest struct {
	Notes  string `json:"notes"`
	Status string `json:"status,omitempty"`
}

func (a *API) reviewSession(w http.ResponseWriter, r *http.Request) {
	var review reviewRequest
	if err := decodeJSON(r, &review); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	updated, err := a.sessions.Review(r.Context(), chi.URLParam(r, "id"), review.Notes, review.Status)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}
