package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/conference-hub/internal/model"
)

func (a *API) listAttendees(w http.ResponseWriter, r *http.Request) {
	attendees, err := a.attendees.List(r.Context())
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, attendees)
}

func (a *API) listAttendeesByConference(w http.ResponseWriter, r *http.Request) {
	attendees, err := a.attendees.ListByConference(r.Context(), chi.URLParam(r, "conferenceId"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, attendees)
}

func (a *API) createAttendee(w http.ResponseWriter, r *http.Request) {
	var attendee model.Attendee
	if err := decodeJSON(r, &attendee); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	created, err := a.attendees.Create(r.Context(), attendee)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (a *API) getAttendee(w http.ResponseWriter, r *http.Request) {
	attendee, err := a.attendees.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, attendee)
}

func (a *API) updateAttendee(w http.ResponseWriter, r *http.Request) {
	var attendee model.Attendee
	if err := decodeJSON(r, &attendee); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	attendee.ID = chi.URLParam(r, "id")

	updated, err := a.attendees.Update(r.Context(), attendee)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (a *API) deleteAttendee(w http.ResponseWriter, r *http.Request) {
	if err := a.attendees.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (a *API) registerAttendee(w http.ResponseWriter, r *http.Request) {
	updated, err := a.attendees.RegisterForSession(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "sessionId"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (a *API) unregisterAttendee(w http.ResponseWriter, r *http.Request) {
	updated, err := a.attendees.UnregisterFromSession(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "sessionId"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}
