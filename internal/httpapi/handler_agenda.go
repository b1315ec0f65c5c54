package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/example/conference-hub/internal/ics"
	"github.com/example/conference-hub/internal/model"
)

func (a *API) listAgendaDays(w http.ResponseWriter, r *http.Request) {
	days, err := a.agenda.List(r.Context())
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, days)
}

func (a *API) listAgendaDaysByConference(w http.ResponseWriter, r *http.Request) {
	days, err := a.agenda.ListByConference(r.Context(), chi.URLParam(r, "conferenceId"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, days)
}

func (a *API) getAgendaDayByDate(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, errors.New("date must be formatted as YYYY-MM-DD"))
		return
	}

	day, err := a.agenda.GetByConferenceAndDate(r.Context(), chi.URLParam(r, "conferenceId"), date)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, day)
}

func (a *API) createAgendaDay(w http.ResponseWriter, r *http.Request) {
	var day model.AgendaDay
	if err := decodeJSON(r, &day); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	created, err := a.agenda.Create(r.Context(), day)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (a *API) getAgendaDay(w http.ResponseWriter, r *http.Request) {
	day, err := a.agenda.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, day)
}

func (a *API) updateAgendaDay(w http.ResponseWriter, r *http.Request) {
	var day model.AgendaDay
	if err := decodeJSON(r, &day); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	day.ID = chi.URLParam(r, "id")

	updated, err := a.agenda.Update(r.Context(), day)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (a *API) deleteAgendaDay(w http.ResponseWriter, r *http.Request) {
	if err := a.agenda.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (a *API) placeSession(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	venueID := query.Get("venueId")
	room := query.Get("room")
	if venueID == "" || room == "" {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest,
			errors.New("venueId and room query parameters are required"))
		return
	}

	day, err := a.agenda.PlaceSession(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "sessionId"),
		query.Get("track"), venueID, room)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, day)
}

func (a *API) removeSession(w http.ResponseWriter, r *http.Request) {
	day, err := a.agenda.RemoveSession(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "sessionId"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, day)
}

func (a *API) exportAgendaDayICS(w http.ResponseWriter, r *http.Request) {
	day, err := a.agenda.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}

	// Venue names make the LOCATION lines readable; export still works if
	// the lookup fails partway.
	venueNames := make(map[string]string)
	if venues, err := a.venues.List(r.Context()); err == nil {
		for _, venue := range venues {
			venueNames[venue.ID] = venue.Name
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="agenda-`+day.ID+`.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(ics.AgendaDay(day, venueNames, time.Now))); err != nil {
		a.respond.loggerFor(r.Context()).ErrorContext(r.Context(), "failed to write calendar", "error", err)
	}
}
