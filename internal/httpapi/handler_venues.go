package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/conference-hub/internal/model"
)

func (a *API) listVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := a.venues.List(r.Context())
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, venues)
}

func (a *API) listVenuesByConference(w http.ResponseWriter, r *http.Request) {
	venues, err := a.venues.ListByConference(r.Context(), chi.URLParam(r, "conferenceId"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, venues)
}

func (a *API) createVenue(w http.ResponseWriter, r *http.Request) {
	var venue model.Venue
	if err := decodeJSON(r, &venue); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	created, err := a.venues.Create(r.Context(), venue)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (a *API) getVenue(w http.ResponseWriter, r *http.Request) {
	venue, err := a.venues.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, venue)
}

func (a *API) updateVenue(w http.ResponseWriter, r *http.Request) {
	var venue model.Venue
	if err := decodeJSON(r, &venue); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	venue.ID = chi.URLParam(r, "id")

	updated, err := a.venues.Update(r.Context(), venue)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (a *API) deleteVenue(w http.ResponseWriter, r *http.Request) {
	if err := a.venues.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}
