package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/conference-hub/internal/model"
)

func (a *API) listSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := a.speakers.List(r.Context())
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, speakers)
}

func (a *API) listSpeakersByConference(w http.ResponseWriter, r *http.Request) {
	speakers, err := a.speakers.ListByConference(r.Context(), chi.URLParam(r, "conferenceId"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, speakers)
}

// createSpeaker deduplicates by email: posting an existing speaker returns
// the stored profile with any new conference memberships merged in, and an
// optional conferenceId query parameter links one more conference.
func (a *API) createSpeaker(w http.ResponseWriter, r *http.Request) {
	var speaker model.Speaker
	if err := decodeJSON(r, &speaker); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	if conferenceID := r.URL.Query().Get("conferenceId"); conferenceID != "" {
		speaker.ConferenceIDs = append(speaker.ConferenceIDs, conferenceID)
	}

	created, err := a.speakers.Create(r.Context(), speaker)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (a *API) getSpeaker(w http.ResponseWriter, r *http.Request) {
	speaker, err := a.speakers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, speaker)
}

func (a *API) updateSpeaker(w http.ResponseWriter, r *http.Request) {
	var speaker model.Speaker
	if err := decodeJSON(r, &speaker); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	speaker.ID = chi.URLParam(r, "id")

	updated, err := a.speakers.Update(r.Context(), speaker)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (a *API) deleteSpeaker(w http.ResponseWriter, r *http.Request) {
	if err := a.speakers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}
