package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/conference-hub/internal/model"
)

func (a *API) listCallForPapers(w http.ResponseWriter, r *http.Request) {
	calls, err := a.calls.List(r.Context())
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, calls)
}

func (a *API) listCallForPapersByConference(w http.ResponseWriter, r *http.Request) {
	calls, err := a.calls.ListByConference(r.Context(), chi.URLParam(r, "conferenceId"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, calls)
}

func (a *API) createCallForPaper(w http.ResponseWriter, r *http.Request) {
	var call model.CallForPaper
	if err := decodeJSON(r, &call); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	created, err := a.calls.Create(r.Context(), call)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusCreated, created)
}

func (a *API) getCallForPaper(w http.ResponseWriter, r *http.Request) {
	call, err := a.calls.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, call)
}

func (a *API) updateCallForPaper(w http.ResponseWriter, r *http.Request) {
	var call model.CallForPaper
	if err := decodeJSON(r, &call); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	call.ID = chi.URLParam(r, "id")

	updated, err := a.calls.Update(r.Context(), call)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, updated)
}

func (a *API) deleteCallForPaper(w http.ResponseWriter, r *http.Request) {
	if err := a.calls.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (a *API) closeCallForPaper(w http.ResponseWriter, r *http.Request) {
	closed, err := a.calls.Close(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusOK, closed)
}

func (a *API) submitProposal(w http.ResponseWriter, r *http.Request) {
	var session model.Session
	if err := decodeJSON(r, &session); err != nil {
		a.respond.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	created, err := a.calls.Submit(r.Context(), chi.URLParam(r, "id"), session)
	if err != nil {
		a.respond.handleServiceError(r.Context(), w, err)
		return
	}
	a.respond.writeJSON(r.Context(), w, http.StatusCreated, created)
}
