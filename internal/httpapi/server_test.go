package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/conference-hub/internal/docstore"
	"github.com/example/conference-hub/internal/model"
	"github.com/example/conference-hub/internal/service"
	"github.com/example/conference-hub/internal/testfixtures"
)

type testEnv struct {
	server *httptest.Server
	store  *docstore.Store
	clock  *testfixtures.Clock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := docstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	clock := testfixtures.NewClock(testfixtures.ReferenceTime())
	ids := testfixtures.NewIDGenerator("id")

	conferences := docstore.NewConferences(store)
	speakers := docstore.NewSpeakers(store)
	venues := docstore.NewVenues(store)
	sessions := docstore.NewSessions(store)
	attendees := docstore.NewAttendees(store)
	calls := docstore.NewCallForPapers(store)
	days := docstore.NewAgendaDays(store)

	api := New(
		service.NewConferenceService(conferences, ids.NextFunc()),
		service.NewSpeakerService(speakers, ids.NextFunc()),
		service.NewVenueService(venues, ids.NextFunc()),
		service.NewSessionService(sessions, conferences, speakers, ids.NextFunc()),
		service.NewAttendeeService(attendees, sessions, ids.NextFunc(), clock.NowFunc()),
		service.NewCallForPaperService(calls, conferences, sessions, speakers, ids.NextFunc(), clock.NowFunc()),
		service.NewAgendaService(days, sessions, conferences, ids.NextFunc()),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	server := httptest.NewServer(api.Router(slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(server.Close)

	return &testEnv{server: server, store: store, clock: clock}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (e *testEnv) createConference(t *testing.T) model.Conference {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/conferences", testfixtures.NewConference())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[model.Conference](t, resp)
}

func TestConferenceCRUD(t *testing.T) {
	env := newTestEnv(t)

	created := env.createConference(t)
	require.NotEmpty(t, created.ID)

	resp := env.do(t, http.MethodGet, "/api/conferences/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	created.Name = "Renamed Conference"
	resp = env.do(t, http.MethodPut, "/api/conferences/"+created.ID, created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[model.Conference](t, resp)
	assert.Equal(t, "Renamed Conference", updated.Name)

	resp = env.do(t, http.MethodDelete, "/api/conferences/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/conferences/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateConferenceValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/conferences", map[string]any{"name": ""})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok, "response carries field errors")
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "startDate")
}

func TestSpeakerDedupOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	conf := env.createConference(t)

	speaker := testfixtures.NewSpeaker()
	speaker.ID = ""
	resp := env.do(t, http.MethodPost, "/api/speakers?conferenceId="+conf.ID, speaker)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decodeBody[model.Speaker](t, resp)

	resp = env.do(t, http.MethodPost, "/api/speakers", speaker)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	second := decodeBody[model.Speaker](t, resp)

	assert.Equal(t, first.ID, second.ID)
	assert.Contains(t, second.ConferenceIDs, conf.ID)
}

type placementEnv struct {
	*testEnv
	conference model.Conference
	venue      model.Venue
	day        model.AgendaDay
	session    model.Session
}

func newPlacementEnv(t *testing.T) *placementEnv {
	t.Helper()
	env := newTestEnv(t)

	conf := env.createConference(t)

	venue := testfixtures.NewVenue()
	venue.ID = ""
	resp := env.do(t, http.MethodPost, "/api/venues", venue)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	createdVenue := decodeBody[model.Venue](t, resp)

	speaker := testfixtures.NewSpeaker()
	speaker.ID = ""
	resp = env.do(t, http.MethodPost, "/api/speakers", speaker)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	createdSpeaker := decodeBody[model.Speaker](t, resp)

	session := testfixtures.NewSession(conf.ID, createdSpeaker.ID)
	session.ID = ""
	session.StartTime = time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	session.EndTime = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	session.Status = "" // created as Proposed, accepted below
	resp = env.do(t, http.MethodPost, "/api/sessions", session)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	createdSession := decodeBody[model.Session](t, resp)

	resp = env.do(t, http.MethodPut, "/api/sessionmanagement/"+createdSession.ID+"/status/Accepted", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	createdSession = decodeBody[model.Session](t, resp)

	resp = env.do(t, http.MethodPost, "/api/agenda", model.AgendaDay{
		ConferenceID: conf.ID,
		Date:         time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Title:        "Day 1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	day := decodeBody[model.AgendaDay](t, resp)

	return &placementEnv{
		testEnv:    env,
		conference: conf,
		venue:      createdVenue,
		day:        day,
		session:    createdSession,
	}
}

func (e *placementEnv) placementURL(sessionID, room string) string {
	return fmt.Sprintf("/api/agenda/%s/sessions/%s?venueId=%s&room=%s&track=Main",
		e.day.ID, sessionID, e.venue.ID, room)
}

func TestPlaceAndRemoveSessionOverHTTP(t *testing.T) {
	env := newPlacementEnv(t)

	resp := env.do(t, http.MethodPost, env.placementURL(env.session.ID, "A"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	day := decodeBody[model.AgendaDay](t, resp)
	require.Len(t, day.TimeSlotsByTrack["Main"], 1)
	assert.Equal(t, env.session.ID, day.TimeSlotsByTrack["Main"][0].SessionID)

	resp = env.do(t, http.MethodGet, "/api/sessions/"+env.session.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	scheduled := decodeBody[model.Session](t, resp)
	assert.Equal(t, model.StatusScheduled, scheduled.Status)

	// Second placement of the same session conflicts.
	resp = env.do(t, http.MethodPost, env.placementURL(env.session.ID, "B"), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(t, http.MethodDelete,
		fmt.Sprintf("/api/agenda/%s/sessions/%s", env.day.ID, env.session.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	day = decodeBody[model.AgendaDay](t, resp)
	assert.Empty(t, day.TimeSlotsByTrack)

	resp = env.do(t, http.MethodGet, "/api/sessions/"+env.session.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	restored := decodeBody[model.Session](t, resp)
	assert.Equal(t, model.StatusAccepted, restored.Status)

	resp = env.do(t, http.MethodDelete,
		fmt.Sprintf("/api/agenda/%s/sessions/%s", env.day.ID, env.session.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlaceSessionRequiresVenueAndRoom(t *testing.T) {
	env := newPlacementEnv(t)

	resp := env.do(t, http.MethodPost,
		fmt.Sprintf("/api/agenda/%s/sessions/%s", env.day.ID, env.session.ID), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPlaceSessionBusinessRuleViolations(t *testing.T) {
	env := newPlacementEnv(t)

	// Unknown agenda day.
	resp := env.do(t, http.MethodPost,
		fmt.Sprintf("/api/agenda/missing/sessions/%s?venueId=v&room=A", env.session.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Unknown session.
	resp = env.do(t, http.MethodPost,
		fmt.Sprintf("/api/agenda/%s/sessions/missing?venueId=v&room=A", env.day.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A proposed session cannot be placed.
	proposed := testfixtures.NewSession(env.conference.ID, env.session.SpeakerIDs[0])
	proposed.ID = ""
	proposed.Status = ""
	proposed.StartTime = time.Date(2025, 9, 1, 14, 0, 0, 0, time.UTC)
	proposed.EndTime = time.Date(2025, 9, 1, 15, 0, 0, 0, time.UTC)
	resp = env.do(t, http.MethodPost, "/api/sessions", proposed)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	createdProposed := decodeBody[model.Session](t, resp)

	resp = env.do(t, http.MethodPost, env.placementURL(createdProposed.ID, "A"), nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	failure := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "only accepted or scheduled sessions can be added", failure["message"])
}

func TestAgendaDayICSExport(t *testing.T) {
	env := newPlacementEnv(t)

	resp := env.do(t, http.MethodPost, env.placementURL(env.session.ID, "A"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/agenda/"+env.day.ID+"/ical", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/calendar")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "BEGIN:VCALENDAR")
	assert.Contains(t, string(body), "BEGIN:VEVENT")
	assert.Contains(t, string(body), env.venue.Name)
}

func TestSessionStatusEndpointRejectsUnknownStatus(t *testing.T) {
	env := newPlacementEnv(t)

	resp := env.do(t, http.MethodPut,
		"/api/sessionmanagement/"+env.session.ID+"/status/Approved", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/sessionmanagement/status/accepted", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sessions := decodeBody[[]model.Session](t, resp)
	assert.Len(t, sessions, 1)
}

func TestCallForPaperSubmitFlow(t *testing.T) {
	env := newTestEnv(t)
	conf := env.createConference(t)

	speaker := testfixtures.NewSpeaker()
	speaker.ID = ""
	resp := env.do(t, http.MethodPost, "/api/speakers", speaker)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	createdSpeaker := decodeBody[model.Speaker](t, resp)

	resp = env.do(t, http.MethodPost, "/api/callforpapers", model.CallForPaper{
		ConferenceID: conf.ID,
		Title:        "CFP",
		Description:  "Submit your talks.",
		StartDate:    testfixtures.ReferenceTime().AddDate(0, -3, 0),
		Deadline:     testfixtures.ReferenceTime().AddDate(0, 1, 0),
		SessionTypes: []string{"Talk"},
		IsOpen:       true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	call := decodeBody[model.CallForPaper](t, resp)

	proposal := testfixtures.NewSession(conf.ID, createdSpeaker.ID)
	proposal.ID = ""
	resp = env.do(t, http.MethodPost, "/api/callforpapers/"+call.ID+"/submit", proposal)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[model.Session](t, resp)
	assert.Equal(t, model.StatusProposed, created.Status)
	assert.Equal(t, call.ID, created.CallForPaperID)

	// Once the deadline passes, submissions bounce.
	env.clock.Set(testfixtures.ReferenceTime().AddDate(0, 2, 0))
	resp = env.do(t, http.MethodPost, "/api/callforpapers/"+call.ID+"/submit", proposal)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAttendeeRegistrationFlow(t *testing.T) {
	env := newPlacementEnv(t)

	resp := env.do(t, http.MethodPost, "/api/attendees", model.Attendee{
		Name:  "Alex Attendee",
		Email: "alex@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	attendee := decodeBody[model.Attendee](t, resp)

	resp = env.do(t, http.MethodPost,
		fmt.Sprintf("/api/attendees/%s/sessions/%s", attendee.ID, env.session.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	registered := decodeBody[model.Attendee](t, resp)
	assert.True(t, registered.RegisteredFor(env.conference.ID, env.session.ID))

	resp = env.do(t, http.MethodGet, "/api/attendees/conference/"+env.conference.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	attendees := decodeBody[[]model.Attendee](t, resp)
	assert.Len(t, attendees, 1)

	resp = env.do(t, http.MethodDelete,
		fmt.Sprintf("/api/attendees/%s/sessions/%s", attendee.ID, env.session.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	unregistered := decodeBody[model.Attendee](t, resp)
	assert.Empty(t, unregistered.ConferenceRegistrations)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
