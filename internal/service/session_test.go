package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/conference-hub/internal/model"
	"github.com/example/conference-hub/internal/validation"
)

type sessionFixture struct {
	svc      *SessionService
	sessions *memSessions
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	conferences := newMemConferences()
	speakers := newMemSpeakers()
	sessions := newMemSessions()

	ctx := context.Background()
	if _, err := conferences.Insert(ctx, model.Conference{Meta: model.Meta{ID: "conf-1"}, Name: "GopherCon"}); err != nil {
		t.Fatalf("seed conference: %v", err)
	}
	if _, err := speakers.Insert(ctx, model.Speaker{Meta: model.Meta{ID: "spk-1"}, Name: "Dana", Email: "dana@example.com"}); err != nil {
		t.Fatalf("seed speaker: %v", err)
	}

	return &sessionFixture{
		svc:      NewSessionService(sessions, conferences, speakers, sequentialIDs("sess")),
		sessions: sessions,
	}
}

func validSession() model.Session {
	return model.Session{
		ConferenceID: "conf-1",
		Title:        "Profiling Go services",
		Description:  "A tour of pprof in production.",
		StartTime:    time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
		Track:        "Main",
		SpeakerIDs:   []string{"spk-1"},
		Level:        "Intermediate",
		Tags:         []string{"performance"},
		SessionType:  "Talk",
	}
}

func TestCreateSessionDefaultsToProposed(t *testing.T) {
	f := newSessionFixture(t)

	created, err := f.svc.Create(context.Background(), validSession())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Status != model.StatusProposed {
		t.Errorf("status = %s, want %s", created.Status, model.StatusProposed)
	}
}

func TestCreateSessionRejectsUnknownSpeaker(t *testing.T) {
	f := newSessionFixture(t)

	s := validSession()
	s.SpeakerIDs = []string{"spk-missing"}
	_, err := f.svc.Create(context.Background(), s)
	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("error = %v, want invalid operation", err)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	f := newSessionFixture(t)

	s := validSession()
	s.Title = ""
	s.Level = "Expert"
	_, err := f.svc.Create(context.Background(), s)

	var vErr *validation.Error
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want validation error", err)
	}
	if _, ok := vErr.FieldErrors["title"]; !ok {
		t.Error("missing title error")
	}
	if _, ok := vErr.FieldErrors["level"]; !ok {
		t.Error("missing level error")
	}
}

func TestUpdateStatusParsesStrictly(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validSession())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Case-insensitive parse lands on the canonical constant.
	updated, err := f.svc.UpdateStatus(ctx, created.ID, "underreview")
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated.Status != model.StatusUnderReview {
		t.Errorf("status = %s, want %s", updated.Status, model.StatusUnderReview)
	}

	// Unknown values are rejected, never stored.
	if _, err := f.svc.UpdateStatus(ctx, created.ID, "Approved"); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("error = %v, want invalid operation", err)
	}
	stored, _, _ := f.sessions.Get(ctx, created.ID)
	if stored.Status != model.StatusUnderReview {
		t.Errorf("rejected status leaked into store: %s", stored.Status)
	}
}

func TestReviewAttachesNotesAndOptionalStatus(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validSession())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	reviewed, err := f.svc.Review(ctx, created.ID, "solid abstract", "accepted")
	if err != nil {
		t.Fatalf("Review error: %v", err)
	}
	if reviewed.ReviewNotes != "solid abstract" {
		t.Errorf("notes = %q", reviewed.ReviewNotes)
	}
	if reviewed.Status != model.StatusAccepted {
		t.Errorf("status = %s, want %s", reviewed.Status, model.StatusAccepted)
	}

	// Empty status leaves the current one untouched.
	reviewed, err = f.svc.Review(ctx, created.ID, "second pass", "")
	if err != nil {
		t.Fatalf("second Review error: %v", err)
	}
	if reviewed.Status != model.StatusAccepted {
		t.Errorf("status changed unexpectedly: %s", reviewed.Status)
	}
}

func TestSessionQueryFilters(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, validSession())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	second := validSession()
	second.Track = "Workshops"
	second.Tags = []string{"Testing"}
	if _, err := f.svc.Create(ctx, second); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	byTrack, err := f.svc.ListByTrack(ctx, "Workshops")
	if err != nil || len(byTrack) != 1 {
		t.Errorf("ListByTrack = (%d, %v), want 1 session", len(byTrack), err)
	}

	byTag, err := f.svc.ListByTag(ctx, "testing")
	if err != nil || len(byTag) != 1 {
		t.Errorf("ListByTag = (%d, %v), want 1 session", len(byTag), err)
	}

	bySpeaker, err := f.svc.ListBySpeaker(ctx, "spk-1")
	if err != nil || len(bySpeaker) != 2 {
		t.Errorf("ListBySpeaker = (%d, %v), want 2 sessions", len(bySpeaker), err)
	}

	byStatus, err := f.svc.ListByStatus(ctx, "proposed")
	if err != nil || len(byStatus) != 2 {
		t.Errorf("ListByStatus = (%d, %v), want 2 sessions", len(byStatus), err)
	}

	if _, err := f.svc.ListByStatus(ctx, "bogus"); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("ListByStatus(bogus) error = %v, want invalid operation", err)
	}

	if _, err := f.svc.UpdateStatus(ctx, first.ID, "Accepted"); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	narrowed, err := f.svc.ListByConferenceAndStatus(ctx, "conf-1", "accepted")
	if err != nil || len(narrowed) != 1 {
		t.Errorf("ListByConferenceAndStatus = (%d, %v), want 1 session", len(narrowed), err)
	}
}
