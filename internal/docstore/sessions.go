package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/conference-hub/internal/model"
)

// Sessions provides access to the session partition.
type Sessions struct {
	store *Store
}

// NewSessions creates a session repository on the store.
func NewSessions(store *Store) *Sessions {
	return &Sessions{store: store}
}

func (r *Sessions) Get(ctx context.Context, id string) (model.Session, bool, error) {
	doc, ok, err := r.store.getDocument(ctx, model.KindSession, id)
	if err != nil || !ok {
		return model.Session{}, ok, err
	}
	var s model.Session
	if err := json.Unmarshal(doc.Body, &s); err != nil {
		return model.Session{}, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	applyMeta(&s.Meta, doc)
	return s, true, nil
}

func (r *Sessions) Insert(ctx context.Context, s model.Session) (model.Session, error) {
	body, err := marshalBody(s)
	if err != nil {
		return model.Session{}, err
	}
	doc, err := r.store.insertDocument(ctx, model.KindSession, s.ID, body)
	if err != nil {
		return model.Session{}, err
	}
	applyMeta(&s.Meta, doc)
	return s, nil
}

func (r *Sessions) Put(ctx context.Context, s model.Session) (model.Session, error) {
	body, err := marshalBody(s)
	if err != nil {
		return model.Session{}, err
	}
	doc, err := r.store.putDocument(ctx, model.KindSession, s.ID, body)
	if err != nil {
		return model.Session{}, err
	}
	applyMeta(&s.Meta, doc)
	return s, nil
}

func (r *Sessions) Delete(ctx context.Context, id string) error {
	return r.store.deleteDocument(ctx, model.KindSession, id)
}

func (r *Sessions) List(ctx context.Context) ([]model.Session, error) {
	docs, err := r.store.listDocuments(ctx, model.KindSession)
	if err != nil {
		return nil, err
	}
	out := make([]model.Session, 0, len(docs))
	for _, doc := range docs {
		var s model.Session
		if err := json.Unmarshal(doc.Body, &s); err != nil {
			return nil, fmt.Errorf("decode session %s: %w", doc.ID, err)
		}
		applyMeta(&s.Meta, doc)
		out = append(out, s)
	}
	return out, nil
}

// ListByConference returns all sessions belonging to the conference, ordered
// by creation time.
func (r *Sessions) ListByConference(ctx context.Context, conferenceID string) ([]model.Session, error) {
	sessions, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := sessions[:0]
	for _, s := range sessions {
		if s.ConferenceID == conferenceID {
			out = append(out, s)
		}
	}
	return out, nil
}
