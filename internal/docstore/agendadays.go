package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/conference-hub/internal/model"
)

// AgendaDays provides access to the agenda day partition.
type AgendaDays struct {
	store *Store
}

// NewAgendaDays creates an agenda day repository on the store.
func NewAgendaDays(store *Store) *AgendaDays {
	return &AgendaDays{store: store}
}

func (r *AgendaDays) Get(ctx context.Context, id string) (model.AgendaDay, bool, error) {
	doc, ok, err := r.store.getDocument(ctx, model.KindAgendaDay, id)
	if err != nil || !ok {
		return model.AgendaDay{}, ok, err
	}
	var d model.AgendaDay
	if err := json.Unmarshal(doc.Body, &d); err != nil {
		return model.AgendaDay{}, false, fmt.Errorf("decode agenda day %s: %w", id, err)
	}
	applyMeta(&d.Meta, doc)
	return d, true, nil
}

func (r *AgendaDays) Insert(ctx context.Context, d model.AgendaDay) (model.AgendaDay, error) {
	body, err := marshalBody(d)
	if err != nil {
		return model.AgendaDay{}, err
	}
	doc, err := r.store.insertDocument(ctx, model.KindAgendaDay, d.ID, body)
	if err != nil {
		return model.AgendaDay{}, err
	}
	applyMeta(&d.Meta, doc)
	return d, nil
}

func (r *AgendaDays) Put(ctx context.Context, d model.AgendaDay) (model.AgendaDay, error) {
	body, err := marshalBody(d)
	if err != nil {
		return model.AgendaDay{}, err
	}
	doc, err := r.store.putDocument(ctx, model.KindAgendaDay, d.ID, body)
	if err != nil {
		return model.AgendaDay{}, err
	}
	applyMeta(&d.Meta, doc)
	return d, nil
}

func (r *AgendaDays) Delete(ctx context.Context, id string) error {
	return r.store.deleteDocument(ctx, model.KindAgendaDay, id)
}

func (r *AgendaDays) List(ctx context.Context) ([]model.AgendaDay, error) {
	docs, err := r.store.listDocuments(ctx, model.KindAgendaDay)
	if err != nil {
		return nil, err
	}
	out := make([]model.AgendaDay, 0, len(docs))
	for _, doc := range docs {
		var d model.AgendaDay
		if err := json.Unmarshal(doc.Body, &d); err != nil {
			return nil, fmt.Errorf("decode agenda day %s: %w", doc.ID, err)
		}
		applyMeta(&d.Meta, doc)
		out = append(out, d)
	}
	return out, nil
}

// ListByConference returns all agenda days for the conference, ordered by
// creation time.
func (r *AgendaDays) ListByConference(ctx context.Context, conferenceID string) ([]model.AgendaDay, error) {
	days, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := days[:0]
	for _, d := range days {
		if d.ConferenceID == conferenceID {
			out = append(out, d)
		}
	}
	return out, nil
}

// UpdateConditional persists the agenda day only when its stored revision
// still matches the one the caller read, failing with ErrStale otherwise.
func (r *AgendaDays) UpdateConditional(ctx context.Context, day model.AgendaDay) error {
	body, err := marshalBody(day)
	if err != nil {
		return err
	}
	return r.store.WithTransaction(ctx, func(tx *sql.Tx) error {
		_, err := r.store.putDocumentRevTx(tx, model.KindAgendaDay, day.ID, body, day.Rev)
		return err
	})
}

// SavePlacement persists an agenda mutation and the matching session status
// change as one atomic write. The agenda day write is conditional on the
// revision the caller read; when another writer got there first the whole
// transaction fails with ErrStale and nothing is persisted.
func (r *AgendaDays) SavePlacement(ctx context.Context, day model.AgendaDay, session model.Session) error {
	dayBody, err := marshalBody(day)
	if err != nil {
		return err
	}
	sessionBody, err := marshalBody(session)
	if err != nil {
		return err
	}

	return r.store.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := r.store.putDocumentRevTx(tx, model.KindAgendaDay, day.ID, dayBody, day.Rev); err != nil {
			return err
		}
		if _, err := r.store.putDocumentTx(tx, model.KindSession, session.ID, sessionBody); err != nil {
			return err
		}
		return nil
	})
}
