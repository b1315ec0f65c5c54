package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/conference-hub/internal/model"
)

// Conferences provides access to the conference partition.
type Conferences struct {
	store *Store
}

// NewConferences creates a conference repository on the store.
func NewConferences(store *Store) *Conferences {
	return &Conferences{store: store}
}

// Get returns the conference with the given id. The second return value is
// false when no such conference exists.
func (r *Conferences) Get(ctx context.Context, id string) (model.Conference, bool, error) {
	doc, ok, err := r.store.getDocument(ctx, model.KindConference, id)
	if err != nil || !ok {
		return model.Conference{}, ok, err
	}
	var c model.Conference
	if err := json.Unmarshal(doc.Body, &c); err != nil {
		return model.Conference{}, false, fmt.Errorf("decode conference %s: %w", id, err)
	}
	applyMeta(&c.Meta, doc)
	return c, true, nil
}

// Insert stores a new conference, failing with ErrDuplicate when the id is
// already taken.
func (r *Conferences) Insert(ctx context.Context, c model.Conference) (model.Conference, error) {
	body, err := marshalBody(c)
	if err != nil {
		return model.Conference{}, err
	}
	doc, err := r.store.insertDocument(ctx, model.KindConference, c.ID, body)
	if err != nil {
		return model.Conference{}, err
	}
	applyMeta(&c.Meta, doc)
	return c, nil
}

// Put upserts a conference, bumping its revision.
func (r *Conferences) Put(ctx context.Context, c model.Conference) (model.Conference, error) {
	body, err := marshalBody(c)
	if err != nil {
		return model.Conference{}, err
	}
	doc, err := r.store.putDocument(ctx, model.KindConference, c.ID, body)
	if err != nil {
		return model.Conference{}, err
	}
	applyMeta(&c.Meta, doc)
	return c, nil
}

// Delete removes a conference, returning ErrNotFound when it does not exist.
func (r *Conferences) Delete(ctx context.Context, id string) error {
	return r.store.deleteDocument(ctx, model.KindConference, id)
}

// List returns all conferences ordered by creation time.
func (r *Conferences) List(ctx context.Context) ([]model.Conference, error) {
	docs, err := r.store.listDocuments(ctx, model.KindConference)
	if err != nil {
		return nil, err
	}
	out := make([]model.Conference, 0, len(docs))
	for _, doc := range docs {
		var c model.Conference
		if err := json.Unmarshal(doc.Body, &c); err != nil {
			return nil, fmt.Errorf("decode conference %s: %w", doc.ID, err)
		}
		applyMeta(&c.Meta, doc)
		out = append(out, c)
	}
	return out, nil
}
