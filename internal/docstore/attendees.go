package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/example/conference-hub/internal/model"
)

// Attendees provides access to the attendee partition.
type Attendees struct {
	store *Store
}

// NewAttendees creates an attendee repository on the store.
func NewAttendees(store *Store) *Attendees {
	return &Attendees{store: store}
}

func (r *Attendees) Get(ctx context.Context, id string) (model.Attendee, bool, error) {
	doc, ok, err := r.store.getDocument(ctx, model.KindAttendee, id)
	if err != nil || !ok {
		return model.Attendee{}, ok, err
	}
	var a model.Attendee
	if err := json.Unmarshal(doc.Body, &a); err != nil {
		return model.Attendee{}, false, fmt.Errorf("decode attendee %s: %w", id, err)
	}
	applyMeta(&a.Meta, doc)
	return a, true, nil
}

func (r *Attendees) Insert(ctx context.Context, a model.Attendee) (model.Attendee, error) {
	body, err := marshalBody(a)
	if err != nil {
		return model.Attendee{}, err
	}
	doc, err := r.store.insertDocument(ctx, model.KindAttendee, a.ID, body)
	if err != nil {
		return model.Attendee{}, err
	}
	applyMeta(&a.Meta, doc)
	return a, nil
}

func (r *Attendees) Put(ctx context.Context, a model.Attendee) (model.Attendee, error) {
	body, err := marshalBody(a)
	if err != nil {
		return model.Attendee{}, err
	}
	doc, err := r.store.putDocument(ctx, model.KindAttendee, a.ID, body)
	if err != nil {
		return model.Attendee{}, err
	}
	applyMeta(&a.Meta, doc)
	return a, nil
}

func (r *Attendees) Delete(ctx context.Context, id string) error {
	return r.store.deleteDocument(ctx, model.KindAttendee, id)
}

func (r *Attendees) List(ctx context.Context) ([]model.Attendee, error) {
	docs, err := r.store.listDocuments(ctx, model.KindAttendee)
	if err != nil {
		return nil, err
	}
	out := make([]model.Attendee, 0, len(docs))
	for _, doc := range docs {
		var a model.Attendee
		if err := json.Unmarshal(doc.Body, &a); err != nil {
			return nil, fmt.Errorf("decode attendee %s: %w", doc.ID, err)
		}
		applyMeta(&a.Meta, doc)
		out = append(out, a)
	}
	return out, nil
}

// FindByEmail returns the attendee whose email matches, ignoring case.
func (r *Attendees) FindByEmail(ctx context.Context, email string) (model.Attendee, bool, error) {
	attendees, err := r.List(ctx)
	if err != nil {
		return model.Attendee{}, false, err
	}
	for _, a := range attendees {
		if strings.EqualFold(a.Email, email) {
			return a, true, nil
		}
	}
	return model.Attendee{}, false, nil
}
