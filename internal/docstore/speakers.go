package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/example/conference-hub/internal/model"
)

// Speakers provides access to the speaker partition.
type Speakers struct {
	store *Store
}

// NewSpeakers creates a speaker repository on the store.
func NewSpeakers(store *Store) *Speakers {
	return &Speakers{store: store}
}

func (r *Speakers) Get(ctx context.Context, id string) (model.Speaker, bool, error) {
	doc, ok, err := r.store.getDocument(ctx, model.KindSpeaker, id)
	if err != nil || !ok {
		return model.Speaker{}, ok, err
	}
	var s model.Speaker
	if err := json.Unmarshal(doc.Body, &s); err != nil {
		return model.Speaker{}, false, fmt.Errorf("decode speaker %s: %w", id, err)
	}
	applyMeta(&s.Meta, doc)
	return s, true, nil
}

func (r *Speakers) Insert(ctx context.Context, s model.Speaker) (model.Speaker, error) {
	body, err := marshalBody(s)
	if err != nil {
		return model.Speaker{}, err
	}
	doc, err := r.store.insertDocument(ctx, model.KindSpeaker, s.ID, body)
	if err != nil {
		return model.Speaker{}, err
	}
	applyMeta(&s.Meta, doc)
	return s, nil
}

func (r *Speakers) Put(ctx context.Context, s model.Speaker) (model.Speaker, error) {
	body, err := marshalBody(s)
	if err != nil {
		return model.Speaker{}, err
	}
	doc, err := r.store.putDocument(ctx, model.KindSpeaker, s.ID, body)
	if err != nil {
		return model.Speaker{}, err
	}
	applyMeta(&s.Meta, doc)
	return s, nil
}

func (r *Speakers) Delete(ctx context.Context, id string) error {
	return r.store.deleteDocument(ctx, model.KindSpeaker, id)
}

func (r *Speakers) List(ctx context.Context) ([]model.Speaker, error) {
	docs, err := r.store.listDocuments(ctx, model.KindSpeaker)
	if err != nil {
		return nil, err
	}
	out := make([]model.Speaker, 0, len(docs))
	for _, doc := range docs {
		var s model.Speaker
		if err := json.Unmarshal(doc.Body, &s); err != nil {
			return nil, fmt.Errorf("decode speaker %s: %w", doc.ID, err)
		}
		applyMeta(&s.Meta, doc)
		out = append(out, s)
	}
	return out, nil
}

// FindByEmail returns the speaker whose email matches, ignoring case. The
// second return value is false when no speaker uses the address.
func (r *Speakers) FindByEmail(ctx context.Context, email string) (model.Speaker, bool, error) {
	speakers, err := r.List(ctx)
	if err != nil {
		return model.Speaker{}, false, err
	}
	for _, s := range speakers {
		if strings.EqualFold(s.Email, email) {
			return s, true, nil
		}
	}
	return model.Speaker{}, false, nil
}
