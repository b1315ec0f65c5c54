package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/example/conference-hub/internal/model"
)

// Venues provides access to the venue partition.
type Venues struct {
	store *Store
}

// NewVenues creates a venue repository on the store.
func NewVenues(store *Store) *Venues {
	return &Venues{store: store}
}

func (r *Venues) Get(ctx context.Context, id string) (model.Venue, bool, error) {
	doc, ok, err := r.store.getDocument(ctx, model.KindVenue, id)
	if err != nil || !ok {
		return model.Venue{}, ok, err
	}
	var v model.Venue
	if err := json.Unmarshal(doc.Body, &v); err != nil {
		return model.Venue{}, false, fmt.Errorf("decode venue %s: %w", id, err)
	}
	applyMeta(&v.Meta, doc)
	return v, true, nil
}

func (r *Venues) Insert(ctx context.Context, v model.Venue) (model.Venue, error) {
	body, err := marshalBody(v)
	if err != nil {
		return model.Venue{}, err
	}
	doc, err := r.store.insertDocument(ctx, model.KindVenue, v.ID, body)
	if err != nil {
		return model.Venue{}, err
	}
	applyMeta(&v.Meta, doc)
	return v, nil
}

func (r *Venues) Put(ctx context.Context, v model.Venue) (model.Venue, error) {
	body, err := marshalBody(v)
	if err != nil {
		return model.Venue{}, err
	}
	doc, err := r.store.putDocument(ctx, model.KindVenue, v.ID, body)
	if err != nil {
		return model.Venue{}, err
	}
	applyMeta(&v.Meta, doc)
	return v, nil
}

func (r *Venues) Delete(ctx context.Context, id string) error {
	return r.store.deleteDocument(ctx, model.KindVenue, id)
}

func (r *Venues) List(ctx context.Context) ([]model.Venue, error) {
	docs, err := r.store.listDocuments(ctx, model.KindVenue)
	if err != nil {
		return nil, err
	}
	out := make([]model.Venue, 0, len(docs))
	for _, doc := range docs {
		var v model.Venue
		if err := json.Unmarshal(doc.Body, &v); err != nil {
			return nil, fmt.Errorf("decode venue %s: %w", doc.ID, err)
		}
		applyMeta(&v.Meta, doc)
		out = append(out, v)
	}
	return out, nil
}

// FindByNameAndAddress returns the venue matching both name and address,
// ignoring case and surrounding whitespace.
func (r *Venues) FindByNameAndAddress(ctx context.Context, name, address string) (model.Venue, bool, error) {
	venues, err := r.List(ctx)
	if err != nil {
		return model.Venue{}, false, err
	}
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	for _, v := range venues {
		if strings.EqualFold(strings.TrimSpace(v.Name), name) &&
			strings.EqualFold(strings.TrimSpace(v.Address), address) {
			return v, true, nil
		}
	}
	return model.Venue{}, false, nil
}
