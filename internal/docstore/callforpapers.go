package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/conference-hub/internal/model"
)

// CallForPapers provides access to the call-for-papers partition.
type CallForPapers struct {
	store *Store
}

// NewCallForPapers creates a call-for-papers repository on the store.
func NewCallForPapers(store *Store) *CallForPapers {
	return &CallForPapers{store: store}
}

func (r *CallForPapers) Get(ctx context.Context, id string) (model.CallForPaper, bool, error) {
	doc, ok, err := r.store.getDocument(ctx, model.KindCallForPaper, id)
	if err != nil || !ok {
		return model.CallForPaper{}, ok, err
	}
	var c model.CallForPaper
	if err := json.Unmarshal(doc.Body, &c); err != nil {
		return model.CallForPaper{}, false, fmt.Errorf("decode call for papers %s: %w", id, err)
	}
	applyMeta(&c.Meta, doc)
	return c, true, nil
}

func (r *CallForPapers) Insert(ctx context.Context, c model.CallForPaper) (model.CallForPaper, error) {
	body, err := marshalBody(c)
	if err != nil {
		return model.CallForPaper{}, err
	}
	doc, err := r.store.insertDocument(ctx, model.KindCallForPaper, c.ID, body)
	if err != nil {
		return model.CallForPaper{}, err
	}
	applyMeta(&c.Meta, doc)
	return c, nil
}

func (r *CallForPapers) Put(ctx context.Context, c model.CallForPaper) (model.CallForPaper, error) {
	body, err := marshalBody(c)
	if err != nil {
		return model.CallForPaper{}, err
	}
	doc, err := r.store.putDocument(ctx, model.KindCallForPaper, c.ID, body)
	if err != nil {
		return model.CallForPaper{}, err
	}
	applyMeta(&c.Meta, doc)
	return c, nil
}

func (r *CallForPapers) Delete(ctx context.Context, id string) error {
	return r.store.deleteDocument(ctx, model.KindCallForPaper, id)
}

func (r *CallForPapers) List(ctx context.Context) ([]model.CallForPaper, error) {
	docs, err := r.store.listDocuments(ctx, model.KindCallForPaper)
	if err != nil {
		return nil, err
	}
	out := make([]model.CallForPaper, 0, len(docs))
	for _, doc := range docs {
		var c model.CallForPaper
		if err := json.Unmarshal(doc.Body, &c); err != nil {
			return nil, fmt.Errorf("decode call for papers %s: %w", doc.ID, err)
		}
		applyMeta(&c.Meta, doc)
		out = append(out, c)
	}
	return out, nil
}

// ListOpen returns calls that are still flagged open, ordered by creation
// time. Deadline enforcement is the caller's concern.
func (r *CallForPapers) ListOpen(ctx context.Context) ([]model.CallForPaper, error) {
	calls, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := calls[:0]
	for _, c := range calls {
		if c.IsOpen {
			out = append(out, c)
		}
	}
	return out, nil
}
