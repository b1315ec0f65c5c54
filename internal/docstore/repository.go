package docstore

import "github.com/example/conference-hub/internal/model"

// applyMeta copies store-managed bookkeeping from the scanned row onto the
// decoded entity. The columns are authoritative over whatever the JSON body
// carried.
func applyMeta(m *model.Meta, doc rawDocument) {
	m.ID = doc.ID
	m.Rev = doc.Rev
	m.CreatedAt = doc.CreatedAt
	if doc.UpdatedAt.After(doc.CreatedAt) {
		updated := doc.UpdatedAt
		m.UpdatedAt = &updated
	} else {
		m.UpdatedAt = nil
	}
}
