package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a partitioned JSON document store backed by SQLite. Every entity
// lives in the documents table keyed by (kind, id), where kind is the
// partition tag.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the store at the given SQLite DSN.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}
	// SQLite serializes writers; a single connection avoids busy errors
	// under concurrent request handling.
	db.SetMaxOpenConns(1)
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SetClock overrides the timestamp source. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// WithTransaction executes fn within a database transaction, rolling back on
// error or panic and committing otherwise.
func (s *Store) WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed (rollback error: %v): %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// rawDocument is the stored representation handed to typed repositories.
type rawDocument struct {
	ID        string
	Kind      string
	Rev       int64
	Body      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Store) getDocument(ctx context.Context, kind, id string) (rawDocument, bool, error) {
	const query = `SELECT id, kind, rev, body, created_at, updated_at FROM documents WHERE kind = ? AND id = ?`

	doc, err := scanDocument(s.db.QueryRowContext(ctx, query, kind, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rawDocument{}, false, nil
		}
		return rawDocument{}, false, mapSQLError(err)
	}
	return doc, true, nil
}

func (s *Store) insertDocument(ctx context.Context, kind, id string, body []byte) (rawDocument, error) {
	now := s.now().UTC()
	const query = `INSERT INTO documents (id, kind, rev, body, created_at, updated_at) VALUES (?, ?, 1, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, query, id, kind, body,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano)); err != nil {
		return rawDocument{}, mapSQLError(err)
	}
	return rawDocument{ID: id, Kind: kind, Rev: 1, Body: body, CreatedAt: now, UpdatedAt: now}, nil
}

// putDocument upserts a document, bumping its revision and stamping the
// updated-at timestamp. Missing documents are created with revision 1.
func (s *Store) putDocument(ctx context.Context, kind, id string, body []byte) (rawDocument, error) {
	var out rawDocument
	err := s.WithTransaction(ctx, func(tx *sql.Tx) error {
		stored, err := s.putDocumentTx(tx, kind, id, body)
		if err != nil {
			return err
		}
		out = stored
		return nil
	})
	return out, err
}

func (s *Store) putDocumentTx(tx *sql.Tx, kind, id string, body []byte) (rawDocument, error) {
	now := s.now().UTC()

	var rev int64
	var createdAtStr string
	err := tx.QueryRow(`SELECT rev, created_at FROM documents WHERE kind = ? AND id = ?`, kind, id).
		Scan(&rev, &createdAtStr)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		const insert = `INSERT INTO documents (id, kind, rev, body, created_at, updated_at) VALUES (?, ?, 1, ?, ?, ?)`
		if _, err := tx.Exec(insert, id, kind, body,
			now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano)); err != nil {
			return rawDocument{}, mapSQLError(err)
		}
		return rawDocument{ID: id, Kind: kind, Rev: 1, Body: body, CreatedAt: now, UpdatedAt: now}, nil
	case err != nil:
		return rawDocument{}, mapSQLError(err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		return rawDocument{}, fmt.Errorf("parse created_at: %w", err)
	}

	const update = `UPDATE documents SET body = ?, rev = rev + 1, updated_at = ? WHERE kind = ? AND id = ?`
	if _, err := tx.Exec(update, body, now.Format(time.RFC3339Nano), kind, id); err != nil {
		return rawDocument{}, mapSQLError(err)
	}
	return rawDocument{ID: id, Kind: kind, Rev: rev + 1, Body: body, CreatedAt: createdAt, UpdatedAt: now}, nil
}

// putDocumentRevTx is the compare-and-swap variant: the write succeeds only
// when the stored revision still matches expectedRev.
func (s *Store) putDocumentRevTx(tx *sql.Tx, kind, id string, body []byte, expectedRev int64) (int64, error) {
	now := s.now().UTC()

	const update = `UPDATE documents SET body = ?, rev = rev + 1, updated_at = ? WHERE kind = ? AND id = ? AND rev = ?`
	result, err := tx.Exec(update, body, now.Format(time.RFC3339Nano), kind, id, expectedRev)
	if err != nil {
		return 0, mapSQLError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return 0, ErrStale
	}
	return expectedRev + 1, nil
}

func (s *Store) deleteDocument(ctx context.Context, kind, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE kind = ? AND id = ?`, kind, id)
	if err != nil {
		return mapSQLError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) listDocuments(ctx context.Context, kind string) ([]rawDocument, error) {
	const query = `SELECT id, kind, rev, body, created_at, updated_at FROM documents WHERE kind = ? ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, kind)
	if err != nil {
		return nil, mapSQLError(err)
	}
	defer rows.Close()

	var docs []rawDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, mapSQLError(err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLError(err)
	}
	return docs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (rawDocument, error) {
	var doc rawDocument
	var createdAtStr, updatedAtStr string
	if err := row.Scan(&doc.ID, &doc.Kind, &doc.Rev, &doc.Body, &createdAtStr, &updatedAtStr); err != nil {
		return rawDocument{}, err
	}

	var err error
	if doc.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAtStr); err != nil {
		return rawDocument{}, fmt.Errorf("parse created_at: %w", err)
	}
	if doc.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAtStr); err != nil {
		return rawDocument{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return doc, nil
}

func marshalBody(entity any) ([]byte, error) {
	body, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return body, nil
}

func mapSQLError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "PRIMARY KEY") {
		return ErrDuplicate
	}
	return err
}
