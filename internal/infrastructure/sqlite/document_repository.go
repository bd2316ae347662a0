package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/repository"
)

// Match keys become JSON paths, so only plain identifiers are accepted.
var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type documentRow struct {
	ID         string    `db:"id"`
	Collection string    `db:"collection"`
	Body       string    `db:"body"`
	CreatedAt  time.Time `db:"created_at"`
}

type documentRepository struct {
	db *DB
}

func NewDocumentRepository(db *DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Insert(ctx context.Context, collection string, body map[string]any) (*domain.Document, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		Collection: collection,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}

	query := `
		INSERT INTO document (id, collection, body, created_at)
		VALUES (?, ?, ?, ?)
	`
	if _, err := r.db.ExecContext(ctx, query, doc.ID, doc.Collection, string(raw), doc.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}
	return doc, nil
}

func (r *documentRepository) Find(ctx context.Context, collection string, match map[string]string, limit int) ([]*domain.Document, error) {
	query := `SELECT id, collection, body, created_at FROM document WHERE collection = ?`
	args := []interface{}{collection}

	keys := make([]string, 0, len(match))
	for k := range match {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !fieldName.MatchString(k) {
			return nil, fmt.Errorf("invalid match field: %q", k)
		}
		query += " AND json_extract(body, ?) = ?"
		args = append(args, "$."+k, match[k])
	}

	query += " ORDER BY created_at ASC, rowid ASC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var rows []documentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}

	docs := make([]*domain.Document, 0, len(rows))
	for _, row := range rows {
		var body map[string]any
		if err := json.Unmarshal([]byte(row.Body), &body); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", row.ID, err)
		}
		docs = append(docs, &domain.Document{
			ID:         row.ID,
			Collection: row.Collection,
			Body:       body,
			CreatedAt:  row.CreatedAt,
		})
	}
	return docs, nil
}
