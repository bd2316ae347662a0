package repository

import (
	"context"

	"github.com/tohsaka888/societies-server/internal/core/domain"
)

type DocumentRepository interface {
	Insert(ctx context.Context, collection string, body map[string]any) (*domain.Document, error)
	// Find returns documents of the collection whose top-level fields equal
	// every entry of match, oldest first. limit <= 0 means no limit.
	Find(ctx context.Context, collection string, match map[string]string, limit int) ([]*domain.Document, error)
}
