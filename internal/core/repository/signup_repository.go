package repository

import (
	"context"

	"github.com/tohsaka888/societies-server/internal/api/util"
	"github.com/tohsaka888/societies-server/internal/core/domain"
)

// SignUpFilter embeds ListFilter for generic query/order/pagination
type SignUpFilter struct {
	util.ListFilter
}

type SignUpRepository interface {
	// Create inserts unconditionally; it never checks for an existing sign-up.
	Create(ctx context.Context, signUp *domain.SignUp) error
	FindByUserAndCompetition(ctx context.Context, username, competitionID string) ([]*domain.SignUp, error)
	List(ctx context.Context, filter SignUpFilter) ([]*domain.SignUp, error)
	Count(ctx context.Context, filter SignUpFilter) (int, error)
}
