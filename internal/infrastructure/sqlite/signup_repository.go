package sqlite

import (
	"context"
	"fmt"

	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/repository"
)

const signUpColumns = `id, username, competition_id, competition, is_sign_up, phone, class_id, college, score_number, created_at`

type signUpRepository struct {
	db *DB
}

func NewSignUpRepository(db *DB) repository.SignUpRepository {
	return &signUpRepository{db: db}
}

func (r *signUpRepository) Create(ctx context.Context, signUp *domain.SignUp) error {
	query := `
		INSERT INTO signup (` + signUpColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		signUp.ID,
		signUp.Username,
		signUp.CompetitionID,
		signUp.Competition,
		signUp.IsSignUp,
		signUp.Phone,
		signUp.ClassID,
		signUp.College,
		signUp.ScoreNumber,
		signUp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create sign-up: %w", err)
	}
	return nil
}

func (r *signUpRepository) FindByUserAndCompetition(ctx context.Context, username, competitionID string) ([]*domain.SignUp, error) {
	query := `
		SELECT ` + signUpColumns + `
		FROM signup
		WHERE username = ? AND competition_id = ?
		ORDER BY rowid
	`
	var signUps []*domain.SignUp
	if err := r.db.SelectContext(ctx, &signUps, query, username, competitionID); err != nil {
		return nil, fmt.Errorf("failed to find sign-ups: %w", err)
	}
	return signUps, nil
}

func (r *signUpRepository) List(ctx context.Context, filter repository.SignUpFilter) ([]*domain.SignUp, error) {
	query := `SELECT ` + signUpColumns + ` FROM signup WHERE 1=1`
	args := []interface{}{}

	query, args = ApplyFilters(query, args, filter.Filters)
	query = ApplyOrdering(query, filter.Order, "created_at ASC, rowid ASC")
	query, args = ApplyPagination(query, args, filter.Page, filter.PerPage)

	signUps := []*domain.SignUp{}
	if err := r.db.SelectContext(ctx, &signUps, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list sign-ups: %w", err)
	}
	return signUps, nil
}

func (r *signUpRepository) Count(ctx context.Context, filter repository.SignUpFilter) (int, error) {
	query := `SELECT COUNT(*) FROM signup WHERE 1=1`
	args := []interface{}{}

	query, args = ApplyFilters(query, args, filter.Filters)

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count sign-ups: %w", err)
	}
	return count, nil
}
