package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/repository"
)

type credentialRepository struct {
	db *DB
}

func NewCredentialRepository(db *DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) Create(ctx context.Context, credential *domain.Credential) error {
	query := `
		INSERT INTO credential (username, password, created_at)
		VALUES (?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		credential.Username,
		credential.Password,
		credential.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create credential: %w", err)
	}
	return nil
}

func (r *credentialRepository) List(ctx context.Context) ([]*domain.Credential, error) {
	query := `
		SELECT username, password, created_at
		FROM credential
		ORDER BY rowid
	`
	var credentials []*domain.Credential
	if err := r.db.SelectContext(ctx, &credentials, query); err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	return credentials, nil
}

type profileRepository struct {
	db *DB
}

func NewProfileRepository(db *DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profile (id, username, password, phone, class_id, college, score_number, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.Username,
		profile.Password,
		profile.Phone,
		profile.ClassID,
		profile.College,
		profile.ScoreNumber,
		profile.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		SELECT id, username, password, phone, class_id, college, score_number, created_at
		FROM profile
		WHERE id = ?
	`
	var profile domain.Profile
	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) FindByCredentials(ctx context.Context, username, password string) (*domain.Profile, error) {
	query := `
		SELECT id, username, password, phone, class_id, college, score_number, created_at
		FROM profile
		WHERE username = ? AND password = ?
		ORDER BY rowid
		LIMIT 1
	`
	var profile domain.Profile
	err := r.db.GetContext(ctx, &profile, query, username, password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile for %s: %w", username, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

type adminRepository struct {
	db *DB
}

func NewAdminRepository(db *DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) First(ctx context.Context) (*domain.Admin, error) {
	query := `SELECT name, password FROM admin ORDER BY rowid LIMIT 1`

	var admin domain.Admin
	err := r.db.GetContext(ctx, &admin, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("admin: %w", repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

// Set replaces the admin record.
func (r *adminRepository) Set(ctx context.Context, admin *domain.Admin) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM admin`); err != nil {
		return fmt.Errorf("failed to clear admin: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO admin (name, password) VALUES (?, ?)`, admin.Name, admin.Password); err != nil {
		return fmt.Errorf("failed to set admin: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit admin: %w", err)
	}
	return nil
}
