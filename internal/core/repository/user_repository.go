package repository

import (
	"context"

	"github.com/tohsaka888/societies-server/internal/core/domain"
)

type CredentialRepository interface {
	Create(ctx context.Context, credential *domain.Credential) error
	// List returns every credential in storage order.
	List(ctx context.Context) ([]*domain.Credential, error)
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	// FindByCredentials returns the first profile whose username and password
	// both match, or ErrNotFound.
	FindByCredentials(ctx context.Context, username, password string) (*domain.Profile, error)
}

type AdminRepository interface {
	// First returns the admin record, or ErrNotFound when none is stored.
	First(ctx context.Context) (*domain.Admin, error)
	Set(ctx context.Context, admin *domain.Admin) error
}
