package service

import (
	"context"
	"errors"

	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/repository"
)

type AdminService struct {
	admins repository.AdminRepository
}

func NewAdminService(admins repository.AdminRepository) *AdminService {
	return &AdminService{admins: admins}
}

// Login reports whether name and password equal the stored admin record.
func (s *AdminService) Login(ctx context.Context, name, password string) (bool, error) {
	if name == "" || password == "" {
		return false, malformed("adminName and adminPass are required")
	}

	admin, err := s.admins.First(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrAdminNotConfigured
		}
		return false, storeError("find admin", err)
	}

	return admin.Name == name && admin.Password == password, nil
}

// SetAdmin replaces the admin record.
func (s *AdminService) SetAdmin(ctx context.Context, name, password string) error {
	if name == "" || password == "" {
		return malformed("admin name and password are required")
	}
	if err := s.admins.Set(ctx, &domain.Admin{Name: name, Password: password}); err != nil {
		return storeError("set admin", err)
	}
	return nil
}
