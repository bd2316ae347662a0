package service

import (
	"context"

	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/repository"
)

// CredentialVerifier classifies login attempts against every stored credential.
type CredentialVerifier struct {
	credentials repository.CredentialRepository
}

func NewCredentialVerifier(credentials repository.CredentialRepository) *CredentialVerifier {
	return &CredentialVerifier{credentials: credentials}
}

// Verify scans credentials in storage order. The first record whose username
// matches decides the outcome; later duplicates of that username are never
// consulted. An empty store yields LoginUnknownUser.
func (v *CredentialVerifier) Verify(ctx context.Context, username, password string) (domain.LoginOutcome, error) {
	credentials, err := v.credentials.List(ctx)
	if err != nil {
		return domain.LoginUnknownUser, storeError("list credentials", err)
	}

	for _, c := range credentials {
		if c.Username != username {
			continue
		}
		if c.Password == password {
			return domain.LoginAuthenticated, nil
		}
		return domain.LoginWrongPassword, nil
	}

	return domain.LoginUnknownUser, nil
}
