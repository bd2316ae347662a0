package service

import (
	"time"

	"github.com/tohsaka888/societies-server/internal/core/domain"
)

// SessionService answers whether a token currently authenticates its bearer.
// It holds no state of its own.
type SessionService struct {
	tokens *TokenService
}

func NewSessionService(tokens *TokenService) *SessionService {
	return &SessionService{tokens: tokens}
}

func (s *SessionService) Status(token string, now time.Time) domain.Session {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return domain.Session{State: domain.SessionInvalid, Err: err}
	}

	expired, err := s.tokens.IsExpired(claims, now)
	if err != nil {
		return domain.Session{State: domain.SessionInvalid, Err: err}
	}
	if expired {
		return domain.Session{State: domain.SessionExpired}
	}

	return domain.Session{
		State:    domain.SessionAuthenticated,
		Username: claims.Username,
		UserID:   claims.UserID,
	}
}
