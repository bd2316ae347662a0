package service

import (
	"context"
	"errors"
	"time"

	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/repository"
	"github.com/tohsaka888/societies-server/internal/logging"
)

// LoginResult carries the classification and, when authenticated, the token.
type LoginResult struct {
	Outcome domain.LoginOutcome
	Token   string
	UserID  string
}

// AuthService wires credential checks, profile lookup and token issuance
// behind the login, status and registration operations.
type AuthService struct {
	verifier    *CredentialVerifier
	tokens      *TokenService
	sessions    *SessionService
	credentials repository.CredentialRepository
	profiles    repository.ProfileRepository
	log         logging.Logger
	now         func() time.Time
}

func NewAuthService(
	credentials repository.CredentialRepository,
	profiles repository.ProfileRepository,
	tokens *TokenService,
	log logging.Logger,
) *AuthService {
	return &AuthService{
		verifier:    NewCredentialVerifier(credentials),
		tokens:      tokens,
		sessions:    NewSessionService(tokens),
		credentials: credentials,
		profiles:    profiles,
		log:         log.With("component", "auth"),
		now:         time.Now,
	}
}

// Login classifies the credentials and issues a token when they authenticate.
// Only store failures are returned as errors.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	outcome, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		s.log.Error(ctx, "credential check failed", "username", username, "error", err)
		return nil, err
	}

	s.log.Info(ctx, "login attempt", "username", username, "outcome", outcome.String())
	if outcome != domain.LoginAuthenticated {
		return &LoginResult{Outcome: outcome}, nil
	}

	profile, err := s.profiles.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn(ctx, "credential has no matching profile", "username", username)
			return nil, ErrProfileNotFound
		}
		return nil, storeError("find profile", err)
	}

	token, err := s.tokens.Issue(username, profile.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Outcome: outcome, Token: token, UserID: profile.ID}, nil
}

// Status evaluates token against the current time.
func (s *AuthService) Status(token string) domain.Session {
	return s.sessions.Status(token, s.now())
}

// Register stores the profile and then its credential. The two writes are
// independent: a failure after the first leaves a profile nobody can log in
// to. Usernames are not checked for uniqueness.
func (s *AuthService) Register(ctx context.Context, r domain.Registration) (*domain.Profile, error) {
	if r.Username == "" || r.Password == "" {
		return nil, malformed("username and password are required")
	}

	profile := domain.NewProfile(r)
	if err := s.profiles.Create(ctx, profile); err != nil {
		s.log.Error(ctx, "profile insert failed", "username", r.Username, "error", err)
		return nil, storeError("create profile", err)
	}

	if err := s.credentials.Create(ctx, domain.NewCredential(r.Username, r.Password)); err != nil {
		s.log.Error(ctx, "credential insert failed", "username", r.Username, "error", err)
		return nil, storeError("create credential", err)
	}

	s.log.Info(ctx, "user registered", "username", r.Username, "user_id", profile.ID)
	return profile, nil
}
