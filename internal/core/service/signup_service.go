package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/repository"
	"github.com/tohsaka888/societies-server/internal/logging"
)

// SignUpService records and looks up competition sign-ups.
//
// CheckSignUp and RecordSignUp are independent primitives. RecordSignUp never
// checks first, and nothing serializes a check with the insert that follows
// it, so two concurrent check-then-record sequences for the same user and
// competition can both insert.
type SignUpService struct {
	signUps  repository.SignUpRepository
	profiles repository.ProfileRepository
	log      logging.Logger
}

func NewSignUpService(signUps repository.SignUpRepository, profiles repository.ProfileRepository, log logging.Logger) *SignUpService {
	return &SignUpService{
		signUps:  signUps,
		profiles: profiles,
		log:      log.With("component", "signup"),
	}
}

// CheckSignUp returns every stored record for (username, competitionID).
func (s *SignUpService) CheckSignUp(ctx context.Context, username, competitionID string) (*domain.SignUpStatus, error) {
	records, err := s.signUps.FindByUserAndCompetition(ctx, username, competitionID)
	if err != nil {
		s.log.Error(ctx, "sign-up lookup failed", "error", err)
		return nil, storeError("find sign-ups", err)
	}

	if len(records) == 0 {
		return &domain.SignUpStatus{SignedUp: false}, nil
	}
	return &domain.SignUpStatus{SignedUp: true, Records: records}, nil
}

// RecordSignUp snapshots the user's profile into a new sign-up and inserts it.
func (s *SignUpService) RecordSignUp(ctx context.Context, userID, competition, competitionID string) (*domain.SignUp, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, malformed("userId is required")
	}
	if competitionID == "" {
		return nil, malformed("competition id is required")
	}

	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, storeError("find profile", err)
	}

	signUp := domain.NewSignUp(profile, competition, competitionID)
	if err := s.signUps.Create(ctx, signUp); err != nil {
		s.log.Error(ctx, "sign-up insert failed", "error", err)
		return nil, storeError("create sign-up", err)
	}

	s.log.Info(ctx, "user signed up", "username", signUp.Username, "competition_id", competitionID)
	return signUp, nil
}

// ListSignUps returns the page of sign-ups selected by filter and the total match count.
func (s *SignUpService) ListSignUps(ctx context.Context, filter repository.SignUpFilter) ([]*domain.SignUp, int, error) {
	items, err := s.signUps.List(ctx, filter)
	if err != nil {
		return nil, 0, storeError("list sign-ups", err)
	}
	total, err := s.signUps.Count(ctx, filter)
	if err != nil {
		return nil, 0, storeError("count sign-ups", err)
	}
	return items, total, nil
}
