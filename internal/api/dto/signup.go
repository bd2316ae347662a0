package dto

import "github.com/tohsaka888/societies-server/internal/core/domain"

// SignUpCompetitionRequest represents a competition sign-up
type SignUpCompetitionRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Competition string `json:"competition"`
	ID          string `json:"id" binding:"required"`
}

// IsSignUpRequest asks whether a user is signed up for a competition
type IsSignUpRequest struct {
	Username string `json:"username" binding:"required"`
	ID       string `json:"id" binding:"required"`
}

// NotSignedUp is the single element returned when no record matches
type NotSignedUp struct {
	IsSignUp bool `json:"isSignUp"`
}

// IsSignUpResponse carries either the matching records or [NotSignedUp]
type IsSignUpResponse struct {
	Code    int `json:"code"`
	Message any `json:"message"`
}

// SignUpListResponse represents a list of sign-ups
type SignUpListResponse struct {
	Code                int              `json:"code"`
	CompetitionUserList []*domain.SignUp `json:"competitionUserList"`
	Pagination          PaginationInfo   `json:"pagination"`
}
