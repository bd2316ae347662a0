package domain

import (
	"time"

	"github.com/google/uuid"
)

// SignUp associates a user with a competition and snapshots the user's profile.
// Nothing in storage prevents two records for the same (Username, CompetitionID).
type SignUp struct {
	ID            string    `db:"id" json:"_id"`
	Username      string    `db:"username" json:"username"`
	CompetitionID string    `db:"competition_id" json:"id"`
	Competition   string    `db:"competition" json:"competition"`
	IsSignUp      bool      `db:"is_sign_up" json:"isSignUp"`
	Phone         string    `db:"phone" json:"phone"`
	ClassID       string    `db:"class_id" json:"classId"`
	College       string    `db:"college" json:"college"`
	ScoreNumber   string    `db:"score_number" json:"scoreNumber"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// NewSignUp copies the profile's identity and contact fields into a sign-up
// for the given competition.
func NewSignUp(p *Profile, competition, competitionID string) *SignUp {
	return &SignUp{
		ID:            uuid.New().String(),
		Username:      p.Username,
		CompetitionID: competitionID,
		Competition:   competition,
		IsSignUp:      true,
		Phone:         p.Phone,
		ClassID:       p.ClassID,
		College:       p.College,
		ScoreNumber:   p.ScoreNumber,
		CreatedAt:     time.Now().UTC(),
	}
}

// SignUpStatus answers whether a user is signed up for a competition.
// When SignedUp is true, Records holds every matching record as stored.
type SignUpStatus struct {
	SignedUp bool
	Records  []*SignUp
}
