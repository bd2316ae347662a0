package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the (username, password) pair consulted at login.
// Passwords are stored and compared as given.
type Credential struct {
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

func NewCredential(username, password string) *Credential {
	return &Credential{
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}
}

// Profile owns the identifier carried in session tokens and copied into sign-ups.
type Profile struct {
	ID          string    `db:"id" json:"_id"`
	Username    string    `db:"username" json:"username"`
	Password    string    `db:"password" json:"-"`
	Phone       string    `db:"phone" json:"phone"`
	ClassID     string    `db:"class_id" json:"classId"`
	College     string    `db:"college" json:"college"`
	ScoreNumber string    `db:"score_number" json:"scoreNumber"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}

// Registration is the input of a new account: profile details plus credentials.
type Registration struct {
	Username    string
	Password    string
	Phone       string
	ClassID     string
	College     string
	ScoreNumber string
}

func NewProfile(r Registration) *Profile {
	return &Profile{
		ID:          uuid.New().String(),
		Username:    r.Username,
		Password:    r.Password,
		Phone:       r.Phone,
		ClassID:     r.ClassID,
		College:     r.College,
		ScoreNumber: r.ScoreNumber,
		CreatedAt:   time.Now().UTC(),
	}
}
