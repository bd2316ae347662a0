package domain

// SessionState is the result of evaluating a session token at a point in time.
type SessionState string

const (
	SessionAuthenticated SessionState = "authenticated"
	SessionExpired       SessionState = "expired"
	SessionInvalid       SessionState = "invalid"
)

// Session is what the status check reports about a caller's token.
// Username and UserID are set only when State is SessionAuthenticated;
// Err carries the verification failure when State is SessionInvalid.
type Session struct {
	State    SessionState
	Username string
	UserID   string
	Err      error
}
