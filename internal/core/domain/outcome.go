package domain

// LoginOutcome classifies a (username, password) pair against the stored credentials.
type LoginOutcome int

const (
	LoginUnknownUser LoginOutcome = iota
	LoginWrongPassword
	LoginAuthenticated
)

func (o LoginOutcome) String() string {
	switch o {
	case LoginAuthenticated:
		return "authenticated"
	case LoginWrongPassword:
		return "wrong_password"
	default:
		return "unknown_user"
	}
}
