package user

import "errors"

var (
	ErrUsernameRequired = errors.New("must provide username")
	ErrPasswordRequired = errors.New("must provide password")
	ErrConfirmRequired  = errors.New("must provide password confirmation")
	ErrPasswordMismatch = errors.New("passwords must match")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrInvalidAuth      = errors.New("invalid username and/or password")
)

// IsValidation reports whether err is one of the credential-form failures
// that should surface as a 400 with its own message rather than a 500.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrUsernameRequired,
		ErrPasswordRequired,
		ErrConfirmRequired,
		ErrPasswordMismatch,
		ErrUsernameTaken,
		ErrInvalidAuth,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
