package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when email or password do not match an active account.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserAccountDisabled is returned when authenticating a deactivated account.
	ErrUserAccountDisabled = errors.New("user account is disabled")

	// ErrInvalidToken is returned for malformed, expired or wrongly signed bearer tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNameOrEmailExists is returned when creating a user with a taken username or email.
	ErrUserNameOrEmailExists = errors.New("user with username or email already exists")

	// ErrUserNotFound is returned when a user cannot be found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidOldPassword is returned when the provided old password does not match.
	ErrInvalidOldPassword = errors.New("invalid old password")

	// ErrForbidden is returned when the principal may not perform the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthenticated is returned when a request carries no valid principal.
	ErrUnauthenticated = errors.New("authentication required")
)
