package service

import "errors"

var (
	// ErrInvalidToken is returned by TokenService.Validate; the request
	// carrying such a token is treated as anonymous.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")

	// ErrUserNoLongerExists is returned when a valid token names a user that
	// storage does not know (anymore).
	ErrUserNoLongerExists = errors.New("user of the token no longer exists")

	// ErrForbidden is returned when an authenticated caller reads outside
	// their scope.
	ErrForbidden = errors.New("forbidden")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageNotReady       = errors.New("storage is not ready")
)
