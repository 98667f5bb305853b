package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/store"
	"github.com/MKhiriev/go-feed/internal/validators"
	"github.com/MKhiriev/go-feed/models"
)

// dummyPasswordHash is compared against on logins for unknown usernames so
// that both failure paths cost one bcrypt comparison.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("go-feed-unknown-user"), bcrypt.DefaultCost)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing, and hands
// token issuing to a TokenService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokens signs the token returned by a successful login.
	tokens TokenService

	validator validators.Validator
	hashCost  int
	now       func() time.Time
	logger    *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and TokenService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		validator:      validators.NewFeedValidator(),
		hashCost:       bcrypt.DefaultCost,
		now:            time.Now,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// It validates the username and password, hashes the password with bcrypt and
// delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a *validators.FieldError if the username or password is malformed.
//   - ErrUsernameTaken if the username is already registered.
//   - A wrapped storage error if the repository call fails.
func (a *authService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("username", creds.Username).Msg("signup data rejected")
		return models.User{}, fmt.Errorf("signup validation failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		log.Info().Str("username", creds.Username).Msg("username already taken")
		return models.User{}, ErrUsernameTaken
	}
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user signed up")

	return registeredUser, nil
}

// Login authenticates an existing user and issues a token for them.
//
// An unknown username and a wrong password are indistinguishable to the
// caller: both return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		return models.Token{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(creds.Password))
		log.Info().Str("username", creds.Username).Msg("login for unknown user")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password)); err != nil {
		log.Info().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(foundUser.Username, foundUser.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("token issuing failed")
		return models.Token{}, err
	}

	return token, nil
}
