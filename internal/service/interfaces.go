package service

import (
	"context"

	"github.com/MKhiriev/go-feed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies identity tokens. Both operations are pure
// functions of the token, the clock and the shared secret.
type TokenService interface {
	// Issue signs a token for subject/userID valid from now until now+TTL.
	Issue(subject string, userID int64) (models.Token, error)

	// Validate returns the identity carried by tokenString or an error
	// wrapping ErrInvalidToken when the signature, algorithm, format,
	// issuer or expiry check fails.
	Validate(tokenString string) (models.Identity, error)
}

// AuthService registers users and exchanges credentials for tokens.
type AuthService interface {
	Signup(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
}

// TimelineService is the keyset pagination engine.
type TimelineService interface {
	// Fetch returns one page of posts owned by scope, newest first. limit is
	// normalised to the configured range; a nil cursor starts from the top.
	// NextCursor is set iff the page is full.
	Fetch(ctx context.Context, identity models.Identity, scope []int64, limit int, cursor *models.Cursor) (models.Page, error)
}

// PostService is the use-case layer behind the post endpoints.
type PostService interface {
	Create(ctx context.Context, identity models.Identity, req models.CreatePostRequest) (models.PostResponse, error)
	Timeline(ctx context.Context, identity models.Identity, req models.TimelineRequest) (models.TimelineResponse, error)
	UserPosts(ctx context.Context, identity models.Identity, userID int64, req models.TimelineRequest) (models.TimelineResponse, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService tracks storage readiness.
type HealthService interface {
	// Probe pings storage and records the outcome.
	Probe(ctx context.Context) error
	// Ready reports the outcome of the last probe.
	Ready() bool
}
