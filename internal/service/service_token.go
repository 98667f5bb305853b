// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-feed/internal/config"
	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/utils"
	"github.com/MKhiriev/go-feed/models"
)

// tokenService is the HS256 implementation of TokenService.
type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration

	// now is the clock; tests replace it to step over expiry.
	now func() time.Time

	logger *logger.Logger
}

// TokenOption customises a token service.
type TokenOption func(*tokenService)

// WithClock makes the service read time from now instead of time.Now.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService constructs a TokenService from the signing key, issuer and
// TTL of cfg.
func NewTokenService(cfg config.App, logger *logger.Logger, opts ...TokenOption) TokenService {
	s := &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs a token whose iat is now and exp is now+TTL.
func (s *tokenService) Issue(subject string, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, subject, userID, s.now(), s.duration, s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Validate checks signature, algorithm, issuer and expiry (no leeway) of
// tokenString and returns the identity it carries.
func (s *tokenService) Validate(tokenString string) (models.Identity, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, s.now)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token.Identity(), nil
}
