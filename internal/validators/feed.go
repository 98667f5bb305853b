package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-feed/models"
)

// Field names accepted by FeedValidator. They match the JSON names of the
// request bodies so a FieldError can point at the offending input.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldContent  = "content"
)

const (
	MinPasswordBytes  = 8
	MaxPasswordBytes  = 72 // bcrypt ignores everything past 72 bytes
	MaxContentRunes   = 280
	usernamePatternRx = `^[a-zA-Z0-9_]{3,32}$`
)

var usernamePattern = regexp.MustCompile(usernamePatternRx)

// FeedValidator implements [Validator] for the request bodies of the feed
// API: models.Credentials and models.CreatePostRequest.
type FeedValidator struct{}

// NewFeedValidator constructs a FeedValidator and returns it as Validator.
func NewFeedValidator() Validator {
	return &FeedValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Returns ErrUnsupportedType for anything else.
//
// Post content is validated as given; callers trim it first.
func (v *FeedValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	case models.CreatePostRequest:
		return v.validateCreatePost(value, fields...)
	case *models.CreatePostRequest:
		return v.validateCreatePost(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateCredentials checks signup credentials.
//
// Default validated fields: username, password.
func (v *FeedValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !usernamePattern.MatchString(creds.Username) {
				return NewFieldError(FieldUsername, ErrInvalidUsername)
			}
		case FieldPassword:
			if n := len(creds.Password); n < MinPasswordBytes || n > MaxPasswordBytes {
				return NewFieldError(FieldPassword, ErrInvalidPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FeedValidator) validateCreatePost(req models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if strings.TrimSpace(req.Content) == "" {
				return NewFieldError(FieldContent, ErrEmptyContent)
			}
			if utf8.RuneCountInString(req.Content) > MaxContentRunes {
				return NewFieldError(FieldContent, ErrContentTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
