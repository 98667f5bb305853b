// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-feed/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedValidator(t *testing.T) {
	v := NewFeedValidator()
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewFeedValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewFeedValidator().Validate(context.Background(), models.Credentials{}, "email")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_Credentials(t *testing.T) {
	tests := []struct {
		name      string
		creds     models.Credentials
		wantField string
		wantErr   error
	}{
		{name: "valid", creds: models.Credentials{Username: "alice_01", Password: "password1"}},
		{name: "max lengths", creds: models.Credentials{Username: strings.Repeat("a", 32), Password: strings.Repeat("p", 72)}},
		{name: "short username", creds: models.Credentials{Username: "al", Password: "password1"}, wantField: FieldUsername, wantErr: ErrInvalidUsername},
		{name: "long username", creds: models.Credentials{Username: strings.Repeat("a", 33), Password: "password1"}, wantField: FieldUsername, wantErr: ErrInvalidUsername},
		{name: "username with dash", creds: models.Credentials{Username: "al-ice", Password: "password1"}, wantField: FieldUsername, wantErr: ErrInvalidUsername},
		{name: "username with space", creds: models.Credentials{Username: "al ice", Password: "password1"}, wantField: FieldUsername, wantErr: ErrInvalidUsername},
		{name: "short password", creds: models.Credentials{Username: "alice", Password: "1234567"}, wantField: FieldPassword, wantErr: ErrInvalidPassword},
		{name: "long password", creds: models.Credentials{Username: "alice", Password: strings.Repeat("p", 73)}, wantField: FieldPassword, wantErr: ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFeedValidator().Validate(context.Background(), tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.wantField, fieldErr.Field)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_CredentialsPointerAndScope(t *testing.T) {
	creds := &models.Credentials{Username: "alice", Password: "x"}

	// only the username is checked
	assert.NoError(t, NewFeedValidator().Validate(context.Background(), creds, FieldUsername))
	assert.ErrorIs(t, NewFeedValidator().Validate(context.Background(), creds), ErrInvalidPassword)
}

func TestValidate_CreatePost(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "valid", content: "hello"},
		{name: "exactly 280 runes", content: strings.Repeat("ж", 280)},
		{name: "empty", content: "", wantErr: ErrEmptyContent},
		{name: "whitespace only", content: " \t\n ", wantErr: ErrEmptyContent},
		{name: "281 runes", content: strings.Repeat("a", 281), wantErr: ErrContentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFeedValidator().Validate(context.Background(), models.CreatePostRequest{Content: tt.content})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, FieldContent, fieldErr.Field)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFieldError_Message(t *testing.T) {
	err := NewFieldError(FieldContent, ErrEmptyContent)
	assert.Equal(t, "invalid content: content must not be blank", err.Error())
}
