package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{CodeUnauthorized, MsgUnauthorized},
		{CodeForbidden, MsgAccessDenied},
		{CodeInvalidCursor, MsgInvalidCursor},
		{CodeInvalidCredentials, MsgInvalidLoginPassword},
		{CodeUsernameTaken, MsgUsernameTaken},
		{CodeInternal, MsgInternalServerError},
		{"something_new", "something_new"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.code))
		})
	}
}

func TestMessage_EveryCodeHasWording(t *testing.T) {
	codes := []string{
		CodeUnauthorized, CodeForbidden, CodeNotFound, CodeInvalidRequest, CodeValidation,
		CodeInvalidCursor, CodeInvalidCredentials, CodeUsernameTaken, CodeNotReady, CodeInternal,
	}

	for _, code := range codes {
		assert.NotEqual(t, code, Message(code), "code %q has no message", code)
	}
}
