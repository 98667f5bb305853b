package utils

import (
	"strings"

	"github.com/google/uuid"
)

// MaxRequestIDLength caps client supplied request ids; longer ones are
// replaced with a generated id.
const MaxRequestIDLength = 128

// RequestIDGenerator produces request ids. Generated ids are UUIDv7 so
// they sort by creation time in logs.
type RequestIDGenerator struct {
	maxLength int
}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{maxLength: MaxRequestIDLength}
}

func (g *RequestIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Resolve keeps an incoming id when it is non-blank and short enough and
// generates a new one otherwise.
func (g *RequestIDGenerator) Resolve(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" || len(incoming) > g.maxLength {
		return g.Generate()
	}
	return incoming
}
