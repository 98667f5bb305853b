// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of an identity token: the standard registered
// claims (sub = username, iat, exp, iss) plus the numeric user id.
type TokenClaims struct {
	jwt.RegisteredClaims

	// UserID is carried in the "uid" claim.
	UserID int64 `json:"uid"`
}

// Token is an issued identity token.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in the Authorization header.
type Token struct {
	Subject      string
	UserID       int64
	IssuedAt     time.Time
	ExpiresAt    time.Time
	SignedString string
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Identity returns the identity the token was issued for.
func (t Token) Identity() Identity {
	return Identity{Subject: t.Subject, UserID: t.UserID}
}
