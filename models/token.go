package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by both access and refresh tokens.
// On top of the registered claims (iss, sub, iat, exp) it carries the user's
// email, matching the payload shape {sub: userId, email}.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the account email of the token's subject.
	Email string `json:"email"`
}

// Token wraps a parsed or freshly issued JWT with convenience accessors used
// by the authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in a response body or
// compared against the copy persisted for the user.
//
// UserID and Email are parsed copies of the "sub" and "email" claims,
// populated during generation/validation to avoid repeated claim parsing.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Email is the account email extracted from the "email" claim.
	Email string `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim and
// parses it as a base-10 int64.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString := t.Claims.Subject
	if userIDString == "" {
		return 0, fmt.Errorf("error extracting UserID from token: empty subject")
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is an access/refresh token pair issued on successful login or
// refresh-token rotation.
type TokenPair struct {
	// AccessToken is the short-lived token presented on authenticated calls.
	AccessToken Token

	// RefreshToken is the long-lived token used to obtain the next pair.
	// Its signed string is persisted per user; at most one is valid at a time.
	RefreshToken Token
}
