package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// TokenClaims holds the access token claims the client cares about.
type TokenClaims struct {
	// Subject is the auth user id ("sub").
	Subject string
	// Email is the optional "email" claim issued by the auth server.
	Email string
	// ExpiresAt is the "exp" claim; zero when absent.
	ExpiresAt time.Time
}

// ParseBearerToken extracts the token from an Authorization header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseTokenClaims reads the claims of an access token WITHOUT verifying its
// signature. The client never holds the signing key; the backend verifies
// tokens on every request. The result is only used for expiry bookkeeping.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("parse access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errors.New("invalid token claims")
	}

	var out TokenClaims
	if out.Subject, err = claims.GetSubject(); err != nil {
		return TokenClaims{}, fmt.Errorf("read subject claim: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}

	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}

	return out, nil
}
