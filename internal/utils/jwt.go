package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes tokenString without verifying its signature and returns
// the expiry time from the "exp" claim. The client never holds the signing
// key, so unverified parsing is the only inspection it can do; the backend
// remains the authority on token validity.
//
// Returns an error if the token cannot be parsed or carries no expiry claim.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, errors.New("invalid token claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}

	return exp.Time, nil
}

// IsTokenExpired reports whether tokenString is expired, or will expire within
// leeway. A token that fails to decode at all is classified expired by the
// same predicate.
func IsTokenExpired(tokenString string, leeway time.Duration) bool {
	expiry, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}

	return !time.Now().Add(leeway).Before(expiry)
}
