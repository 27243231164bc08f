// Package auth issues and verifies the signed session tokens that bind a
// request to a user identity.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a session token: the registered claims
// plus the user identity and admin flag.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64 `json:"uid"`
	IsAdmin bool  `json:"adm,omitempty"`
}

// GenerateToken mints an HS256-signed token for the given user. Tokens
// always carry an expiry claim; there is no unbounded session.
func GenerateToken(userID int64, isAdmin bool, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:  userID,
		IsAdmin: isAdmin,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates the signature and expiry of tokenString and returns
// its claims. It fails with common.ErrTokenExpired for expired tokens and
// common.ErrInvalidToken for anything else that does not verify.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
