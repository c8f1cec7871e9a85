package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrOpaqueToken = errors.New("access token is not a JWT")

// TokenInfo is what the status command can tell about a stored access value.
// The claims are read without verifying the signature: the client has no key,
// and nothing here is used for an access decision.
type TokenInfo struct {
	UserID    string
	Subject   string
	TokenType string
	ExpiresAt time.Time
	Expired   bool
}

func Describe(token string, now time.Time) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("%w: %v", ErrOpaqueToken, err)
	}

	var info TokenInfo
	if v, ok := claims["user_id"]; ok && v != nil {
		info.UserID = fmt.Sprint(v)
	}
	if v, ok := claims["token_type"].(string); ok {
		info.TokenType = v
	}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
		info.Expired = !now.Before(exp.Time)
	}
	return info, nil
}
