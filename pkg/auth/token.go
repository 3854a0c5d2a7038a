package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer mints and decodes HS256 bearer tokens carrying a user id.
//
// Decode deliberately skips exp validation: the token's embedded expiry is
// advisory only, and session liveness is decided by the sessions table. A
// renewed session therefore keeps working with a token whose exp claim is in
// the past. Callers must always pair Decode with a session lookup.
type TokenIssuer struct {
	secret []byte
	method jwt.SigningMethod
}

func NewTokenIssuer(secret, algorithm string) (*TokenIssuer, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("only HMAC signing algorithms are supported, got %s", algorithm)
	}
	return &TokenIssuer{secret: []byte(secret), method: method}, nil
}

// Issue signs a token with claims {user_id, exp = now + ttl}.
func (t *TokenIssuer) Issue(userID int64, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(t.method, claims)
	return token.SignedString(t.secret)
}

// Decode verifies the signature and signing method and returns the embedded
// user id. Expired tokens still decode successfully.
func (t *TokenIssuer) Decode(tokenString string) (int64, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{t.method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	// JSON numbers decode as float64
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return 0, ErrInvalidToken
	}
	return int64(rawID), nil
}
