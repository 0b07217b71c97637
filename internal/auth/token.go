package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Principal is the identity a verified credential asserts.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type Claims struct {
	Principal
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 credentials. Key and lifetime are fixed
// at construction; nothing here reads ambient state.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue signs a credential binding p to an expiry one TTL from now. The
// signature covers the whole payload, so altering any principal field
// invalidates it.
func (t *Tokens) Issue(p Principal) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Principal: p,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	return tok.SignedString(t.secret)
}

// Verify fails closed: any parse, signature, expiry, or claim-shape problem
// yields ErrInvalidToken rather than a partial principal.
func (t *Tokens) Verify(tokenString string) (Principal, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return Principal{}, ErrInvalidToken
	}
	if claims.Principal.ID == "" || claims.Principal.Role == "" {
		return Principal{}, ErrInvalidToken
	}
	return claims.Principal, nil
}
