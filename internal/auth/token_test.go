package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPrincipal = Principal{ID: "u-1", Email: "a@x.com", Name: "A", Role: "user"}

func TestIssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("super-secret", time.Hour)
	tok, err := tokens.Issue(testPrincipal)
	require.NoError(t, err)

	got, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, testPrincipal, got)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("super-secret", -time.Second)
	tok, err := tokens.Issue(testPrincipal)
	require.NoError(t, err)

	_, err = tokens.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()

	tok, err := NewTokens("right-secret", time.Hour).Issue(testPrincipal)
	require.NoError(t, err)

	_, err = NewTokens("wrong-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("super-secret", time.Hour)
	tok, err := tokens.Issue(testPrincipal)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	forged := strings.Replace(string(payload), `"role":"user"`, `"role":"admin"`, 1)
	require.NotEqual(t, string(payload), forged, "role claim not found in payload")
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

	_, err = tokens.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokens("k", time.Hour).Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokens("k", time.Hour).Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// A signature-valid token whose claims lack the principal fields must be
// rejected, not passed through as an empty identity.
func TestVerify_MissingPrincipal(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokens(secret, time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// Tokens signed with "none" or any non-HMAC method are rejected.
func TestVerify_AlgConfusion(t *testing.T) {
	t.Parallel()

	raw := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Principal: testPrincipal,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tok, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokens("super-secret", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
