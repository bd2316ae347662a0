package service

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tohsaka888/societies-server/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokens(t)

	token, err := svc.Issue("alice", "u-1")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "u-1", claims.UserID)

	expired, err := svc.IsExpired(claims, time.Now())
	require.NoError(t, err)
	assert.False(t, expired)
}

func TestTokenService_WireFormat(t *testing.T) {
	svc := newTestTokens(t)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	token, err := svc.Issue("alice", "u-1")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	header, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"HS512","typ":"JWT"}`, string(header))

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "alice", payload["username"])
	assert.Equal(t, "u-1", payload["userId"])
	assert.Equal(t, float64(fixed.Add(15*24*time.Hour).Unix()), payload["exp"])

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	assert.Len(t, sig, 64)
}

func TestTokenService_AnySignatureBitFlipIsRejected(t *testing.T) {
	svc := newTestTokens(t)

	token, err := svc.Issue("alice", "u-1")
	require.NoError(t, err)

	dot := strings.LastIndex(token, ".")
	signingInput, encodedSig := token[:dot], token[dot+1:]
	sig, err := base64.RawURLEncoding.DecodeString(encodedSig)
	require.NoError(t, err)

	for i := 0; i < len(sig)*8; i++ {
		tampered := append([]byte(nil), sig...)
		tampered[i/8] ^= 1 << (i % 8)

		_, err := svc.Verify(signingInput + "." + base64.RawURLEncoding.EncodeToString(tampered))
		if !assert.ErrorIs(t, err, ErrBadSignature, "bit %d", i) {
			return
		}
	}
}

func TestTokenService_AlteredSignatureTextIsRejected(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	svc := newTestTokens(t)

	token, err := svc.Issue("alice", "u-1")
	require.NoError(t, err)

	// The last of the 86 signature characters carries 4 padding bits.
	head, last := token[:len(token)-1], token[len(token)-1]
	for _, c := range []byte(alphabet) {
		if c == last {
			continue
		}
		_, err := svc.Verify(head + string(c))
		if !assert.ErrorIs(t, err, ErrBadSignature, "last char %q -> %q", last, c) {
			return
		}
	}

	altered := head + string(alphabet[(strings.IndexByte(alphabet, last)+1)%len(alphabet)])
	session := NewSessionService(svc).Status(altered, time.Now())
	assert.Equal(t, domain.SessionInvalid, session.State)
}

func TestTokenService_TamperedPayloadIsRejected(t *testing.T) {
	svc := newTestTokens(t)

	token, err := svc.Issue("alice", "u-1")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"username":"mallory","userId":"u-1","exp":9999999999}`))

	_, err = svc.Verify(parts[0] + "." + forged + "." + parts[2])
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestTokenService_OtherKeyOrAlgorithmIsBadSignature(t *testing.T) {
	svc := newTestTokens(t)
	claims := TokenClaims{
		Username: "alice",
		UserID:   "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	otherKey, err := NewSigningKey("another secret")
	require.NoError(t, err)
	foreign, err := NewTokenService(otherKey, time.Hour).Issue("alice", "u-1")
	require.NoError(t, err)

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(svc.key))
	require.NoError(t, err)

	for name, token := range map[string]string{"other key": foreign, "HS256": hs256} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, ErrBadSignature)
		})
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := newTestTokens(t)

	for _, token := range []string{"", "abc", "a.b.c", "a.b", "!!!.???.###"} {
		t.Run(token, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestTokenService_ExpiredTokenStillVerifies(t *testing.T) {
	svc := newTestTokens(t)
	svc.now = func() time.Time { return time.Now().Add(-30 * 24 * time.Hour) }

	token, err := svc.Issue("alice", "u-1")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	expired, err := svc.IsExpired(claims, time.Now())
	require.NoError(t, err)
	assert.True(t, expired)
}

func TestTokenService_IsExpiredBoundary(t *testing.T) {
	svc := newTestTokens(t)
	exp := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	claims := &TokenClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}}

	expired, err := svc.IsExpired(claims, exp.Add(-time.Second))
	require.NoError(t, err)
	assert.False(t, expired)

	expired, err = svc.IsExpired(claims, exp)
	require.NoError(t, err)
	assert.True(t, expired)
}

func TestTokenService_MissingExpiry(t *testing.T) {
	svc := newTestTokens(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, TokenClaims{Username: "alice", UserID: "u-1"}).
		SignedString([]byte(svc.key))
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	_, err = svc.IsExpired(claims, time.Now())
	assert.ErrorIs(t, err, ErrMissingExpiry)

	_, err = svc.IsExpired(nil, time.Now())
	assert.ErrorIs(t, err, ErrMissingExpiry)
}

func TestNewTokenService_DefaultTTL(t *testing.T) {
	key, err := NewSigningKey("s")
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, NewTokenService(key, 0).ttl)
}

func TestNewSigningKey(t *testing.T) {
	a1, err := NewSigningKey("secret-a")
	require.NoError(t, err)
	a2, err := NewSigningKey("secret-a")
	require.NoError(t, err)
	b, err := NewSigningKey("secret-b")
	require.NoError(t, err)

	assert.Len(t, a1, SigningKeySize)
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b)

	r1, err := NewSigningKey("")
	require.NoError(t, err)
	r2, err := NewSigningKey("")
	require.NoError(t, err)
	assert.Len(t, r1, SigningKeySize)
	assert.NotEqual(t, r1, r2)
}
