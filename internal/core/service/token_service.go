package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued session token stays valid.
const DefaultTokenTTL = 15 * 24 * time.Hour

// TokenClaims is the decoded token payload: {username, exp, userId}.
type TokenClaims struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
	jwt.RegisteredClaims
}

type TokenService struct {
	key    SigningKey
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

func NewTokenService(key SigningKey, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		key: key,
		ttl: ttl,
		now: time.Now,
		// Expiry is judged by IsExpired, not by the parser. Strict decoding
		// rejects segments with non-zero trailing bits, so exactly one string
		// encodes each signature.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
			jwt.WithoutClaimsValidation(),
			jwt.WithStrictDecoding(),
		),
	}
}

// Issue signs a token for the user that expires ttl from now.
func (s *TokenService) Issue(username, userID string) (string, error) {
	claims := TokenClaims{
		Username: username,
		UserID:   userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte(s.key))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks structure and signature only. It returns ErrMalformedToken
// or ErrBadSignature; an expired but correctly signed token verifies.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.key), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %v", ErrBadSignature, err)
		case errors.Is(err, jwt.ErrTokenMalformed) && s.signedPartDecodes(tokenString):
			// Header and payload are well formed, so the signature segment
			// is the part that failed to decode.
			return nil, fmt.Errorf("%w: %v", ErrBadSignature, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
	}
	if !token.Valid {
		return nil, ErrBadSignature
	}
	return claims, nil
}

func (s *TokenService) signedPartDecodes(tokenString string) bool {
	_, _, err := s.parser.ParseUnverified(tokenString, &TokenClaims{})
	return err == nil
}

// IsExpired reports whether claims are past their expiry at now, at
// one-second resolution. Claims without an expiry are an error.
func (s *TokenService) IsExpired(claims *TokenClaims, now time.Time) (bool, error) {
	if claims == nil || claims.ExpiresAt == nil {
		return false, ErrMissingExpiry
	}
	return claims.ExpiresAt.Unix() <= now.Unix(), nil
}
