package jwt

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now

var (
	ErrTokenNotValid error = errors.New("token is not valid")
	ErrTokenExpired  error = errors.New("token expired")
	ErrMissingScope  error = errors.New("token lacks required scope")
)

// ScopeWrite allows pushing transaction notices and changing the session or
// the user-added tokens.
const ScopeWrite = "sync:write"

// ScopeRead allows reading snapshots, search results and decrypted values.
const ScopeRead = "sync:read"

// TokenInfo describes a token handed to a wallet host.
type TokenInfo struct {
	Subject    string
	Scopes     []string
	Expiration time.Duration
}

type Claims struct {
	jwt.StandardClaims
	Scopes []string `json:"scopes"`
}

func (c *Claims) Allows(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

// Issue signs a token for info.
func (s *JWTService) Issue(info TokenInfo) (string, error) {
	now := TimeNow()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   info.Subject,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(info.Expiration).Unix(),
		},
		Scopes: info.Scopes,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature and expiry against TimeNow.
func (s *JWTService) Validate(token string) (*Claims, error) {
	parser := &jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS512.Alg()},
		SkipClaimsValidation: true,
	}

	claims := &Claims{}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}); err != nil {
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if claims.ExpiresAt != 0 && claims.ExpiresAt < TimeNow().Unix() {
		return nil, fmt.Errorf("token expired at %v: %w", time.Unix(claims.ExpiresAt, 0), ErrTokenExpired)
	}

	return claims, nil
}

// Authorize validates token and requires scope.
func (s *JWTService) Authorize(token string, scope string) (*Claims, error) {
	claims, err := s.Validate(token)
	if err != nil {
		return nil, err
	}
	if !claims.Allows(scope) {
		return nil, fmt.Errorf("%w: %s", ErrMissingScope, scope)
	}
	return claims, nil
}
