// AngelaMos | 2026
// jwt.go

package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/CodeSancho/GeospartialLib/internal/config"
	"github.com/CodeSancho/GeospartialLib/internal/core"
)

const defaultTokenLifetime = time.Hour

// TokenManager signs and verifies HS256 session tokens with a shared secret.
type TokenManager struct {
	key    jwk.Key
	config config.JWTConfig
	now    func() time.Time
}

func NewTokenManager(cfg config.JWTConfig) (*TokenManager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if cfg.AccessTokenExpire <= 0 {
		cfg.AccessTokenExpire = defaultTokenLifetime
	}

	return &TokenManager{
		key:    key,
		config: cfg,
		now:    time.Now,
	}, nil
}

// WithClock swaps the time source used for issuing and validating tokens.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

func (m *TokenManager) Lifetime() time.Duration {
	return m.config.AccessTokenExpire
}

func (m *TokenManager) Issue(userID int64, role string) (string, *Session, error) {
	now := m.now().Truncate(time.Second)

	session := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.config.AccessTokenExpire),
	}

	builder := jwt.NewBuilder().
		JwtID(session.ID).
		Subject(strconv.FormatInt(userID, 10)).
		IssuedAt(session.IssuedAt).
		NotBefore(session.IssuedAt).
		Expiration(session.ExpiresAt).
		Claim("role", role)
	if m.config.Issuer != "" {
		builder = builder.Issuer(m.config.Issuer)
	}

	token, err := builder.Build()
	if err != nil {
		return "", nil, fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return string(signed), session, nil
}

// Parse accepts a token only while the clock is strictly before its expiry.
func (m *TokenManager) Parse(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("verify token: %w", core.ErrUnauthenticated)
	}

	opts := []jwt.ParseOption{
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(m.now)),
	}
	if m.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.config.Issuer))
	}

	token, err := jwt.Parse([]byte(tokenString), opts...)
	if err != nil {
		if errors.Is(err, jwt.TokenExpiredError()) {
			return nil, fmt.Errorf("verify token: expired: %w", core.ErrTokenInvalid)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || userID < 1 {
		return nil, fmt.Errorf(
			"verify token: malformed subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var role string
	if err := token.Get("role", &role); err != nil || role == "" {
		return nil, fmt.Errorf(
			"verify token: missing role claim: %w",
			core.ErrTokenInvalid,
		)
	}

	session := &Session{
		UserID: userID,
		Role:   role,
	}
	if jti, ok := token.JwtID(); ok {
		session.ID = jti
	}
	if iat, ok := token.IssuedAt(); ok {
		session.IssuedAt = iat
	}
	if exp, ok := token.Expiration(); ok {
		session.ExpiresAt = exp
	}

	return session, nil
}
