// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/CodeSancho/GeospartialLib/internal/core"
	"github.com/CodeSancho/GeospartialLib/internal/middleware"
)

var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", core.ErrUnauthenticated)
	ErrNoFields           = fmt.Errorf("no valid fields provided: %w", core.ErrValidation)
)

type UserInfo struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash *string
	Role         string
	CreatedAt    time.Time
}

// ProfileUpdate carries the columns a profile change may set. Nil keeps the
// stored value.
type ProfileUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id int64) (*UserInfo, error)
	Create(
		ctx context.Context,
		username, email, passwordHash, role string,
	) (*UserInfo, error)
	UpdateProfile(
		ctx context.Context,
		id int64,
		update ProfileUpdate,
	) (*UserInfo, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type Options struct {
	// VerifyCurrentRole re-reads the stored account on every request so that
	// role changes and deletions take effect before the token expires.
	VerifyCurrentRole bool
}

type Service struct {
	tokens *TokenManager
	users  UserProvider
	opts   Options
}

func NewService(
	tokens *TokenManager,
	users UserProvider,
	opts Options,
) *Service {
	return &Service{
		tokens: tokens,
		users:  users,
		opts:   opts,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (_ *UserInfo, err error) {
	ctx, span := core.StartSpan(ctx, "auth.Register")
	defer func() { core.EndSpan(span, err) }()

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("register: %w", core.ErrValidation)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if errors.Is(err, core.ErrValidation) {
		return nil, fmt.Errorf("register: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrStorage, err)
	}

	user, err := s.users.Create(
		ctx,
		username,
		strings.ToLower(email),
		passwordHash,
		strings.TrimSpace(req.Role),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create user: %v", core.ErrStorage, err)
	}

	slog.InfoContext(ctx, "account registered",
		"user_id", user.ID,
		"role", user.Role,
	)

	return user, nil
}

type LoginResult struct {
	Token   string
	Session *Session
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (_ *LoginResult, err error) {
	ctx, span := core.StartSpan(ctx, "auth.Login")
	defer func() { core.EndSpan(span, err) }()

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("login: %w", core.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: get user: %v", core.ErrStorage, err)
	}

	span.SetAttributes(attribute.Int64("user.id", user.ID))

	if user.PasswordHash == nil || *user.PasswordHash == "" {
		slog.ErrorContext(ctx, "stored account has no password digest",
			"user_id", user.ID,
		)
		return nil, fmt.Errorf("login: user %d: %w", user.ID, core.ErrIntegrity)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, user.PasswordHash)
	if err != nil {
		slog.ErrorContext(ctx, "stored password digest is unreadable",
			"user_id", user.ID,
			"error", err,
		)
		return nil, fmt.Errorf("login: user %d: %w", user.ID, core.ErrIntegrity)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if core.NeedsRehash(*user.PasswordHash) {
		if newHash, hashErr := core.HashPassword(req.Password); hashErr == nil {
			//nolint:errcheck // best-effort rehash upgrade
			_ = s.users.UpdatePassword(ctx, user.ID, newHash)
		}
	}

	token, session, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{Token: token, Session: session}, nil
}

// VerifyToken resolves a bearer token to the identity it asserts. The embedded
// role is returned as is unless VerifyCurrentRole is enabled.
func (s *Service) VerifyToken(
	ctx context.Context,
	token string,
) (*middleware.Identity, error) {
	session, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	identity := session.Identity()

	if !s.opts.VerifyCurrentRole {
		return identity, nil
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf(
				"verify token: account %d gone: %w",
				session.UserID,
				core.ErrTokenInvalid,
			)
		}
		return nil, fmt.Errorf("verify token: %w", err)
	}

	identity.Role = user.Role
	return identity, nil
}

func (s *Service) GetProfile(
	ctx context.Context,
	userID int64,
) (*UserInfo, error) {
	if userID == 0 {
		return nil, fmt.Errorf("get profile: %w", core.ErrUnauthenticated)
	}

	return s.users.GetByID(ctx, userID)
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	userID int64,
	req UpdateProfileRequest,
) (_ *UserInfo, err error) {
	ctx, span := core.StartSpan(ctx, "auth.UpdateProfile",
		attribute.Int64("user.id", userID),
	)
	defer func() { core.EndSpan(span, err) }()

	if userID == 0 {
		return nil, fmt.Errorf("update profile: %w", core.ErrUnauthenticated)
	}

	var update ProfileUpdate

	if req.Username != nil {
		if v := strings.TrimSpace(*req.Username); v != "" {
			update.Username = &v
		}
	}

	if req.Email != nil {
		if v := strings.ToLower(strings.TrimSpace(*req.Email)); v != "" {
			update.Email = &v
		}
	}

	if nonEmpty(req.CurrentPassword) && nonEmpty(req.NewPassword) {
		hash, err := s.replacePassword(ctx, userID, *req.CurrentPassword, *req.NewPassword)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	if update.Username == nil && update.Email == nil && update.PasswordHash == nil {
		return nil, ErrNoFields
	}

	return s.users.UpdateProfile(ctx, userID, update)
}

func (s *Service) replacePassword(
	ctx context.Context,
	userID int64,
	current, next string,
) (string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if user.PasswordHash == nil || *user.PasswordHash == "" {
		slog.ErrorContext(ctx, "stored account has no password digest",
			"user_id", user.ID,
		)
		return "", fmt.Errorf("update profile: user %d: %w", user.ID, core.ErrIntegrity)
	}

	valid, err := core.VerifyPassword(current, *user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("update profile: user %d: %w", user.ID, core.ErrIntegrity)
	}
	if !valid {
		return "", ErrInvalidCredentials
	}

	hash, err := core.HashPassword(next)
	if err != nil {
		return "", fmt.Errorf("update profile: user %d: %w", user.ID, err)
	}

	return hash, nil
}

// Logout holds no server state; the client discards its token.
func (s *Service) Logout(ctx context.Context, token string) error {
	session, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "session ended",
		"user_id", session.UserID,
		"session_id", session.ID,
	)

	return nil
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
