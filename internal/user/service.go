// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/CodeSancho/GeospartialLib/internal/auth"
	"github.com/CodeSancho/GeospartialLib/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id int64,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	username, email, passwordHash, role string,
) (*auth.UserInfo, error) {
	if role == "" {
		role = RoleUser
	}

	user := &User{
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: &passwordHash,
		Role:         role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	id int64,
	update auth.ProfileUpdate,
) (*auth.UserInfo, error) {
	changes := ProfileChanges{
		Username:     update.Username,
		PasswordHash: update.PasswordHash,
	}
	if update.Email != nil {
		lowered := strings.ToLower(*update.Email)
		changes.Email = &lowered
	}

	if changes.Empty() {
		return nil, fmt.Errorf("update profile: %w", core.ErrValidation)
	}

	user, err := s.repo.UpdateProfile(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	id int64,
	passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, id, passwordHash)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return s.repo.List(ctx, params)
}

// UpdateUserRole accepts any non-empty role. Tokens already issued keep the
// role they were signed with.
func (s *Service) UpdateUserRole(
	ctx context.Context,
	id int64,
	role string,
) (*User, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, fmt.Errorf("update role: empty role: %w", core.ErrValidation)
	}

	return s.repo.UpdateRole(ctx, id, role)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) RoleCounts(ctx context.Context) ([]RoleCount, error) {
	return s.repo.CountByRole(ctx)
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
