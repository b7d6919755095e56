// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,min=1,max=50"`
}

type UserResponse struct {
	ID        int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type RoleUpdatedResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type UserDeletedResponse struct {
	Message string       `json:"message"`
	Deleted UserResponse `json:"deleted"`
}

type ListUsersParams struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Role  string `json:"role"`
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
	maxPage          = 100_000
)

// Normalize clamps paging so Offset can never overflow.
func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > maxPage {
		p.Page = maxPage
	}
	if p.Limit < 1 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
