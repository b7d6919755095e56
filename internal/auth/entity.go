// AngelaMos | 2026
// entity.go

package auth

import (
	"time"

	"github.com/CodeSancho/GeospartialLib/internal/middleware"
)

// Session is the decoded content of a verified session token.
type Session struct {
	ID        string
	UserID    int64
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (s *Session) Identity() *middleware.Identity {
	return &middleware.Identity{
		UserID: s.UserID,
		Role:   s.Role,
	}
}
