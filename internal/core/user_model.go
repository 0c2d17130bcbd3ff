package core

import (
	"context"
	"strings"
	"time"
)

// Portal roles. Schedulers and admins see every event stream row; everyone
// else sees only rows linked to their own employee record.
const (
	RoleAdmin      = "admin"
	RoleScheduler  = "scheduler"
	RoleTechnician = "technician"
)

// User is an authenticated portal account. AuthUID is the subject asserted by
// the external identity provider. Imported records are always stamped with
// the user resolved from that identity — never with identity data found in
// row cells.
type User struct {
	ID        int
	AuthUID   string
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
}

// CanViewAllEvents reports whether the user may see every row of the travel
// and work streams, or only their own.
func (u User) CanViewAllEvents() bool {
	switch strings.ToLower(u.Role) {
	case RoleAdmin, RoleScheduler:
		return true
	}
	return false
}

// UserService resolves portal accounts, in particular the uploader identity
// stamped onto every imported record.
type UserService interface {
	// GetByAuthUID returns the account for an identity-provider subject.
	GetByAuthUID(ctx context.Context, authUID string) (*User, error)

	// GetByEmail returns the account for an email address.
	GetByEmail(ctx context.Context, email string) (*User, error)
}
