package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Action identifiers stored in the permissions table
const (
	ActionAuctionCreate = "auction:create"
	ActionAuctionUpdate = "auction:update"
	ActionAuctionDelete = "auction:delete"
	ActionBidPlace      = "bid:place"
	ActionUserBan       = "user:ban"
	ActionUserVerify    = "user:verify"
)
