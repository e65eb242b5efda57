package domain

import "errors"

// Role is carried by an Actor and decides which mutations it may perform
// on its own, without any operation-scoped grant.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

var ErrInvalidRole = errors.New("invalid role")

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleSystem, RoleUser:
		return Role(value), nil
	case "":
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

// Actor is the identity on whose behalf an operation runs. It is passed
// explicitly to every guarded operation.
type Actor struct {
	ID   ID
	Role Role
}

func SystemActor() Actor {
	return Actor{ID: "system", Role: RoleSystem}
}

func (a Actor) IsPrivileged() bool {
	return a.Role == RoleSystem
}

func (a Actor) String() string {
	if a.ID.IsEmpty() {
		return "anonymous"
	}
	return a.ID.String()
}
