package model

// Role is the event role of a caller.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleVolunteer Role = "VOLUNTEER"
	RoleUser      Role = "USER"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleVolunteer, RoleUser:
		return true
	}
	return false
}

// IsStaff reports whether r is an organizer-side role (ADMIN or VOLUNTEER).
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleVolunteer
}

