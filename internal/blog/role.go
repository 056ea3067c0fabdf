package blog

import (
	"fmt"
)

// Role is a ranked member tier: Member < Manager < Owner.
type Role int

const (
	RoleMember Role = iota
	RoleManager
	RoleOwner
)

var roleNames = map[Role]string{
	RoleMember:  "Member",
	RoleManager: "Manager",
	RoleOwner:   "Owner",
}

func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown role %q", ErrInvalidRequest, s)
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}

	return fmt.Sprintf("Role(%d)", int(r))
}

// Outranks reports whether r is a strictly higher tier than other.
func (r Role) Outranks(other Role) bool {
	return r > other
}

// AtLeast reports whether r is other or a higher tier.
func (r Role) AtLeast(other Role) bool {
	return r >= other
}

// Moderates reports whether r may moderate content or accounts owned by target:
// the Owner moderates everyone, others only strictly lower tiers.
func (r Role) Moderates(target Role) bool {
	return r.AtLeast(RoleOwner) || r.Outranks(target)
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}

	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}

	*r = role
	return nil
}
