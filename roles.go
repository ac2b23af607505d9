package accounts

// roleHierarchy orders roles by privilege. Gates compare levels rather
// than enumerating roles so adding a tier cannot miss a check.
var roleHierarchy = map[Role]int{
	RoleUser:  0,
	RoleAdmin: 1,
	RoleOwner: 2,
}

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

// IsAtLeast checks if this role meets the minimum required level
func (r Role) IsAtLeast(minRole Role) bool {
	currentLevel, exists := roleHierarchy[r]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// AllRoles returns all predefined roles in hierarchical order
func AllRoles() []Role {
	return []Role{
		RoleUser,
		RoleAdmin,
		RoleOwner,
	}
}

// ParseRole safely parses a string into a Role type
func ParseRole(roleStr string) (Role, bool) {
	role := Role(roleStr)
	return role, role.IsValid()
}
