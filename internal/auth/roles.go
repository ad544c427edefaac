package auth

// Role codes carried inside user records and access tokens.
const (
	RoleUser       = 2001
	RoleAdmin      = 5150
	RoleGroupAdmin = 1984
)

// DefaultRoles is assigned at signup.
func DefaultRoles() []int {
	return []int{RoleUser}
}

// HasAnyRole reports whether have and want intersect.
func HasAnyRole(have []int, want ...int) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
