package contact

import "strings"

// IsValidEmail reports whether s has the shape local@domain.tld.
// It only checks the shape; deliverability is never verified.
func IsValidEmail(s string) bool {
	if strings.Count(s, "@") != 1 {
		return false
	}
	local, domain, _ := strings.Cut(s, "@")
	if local == "" {
		return false
	}

	// Any dot in the domain with text on both sides will do.
	for i := 1; i < len(domain)-1; i++ {
		if domain[i] == '.' {
			return true
		}
	}
	return false
}
