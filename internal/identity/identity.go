// Package identity resolves which user the profile API calls act for.
package identity

import "strings"

// Guest is the sentinel username used when no identity is configured.
const Guest = "guest"

// GuestWarning is shown to guest users. It is advisory only; no operation is
// blocked on the client.
const GuestWarning = "You are currently logged in as guest. You can not edit the profile."

// Resolve returns the first non-blank candidate, or Guest.
func Resolve(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return Guest
}

// IsGuest reports whether username is the guest sentinel.
func IsGuest(username string) bool {
	return username == Guest
}
