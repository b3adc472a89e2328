package validators

import "strings"

// IsEmailShapeValid checks the minimal shape the reservation flow relies on:
// a single last "@" with non-empty local and domain parts. No DNS lookups.
func IsEmailShapeValid(email string) bool {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	if strings.ContainsAny(email, " \t") {
		return false
	}

	return true
}

// HasRecipientAddress is the looser check used before dispatching an email:
// the original workflow only requires the address to contain "@".
func HasRecipientAddress(email string) bool {
	return strings.Contains(email, "@")
}
