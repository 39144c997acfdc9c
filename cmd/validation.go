package cmd

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validEmail checks the basic shape of an e-mail address. The backend does
// the authoritative validation; this only catches obvious typos before a
// network call.
func validEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// validPassword enforces the platform's password policy: at least 8
// characters with one uppercase letter, one digit and one special
// character.
func validPassword(senha string) bool {
	if len(senha) < 8 {
		return false
	}
	var upper, digit, special bool
	for _, r := range senha {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		}
	}
	return upper && digit && special
}

// digitsOnly strips mask characters from CNPJ/phone input.
func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
