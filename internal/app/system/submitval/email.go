// internal/app/system/submitval/email.go
package submitval

import "strings"

// IsValidEmail reports whether s looks like a plain RFC 5322 addr-spec.
//
// Deliberately stricter than a permissive regex: leading, trailing, and
// consecutive dots are rejected in both halves, as are spaces and display-name
// forms ("Name <user@host>"). Single-label domains are accepted so dev and
// test environments (user@localhost) keep working.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]

	if !validDotAtom(local, localChar) {
		return false
	}
	if !validDotAtom(domain, domainChar) {
		return false
	}
	// Hyphens may not open or close a domain label ("a@-b.com", "a@b-.com").
	for _, label := range strings.Split(domain, ".") {
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
	}
	return true
}

// validDotAtom checks a dot-separated sequence of atoms where every atom is
// non-empty and every rune passes the allowed set.
func validDotAtom(s string, allowed func(byte) bool) bool {
	if s == "" || s[0] == '.' || s[len(s)-1] == '.' {
		return false
	}
	prevDot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if prevDot {
				return false
			}
			prevDot = true
			continue
		}
		prevDot = false
		if !allowed(c) {
			return false
		}
	}
	return true
}

func localChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("!#$%&'*+-/=?^_`{|}~", c) >= 0
}

func domainChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return c == '-'
}
