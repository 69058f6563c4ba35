// Package identity canonicalizes the free-text signals (company names, email
// domains) that the linkage stage compares. Both functions are pure and total;
// the empty string is the "no usable key" result.
package identity

import (
	"strings"
	"unicode"
)

// NormalizeName reduces a company name to its comparable key: trimmed,
// lowercased, with spaces, dots and hyphens removed. Returns "" when the
// input carries no usable characters.
func NormalizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range strings.ToLower(trimmed) {
		if unicode.IsSpace(r) || r == '.' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CompanyKeyFromEmail derives a company key from an email address: the domain
// segment before the first dot, normalized. "admin@jitta.com" yields "jitta".
// Addresses without an "@" or without a domain yield "".
func CompanyKeyFromEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return ""
	}
	domain := parts[1]
	if domain == "" {
		return ""
	}
	return NormalizeName(strings.SplitN(domain, ".", 2)[0])
}
