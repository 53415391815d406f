package encoder

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	schemePattern     = regexp.MustCompile(`(?i)^https?://`)
	bareDomainPattern = regexp.MustCompile(`^(www\.|[a-zA-Z0-9-]+\.[a-zA-Z]{2,})`)
)

// NormalizeURL prefixes https:// to inputs that look like a bare domain
// ("www.example.com", "example.com/path"). Inputs that already carry an
// http or https scheme, or that do not look like a domain, are returned
// unchanged.
func NormalizeURL(raw string) string {
	if raw == "" {
		return ""
	}
	if schemePattern.MatchString(raw) {
		return raw
	}
	if bareDomainPattern.MatchString(raw) {
		return "https://" + raw
	}
	return raw
}

// StripWhitespace removes every Unicode whitespace character from s.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Digits returns only the ASCII digits of s.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

const upperHex = "0123456789ABCDEF"

// EscapeComponent percent-encodes s the way URI components are encoded in
// browsers: letters, digits and -_.!~*'() are kept, every other byte of
// the UTF-8 form becomes %XX. Spaces become %20, not '+'.
func EscapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}

	return b.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
