package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Loose host-like pattern: optional scheme, then at least one dotted label
// pair with no internal whitespace. Deliberately permissive - it is meant to
// accept anything resembling "company.com", not to be a URL grammar.
var hostLikeRegex = regexp.MustCompile(`^(https?://)?[^\s]+\.[^\s]+$`)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// MinLenString validates a minimum length in runes.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
		},
	}
}

// MaxLenString validates a maximum length in runes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
		},
	}
}

// ValidEmail validates email address syntax. It relies on net/mail parsing
// plus checks suited to typical web forms: a bare address with no display
// name, a single @, a non-empty local part, and a dotted domain without
// empty labels.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}
			// ParseAddress accepts "Name <a@b.com>"; forms want the bare
			// address only.
			if addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") {
				return false
			}
			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// InListString validates that a value is one of the allowed values.
func InListString(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}

// HostLike validates that a value looks like a web address: an optional
// http(s) scheme followed by at least one "label.label" pair without
// internal whitespace. Trailing punctuation and deeper paths are accepted.
func HostLike(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return hostLikeRegex.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: "must be a valid website address"},
	}
}

// WithMessage replaces the rule's message, keeping its field and check.
// Used where a schema wants user-facing copy instead of the generic text.
func WithMessage(rule Rule, message string) Rule {
	rule.Error.Message = message
	return rule
}
