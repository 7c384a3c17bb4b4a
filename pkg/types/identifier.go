package types

import "unicode"

// MaxToolNameLength is the longest tool name accepted by the OpenAI
// function-calling API.
const MaxToolNameLength = 64

// IsIdentifier returns true if the string is a valid identifier
// (starts with a letter or underscore, contains only letters, digits and underscores)
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// IsToolName returns true if the string is a valid function-calling
// tool name: up to 64 characters from letters, digits, underscores
// and hyphens.
func IsToolName(s string) bool {
	if s == "" || len(s) > MaxToolNameLength {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return true
}
