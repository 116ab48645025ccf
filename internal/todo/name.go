package todo

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeName upper-cases the first letter of a list name and keeps the
// rest as typed, so "home" and "Home" resolve to the same list. Surrounding
// whitespace is dropped.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// IsDefault reports whether name refers to the default list. An empty name
// is the default list as well.
func IsDefault(name string) bool {
	n := NormalizeName(name)
	return n == "" || n == DefaultListName
}

// ValidateItemName trims name and rejects it when nothing is left.
func ValidateItemName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", fmt.Errorf("%w: item name is required", ErrValidation)
	}
	return n, nil
}
