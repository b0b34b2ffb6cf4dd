// Package phone normalizes guest phone numbers before they are stored.
package phone

import (
	"regexp"
	"strings"
)

var (
	pattern  = regexp.MustCompile(`^[+]?[1-9]\d{0,15}$`)
	stripper = strings.NewReplacer(" ", "", "\t", "", "-", "", "(", "", ")", "")
)

// Normalize removes spaces, dashes and parentheses.
func Normalize(value string) string {
	return stripper.Replace(strings.TrimSpace(value))
}

// Valid reports whether value, once normalized, is an international style number.
func Valid(value string) bool {
	return pattern.MatchString(Normalize(value))
}
