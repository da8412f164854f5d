package services

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// normalizeName trims raw and checks it is non-empty and at most max characters.
func normalizeName(raw string, max int) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", invalid(MsgNameRequired)
	}
	if utf8.RuneCountInString(name) > max {
		return "", invalid(fmt.Sprintf("name is too long (max %d)", max))
	}
	return name, nil
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// optionalText trims s; blank or nil becomes nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
