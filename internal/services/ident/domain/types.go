// Package domain defines the core types and interfaces for the ident service
package domain

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// User is a registered principal identified by a uuid string
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeName trims surrounding whitespace and applies NFC so names that
// differ only in unicode composition compare equal
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
