// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"context"
	"net/http"
	"strings"

	perrs "driftlog/internal/platform/errors"
)

// IdentityHeader carries the acting user id on every authenticated request
const IdentityHeader = "X-User-ID"

// VerifyFunc checks a claimed user id and returns the canonical id
// implementations typically look the user up in storage
type VerifyFunc func(ctx context.Context, userID string) (string, error)

// Port implements middleware.AuthPort by reading the identity header and delegating to a VerifyFunc
type Port struct {
	verify VerifyFunc
}

// NewPortFunc builds a Port from a simple verifier function
func NewPortFunc(fn VerifyFunc) *Port {
	return &Port{verify: fn}
}

// Parse extracts the acting user id from the identity header
// returns unauthorized when the header is missing, blank, or the verifier rejects the id
func (p *Port) Parse(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get(IdentityHeader))
	if raw == "" {
		return "", perrs.Unauthorizedf("missing user identity")
	}

	if p.verify == nil {
		return "", perrs.Unauthorizedf("unknown user")
	}

	uid, err := p.verify(r.Context(), raw)
	if err != nil {
		return "", perrs.Unauthorizedf("unknown user")
	}
	return uid, nil
}
