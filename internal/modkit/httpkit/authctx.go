package httpkit

import (
	"net/http"

	perrs "driftlog/internal/platform/errors"
	pnet "driftlog/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing user identity")
	}
	return uid, nil
}

// MustUser returns the authenticated user id or panics
// only use on routes protected by the auth middleware
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}
