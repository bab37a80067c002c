package utils

import (
	"net/http"
	"strings"
)

// RequestBaseURL reconstructs the scheme://host prefix of the incoming
// request, honouring X-Forwarded-Proto when behind a proxy. Used to build
// absolute URLs for stored media.
func RequestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// NormalizeEmail lowercases and trims an email address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
