// Package session carries the acting user through a request.
//
// There is no authentication. The acting user comes from configuration and
// may be overridden per request by a header; the value is passed explicitly
// to whatever needs it rather than read from global state.
package session

import (
	"context"
	"strings"
)

type Session struct {
	UserID string
}

// HasUser reports whether an acting user is known.
func (s Session) HasUser() bool {
	return s.UserID != ""
}

// Resolver builds a Session from configuration and an optional override.
type Resolver struct {
	defaultUserID string
	header        string
}

func NewResolver(defaultUserID, header string) *Resolver {
	return &Resolver{
		defaultUserID: strings.TrimSpace(defaultUserID),
		header:        header,
	}
}

// Header is the request header that may override the configured user.
// Empty means overrides are disabled.
func (r *Resolver) Header() string {
	return r.header
}

// Resolve returns the session for a request whose override header carried value.
func (r *Resolver) Resolve(value string) Session {
	if r.header != "" {
		if v := strings.TrimSpace(value); v != "" {
			return Session{UserID: v}
		}
	}
	return Session{UserID: r.defaultUserID}
}

type contextKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, or an empty one.
func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(contextKey{}).(Session)
	return s
}
