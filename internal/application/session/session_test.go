package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		defUser  string
		header   string
		value    string
		expected string
	}{
		{"configured user", "user-001", "X-User", "", "user-001"},
		{"header overrides", "user-001", "X-User", "user-004", "user-004"},
		{"blank header value ignored", "user-001", "X-User", "   ", "user-001"},
		{"override disabled", "user-001", "", "user-004", "user-001"},
		{"nobody configured", "", "X-User", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.defUser, tt.header)
			s := r.Resolve(tt.value)
			assert.Equal(t, tt.expected, s.UserID)
			assert.Equal(t, tt.expected != "", s.HasUser())
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithSession(context.Background(), Session{UserID: "user-002"})
	assert.Equal(t, "user-002", FromContext(ctx).UserID)
	assert.False(t, FromContext(context.Background()).HasUser())
}
