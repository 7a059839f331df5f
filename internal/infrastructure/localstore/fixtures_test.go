package localstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixtures(t *testing.T) {
	fx, err := DefaultFixtures(start)
	require.NoError(t, err)

	require.Len(t, fx.Users, 4)
	require.Len(t, fx.Tickets, 10)

	first := fx.Tickets[0]
	assert.Equal(t, "TKT-001", first.ID())
	assert.Equal(t, start.Add(-5*24*time.Hour), first.CreatedAt())
	assert.Equal(t, start.Add(-8*time.Hour), first.UpdatedAt())
	assert.Equal(t, []string{"frontend", "bug", "authentication"}, first.Tags())
	assert.False(t, fx.Tickets[5].IsAssigned())
}

func TestParseAgo(t *testing.T) {
	d, err := parseAgo("3d")
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, d)

	d, err = parseAgo("90m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	_, err = parseAgo("xd")
	assert.Error(t, err)
}

func TestParseFixtures_Errors(t *testing.T) {
	_, err := ParseFixtures([]byte("tickets:\n  - id: TKT-001\n    status: pending\n    priority: low\n"), start)
	assert.ErrorContains(t, err, "TKT-001")

	_, err = ParseFixtures([]byte("tickets:\n  - {id: A, status: open, priority: low}\n  - {id: A, status: open, priority: low}\n"), start)
	assert.ErrorContains(t, err, "duplicate")

	_, err = ParseFixtures([]byte("users:\n  - id: u\n    name: ''\n"), start)
	assert.Error(t, err)

	_, err = ParseFixtures([]byte("users:\n  - {id: u, name: U, email: not-an-email}\n"), start)
	assert.ErrorContains(t, err, "email must be a valid email address")
}

func TestLoadFixtures_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - {id: u1, name: Solo}\ntickets: []\n"), 0o600))

	fx, err := LoadFixtures(path, start)
	require.NoError(t, err)
	assert.Len(t, fx.Users, 1)
	assert.Empty(t, fx.Tickets)

	_, err = LoadFixtures(filepath.Join(t.TempDir(), "missing.yaml"), start)
	assert.Error(t, err)
}
