package tickets

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/infrastructure/backend"
	"ticketdesk/internal/infrastructure/config"
	sharedConfig "ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

func localLoader(t *testing.T) BackendLoader {
	t.Helper()
	cfg := &config.Config{
		Backend:    sharedConfig.BackendConfig{Mode: sharedConfig.BackendModeLocal},
		LocalStore: sharedConfig.LocalStoreConfig{IDStrategy: "monotonic"},
	}
	b, err := backend.New(cfg, logger.NewNop())
	require.NoError(t, err)
	return func() (*backend.Backend, error) { return b, nil }
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTicketsList_FilterAndSort(t *testing.T) {
	out, err := run(t, NewCommand(localLoader(t)), "list", "--status", "open", "--sort", "id")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))

	var ids []string
	for _, line := range lines[1:5] {
		ids = append(ids, strings.Fields(line)[0])
	}
	assert.Equal(t, []string{"TKT-001", "TKT-004", "TKT-006", "TKT-009"}, ids)
	assert.Contains(t, out, "Showing 4 of 10 tickets")
}

func TestTicketsList_Descending(t *testing.T) {
	out, err := run(t, NewCommand(localLoader(t)), "list", "--sort", "id", "--desc", "--json")
	require.NoError(t, err)

	var rows []struct{ ID string }
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 10)
	assert.Equal(t, "TKT-010", rows[0].ID)
	assert.Equal(t, "TKT-001", rows[9].ID)
}

func TestUsers_ListAndGet(t *testing.T) {
	load := localLoader(t)

	out, err := run(t, NewUsersCommand(load), "list", "--json")
	require.NoError(t, err)
	var users []userView
	require.NoError(t, json.Unmarshal([]byte(out), &users))
	assert.Len(t, users, 4)

	out, err = run(t, NewUsersCommand(load), "get", "user-002")
	require.NoError(t, err)
	assert.Contains(t, out, "Sarah Chen")

	_, err = run(t, NewUsersCommand(load), "get", "user-999")
	assert.Error(t, err)
}
