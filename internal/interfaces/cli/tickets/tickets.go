// Package tickets holds the terminal commands that read tickets and users
// through the configured backend.
package tickets

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/application/ticket/listview"
	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/infrastructure/backend"
	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/shared/logger"
)

// BackendLoader opens the ticket backend a command reads from.
type BackendLoader func() (*backend.Backend, error)

// DefaultLoader loads the config for env and builds its backend.
func DefaultLoader(env *string) BackendLoader {
	return func() (*backend.Backend, error) {
		cfg, err := config.Load(*env)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return backend.New(cfg, logger.NewNop())
	}
}

type listOptions struct {
	sort   string
	desc   bool
	status string
	json   bool
}

// NewCommand returns "tickets" with its "list" subcommand.
func NewCommand(load BackendLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Inspect tickets",
	}
	cmd.AddCommand(newListCommand(load))
	return cmd
}

func newListCommand(load BackendLoader) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the ticket table",
		Long:  `Print tickets sorted and filtered the same way the list page shows them.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := load()
			if err != nil {
				return err
			}

			dir := ""
			if cmd.Flags().Changed("desc") {
				dir = string(listview.Ascending)
				if opts.desc {
					dir = string(listview.Descending)
				}
			}

			uc := usecases.NewListTicketsUseCase(b.Tickets, logger.NewNop())
			result, err := uc.Execute(cmd.Context(), usecases.ListTicketsQuery{
				Sort:   opts.sort,
				Dir:    dir,
				Status: opts.status,
			})
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), result.Tickets)
			}
			return writeTickets(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&opts.sort, "sort", "", "Sort column (id, title, status, priority, assignee, updatedAt)")
	cmd.Flags().BoolVar(&opts.desc, "desc", false, "Sort descending (unset keeps the default order for the column)")
	cmd.Flags().StringVar(&opts.status, "status", "all", "Only show tickets with this status")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print JSON instead of a table")

	return cmd
}

func writeTickets(w io.Writer, result *usecases.ListTicketsResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPRIORITY\tASSIGNEE\tUPDATED")
	for _, t := range result.Tickets {
		assignee := t.AssigneeName
		if assignee == "" {
			assignee = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.StatusLabel, t.PriorityLabel, assignee,
			t.UpdatedAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nShowing %d of %d tickets\n", len(result.Tickets), result.Total)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// userView keeps the JSON output stable regardless of the DTO field names.
type userView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func toUserView(u *dto.UserDTO) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL}
}
