package tickets

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/shared/logger"
)

// NewUsersCommand returns "users" with "list" and "get".
func NewUsersCommand(load BackendLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect the user directory",
	}

	var asJSON bool

	list := &cobra.Command{
		Use:   "list",
		Short: "Print every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := load()
			if err != nil {
				return err
			}
			users, err := usecases.NewListUsersUseCase(b.Users, logger.NewNop()).Execute(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				views := make([]userView, 0, len(users))
				for _, u := range users {
					views = append(views, toUserView(u))
				}
				return writeJSON(cmd.OutOrStdout(), views)
			}
			return writeUsers(cmd.OutOrStdout(), users)
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Print one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := load()
			if err != nil {
				return err
			}
			u, err := b.Users.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			d := dto.ToUserDTO(u)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), toUserView(d))
			}
			return writeUsers(cmd.OutOrStdout(), []*dto.UserDTO{d})
		},
	}

	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	cmd.AddCommand(list, get)
	return cmd
}

func writeUsers(w io.Writer, users []*dto.UserDTO) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL")
	for _, u := range users {
		email := u.Email
		if email == "" {
			email = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Name, email)
	}
	return tw.Flush()
}
