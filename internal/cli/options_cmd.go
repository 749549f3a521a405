package cli

import (
	"fmt"

	"github.com/alexanderramin/homedesigns/internal/cli/formatter"
	"github.com/alexanderramin/homedesigns/internal/domain"
	"github.com/spf13/cobra"
)

func newOptionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "options [personal|professional]",
		Short:     "List the sub-categories offered for each user type",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.UserPersonal), string(domain.UserProfessional)},
		RunE: func(cmd *cobra.Command, args []string) error {
			types := domain.UserTypes
			if len(args) == 1 {
				u, err := domain.ParseUserType(args[0])
				if err != nil {
					return err
				}
				types = []domain.UserType{u}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOptions(types...))
			return nil
		},
	}
}
