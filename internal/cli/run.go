package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run COMMAND [ARGS...]",
		Short: "Execute one homebiz command",
		Long: "Execute one command line, for example:\n" +
			"  homebiz run addcli n/Alice Tan p/91234567 e/alice@example.com\n" +
			"Arguments are joined with single spaces. Quote the line to keep its spacing.",
		Example: `  homebiz run "listcli"
  homebiz run "profit m/10 y/2026"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.manager.Execute(strings.Join(args, " "))
			if err != nil {
				return commandError(err)
			}
			render(cmd.OutOrStdout(), res, s.manager.Model())
			return nil
		},
	}
}
