package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/homebiz/internal/sqlite"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export DIR",
		Short: "Write all data to JSONL files in DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			snap := s.manager.Model().Snapshot()
			if err := sqlite.ExportJSONL(args[0], snap); err != nil {
				return sysError(fmt.Errorf("export: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d clients, %d services, %d expenses, %d appointments, %d revenues to %s\n",
				len(snap.Clients), len(snap.Services), len(snap.Expenses), len(snap.Appointments), len(snap.Revenues), args[0])
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import DIR",
		Short: "Replace all data with the JSONL files in DIR",
		Long: "Replace all data with the JSONL files in DIR, as written by export.\n" +
			"Nothing is changed if any file holds an invalid or duplicate entry.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := sqlite.ImportJSONL(args[0])
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.manager.Replace(snap); err != nil {
				return commandError(fmt.Errorf("import: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d clients, %d services, %d expenses, %d appointments, %d revenues from %s\n",
				len(snap.Clients), len(snap.Services), len(snap.Expenses), len(snap.Appointments), len(snap.Revenues), args[0])
			return nil
		},
	}
}
