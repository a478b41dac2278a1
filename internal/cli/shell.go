package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	prompt = "homebiz> "
	// maxLineSize bounds a single input line.
	maxLineSize = 1 << 20
)

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: "Read commands from standard input, one per line, until \"exit\" or end\n" +
			"of input. Type \"help\" to list every command.",
		Args: cobra.NoArgs,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	fmt.Fprintln(out, "Welcome to homebiz. Type \"help\" for the list of commands.")
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		res, err := s.manager.Execute(line)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}
		render(out, res, s.manager.Model())
		if res.Exit {
			return nil
		}
	}
}
