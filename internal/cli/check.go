package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <password>",
		Short: "Evaluate a password's strength",
		Long: `Evaluate a password against the server's rule battery.

Pass "-" to read the password from stdin instead of the command line,
which keeps it out of shell history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := args[0]
			if password == "-" {
				scanner := bufio.NewScanner(os.Stdin)
				if !scanner.Scan() {
					if err := scanner.Err(); err != nil {
						return err
					}
					return fmt.Errorf("no password on stdin")
				}
				password = strings.TrimRight(scanner.Text(), "\r\n")
			}

			var result Verdict
			body := map[string]string{"password": password}
			if err := client.Post("/api/v1/passwords/check", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)

			if !result.Valid {
				os.Exit(1)
			}
			return nil
		},
	}
}
