package cli

import (
	"github.com/spf13/cobra"
)

func newPolicyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Show the server's active evaluation policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Policy

			if err := client.Get("/api/v1/policy", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
