package cmd

import (
	"github.com/spf13/cobra"

	"fastcat.org/go/relkit/instance"
)

func init() {
	instance.AddCommands(&cobra.Command{
		Use:   "summary [base-release] [release]",
		Short: "print each package's changes for the release being cut",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner()
			if err != nil {
				return err
			}
			var base, release string
			if len(args) > 0 {
				base = args[0]
			}
			if len(args) > 1 {
				release = args[1]
			}
			return r.Summary(cmd.OutOrStdout(), base, release)
		},
	})
}
