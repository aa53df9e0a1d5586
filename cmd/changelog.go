package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"fastcat.org/go/relkit/instance"
)

func init() {
	changelog := &cobra.Command{
		Use: "changelog",
		// just a parent for other commands
	}
	changelog.AddCommand(&cobra.Command{
		Use:   "header",
		Short: "insert a dated release header in every changelog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRunner()
			if err != nil {
				return err
			}
			return r.Headers(time.Now())
		},
	})
	instance.AddCommands(changelog)
}
