package cmd

import (
	"github.com/spf13/cobra"

	"fastcat.org/go/relkit/config"
	"fastcat.org/go/relkit/instance"
)

func init() {
	instance.AddCommands(&cobra.Command{
		Use:   "release",
		Short: "run the whole release: guards, changelogs, builds, tags, publishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRunner()
			if err != nil {
				return err
			}
			return r.ReleaseAll(cmd.Context(), config.SkipTag())
		},
	})
}
