package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"fastcat.org/go/relkit/announce"
	"fastcat.org/go/relkit/config"
	"fastcat.org/go/relkit/instance"
)

func init() {
	instance.AddCommands(&cobra.Command{
		Use:   "announce",
		Short: "draft the release announcement (patch releases only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRunner()
			if err != nil {
				return err
			}
			versions := config.Versions()
			if len(versions) == 0 {
				versions = []string{r.Version.String()}
			}
			return announce.Draft(
				cmd.Context(),
				r.Suite.Product,
				versions,
				r.Suite.AnnouncementTemplate,
				time.Now(),
				cmd.OutOrStdout(),
			)
		},
	})
}
