package cmd

import (
	"github.com/spf13/cobra"

	"fastcat.org/go/relkit/instance"
	"fastcat.org/go/relkit/release"
)

func init() {
	instance.AddCommands(
		&cobra.Command{
			Use:   "build [package]",
			Short: "clean and build gems into the shared output directory",
			Args:  cobra.MaximumNArgs(1),
			RunE:  runPerPackage((*release.Runner).Build),
		},
		&cobra.Command{
			Use:   "install [package]",
			Short: "build and install gems locally, accepting pre-releases",
			Args:  cobra.MaximumNArgs(1),
			RunE:  runPerPackage((*release.Runner).Install),
		},
		&cobra.Command{
			Use:   "push [package]",
			Short: "build and publish gems (and npm packages where present)",
			Args:  cobra.MaximumNArgs(1),
			RunE:  runPerPackage((*release.Runner).Push),
		},
		&cobra.Command{
			Use:   "update-versions [package]",
			Short: "rewrite version constants and npm metadata",
			Args:  cobra.MaximumNArgs(1),
			RunE:  runPerPackage((*release.Runner).UpdateVersions),
		},
	)
}
