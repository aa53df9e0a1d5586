package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fastcat.org/go/relkit/instance"
)

func Root() *cobra.Command {
	var longDesc strings.Builder
	fmt.Fprintf(&longDesc, "%s version %s\n\n", instance.AppName(), instance.Version())
	fmt.Fprint(&longDesc,
		"Releases a multi-gem suite from its checkout root: bumps version\n",
		"constants, maintains changelogs, builds and publishes gems (and npm\n",
		"packages where present), guarded by repository-state checks.\n",
	)

	root := &cobra.Command{
		Use:           instance.AppName(),
		Long:          longDesc.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       instance.Version(),
	}
	root.AddCommand(instance.Commands()...)
	return root
}
