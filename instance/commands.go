package instance

import (
	"slices"

	"github.com/spf13/cobra"

	"fastcat.org/go/relkit/internal"
)

var commands []*cobra.Command

// AddCommands registers commands to attach to the root command. Packages call
// this from init so that importing them is all that is needed to expose their
// commands.
func AddCommands(cmds ...*cobra.Command) {
	internal.CheckCanCustomize()
	commands = append(commands, cmds...)
}

// Commands returns the registered commands. Only valid after app startup has
// locked down customizations.
func Commands() []*cobra.Command {
	internal.CheckLockedDown()
	return slices.Clone(commands)
}
