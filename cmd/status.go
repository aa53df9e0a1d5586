package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"fastcat.org/go/relkit/instance"
	"fastcat.org/go/relkit/release"
	"fastcat.org/go/relkit/suite"
)

func init() {
	instance.AddCommands(&cobra.Command{
		Use:   "status",
		Short: "show the suite's packages and their recorded versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRunner()
			if err != nil {
				return err
			}
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"package", "display name", "changelog", "npm version"})
			for _, p := range r.Suite.All() {
				npmVersion := "-"
				if v, ok := release.RecordedNPMVersion(p); ok {
					npmVersion = v
				}
				changelog := p.Changelog
				if changelog == "" {
					changelog = "-"
				}
				t.AppendRow(table.Row{p.Name, suite.DisplayName(p.Name), changelog, npmVersion})
			}
			t.AppendFooter(table.Row{"releasing", r.Version.String(), "npm", r.Version.NPM()})
			t.Render()
			return nil
		},
	})
}
