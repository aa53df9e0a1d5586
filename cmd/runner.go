package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fastcat.org/go/relkit/config"
	"fastcat.org/go/relkit/release"
	"fastcat.org/go/relkit/suite"
	"fastcat.org/go/relkit/version"
)

// newRunner loads the suite manifest and the release version. Every command
// re-reads them: releases are one-shot invocations, not a daemon.
func newRunner() (*release.Runner, error) {
	s, err := suite.Load(config.Manifest())
	if err != nil {
		return nil, err
	}
	v, err := version.ParseFile(s.VersionFile)
	if err != nil {
		return nil, err
	}
	return release.New(s, v), nil
}

func findPackage(s *suite.Suite, name string) (suite.Package, error) {
	for _, p := range s.All() {
		if p.Name == name {
			return p, nil
		}
	}
	return suite.Package{}, fmt.Errorf("no package %q in the suite manifest", name)
}

// runPerPackage adapts a per-package action into a cobra handler taking an
// optional package argument: named package only, or fan out over the whole
// suite in dependency order.
func runPerPackage(
	action func(*release.Runner, context.Context, suite.Package) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		r, err := newRunner()
		if err != nil {
			return err
		}
		pkgs := r.Suite.All()
		if len(args) == 1 {
			p, err := findPackage(r.Suite, args[0])
			if err != nil {
				return err
			}
			pkgs = []suite.Package{p}
		}
		for _, p := range pkgs {
			if err := action(r, cmd.Context(), p); err != nil {
				return err
			}
		}
		return nil
	}
}
