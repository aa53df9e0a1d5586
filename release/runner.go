// Package release implements the release flow for a gem suite: version
// bumps, gem/npm builds and publishes, changelog maintenance, and the
// repository-state guards around all of it. Everything runs sequentially and
// fail-fast; a release must not partially and silently succeed.
package release

import (
	"os"

	"github.com/charmbracelet/log"

	"fastcat.org/go/relkit/suite"
	"fastcat.org/go/relkit/version"
)

type Runner struct {
	Suite   *suite.Suite
	Version version.Version
	// Log receives progress output. Task output that is itself the product
	// (summaries, announcements) goes to a writer instead, never here.
	Log *log.Logger
}

func New(s *suite.Suite, v version.Version) *Runner {
	return &Runner{
		Suite:   s,
		Version: v,
		Log: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
		}),
	}
}
