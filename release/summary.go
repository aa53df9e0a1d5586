package release

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"fastcat.org/go/relkit/suite"
)

var previousChangesRE = regexp.MustCompile(`^Please check.*for previous changes\.$`)

// Summary prints each package's changes for the release being cut: the lines
// sitting between the freshly inserted header and the previous release's
// boundary. baseRelease narrows the boundary to one specific prior release;
// release overrides the printed release label.
func (r *Runner) Summary(w io.Writer, baseRelease, release string) error {
	if release == "" {
		release = r.Version.String()
	}
	boundary := `\d+\.\d+\.\d+`
	if baseRelease != "" {
		boundary = regexp.QuoteMeta(baseRelease)
	}
	headerRE, err := regexp.Compile(`^## ` + regexp.QuoteMeta(r.Suite.Product) + ` ` + boundary)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, release)
	for _, p := range r.Suite.Packages {
		fmt.Fprintf(w, "## %s\n", suite.DisplayName(p.Name))
		lines, err := readLines(p.Changelog)
		if err != nil {
			return err
		}
		for _, l := range collectChanges(lines, headerRE) {
			fmt.Fprintln(w, l)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// collectChanges drops the just-inserted header line and gathers everything
// up to, but not including, the previous release's boundary.
func collectChanges(lines []string, boundary *regexp.Regexp) []string {
	if len(lines) == 0 {
		return nil
	}
	lines = lines[1:]
	for i, l := range lines {
		if boundary.MatchString(l) || previousChangesRE.MatchString(l) {
			return lines[:i]
		}
	}
	return lines
}

func readLines(name string) ([]string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(b), "\n")
	// a trailing newline is not an extra empty line
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}
