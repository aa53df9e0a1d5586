package release

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Headers inserts a dated release header at the top of every changelog: each
// package's, plus the docs pseudo-package's. A changelog whose latest entry
// is still the previous release gets a "No changes" placeholder under the new
// header. Prior content is preserved verbatim.
func (r *Runner) Headers(now time.Time) error {
	for _, cl := range r.changelogs() {
		if err := insertHeader(cl, r.Suite.Product, r.Version.String(), now); err != nil {
			return err
		}
		r.Log.Info("inserted changelog header", "file", cl)
	}
	return nil
}

func (r *Runner) changelogs() []string {
	var out []string
	for _, p := range r.Suite.Packages {
		if p.Changelog != "" {
			out = append(out, p.Changelog)
		}
	}
	return append(out, r.Suite.GuidesChangelog)
}

func insertHeader(file, product, version string, now time.Time) error {
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	contents, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	header := fmt.Sprintf("## %s %s (%s)\n\n", product, version, now.Format("January 02, 2006"))
	if strings.HasPrefix(string(contents), "## "+product) {
		header += "*   No changes.\n\n\n"
	}
	return os.WriteFile(file, append([]byte(header), contents...), info.Mode().Perm())
}
