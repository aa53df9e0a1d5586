package release

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"fastcat.org/go/relkit/shx"
)

// EnsureCleanState aborts the release when the working tree has uncommitted
// changes beyond the expected release bookkeeping files.
func (r *Runner) EnsureCleanState(ctx context.Context) error {
	res, err := shx.Run(ctx,
		[]string{"git", "status", "--porcelain"},
		shx.CaptureOutput(),
		shx.WithCombinedError(),
	)
	if err != nil {
		return fmt.Errorf("git status: %w", err)
	}
	// porcelain status columns are positional; Text()'s trimming would eat
	// the leading column of the first line
	if unexpected := unexpectedPaths(res.String(), r.bookkeepingFile); len(unexpected) > 0 {
		return fmt.Errorf(
			"working tree is dirty beyond release bookkeeping (%s); commit or stash before releasing",
			strings.Join(unexpected, ", "),
		)
	}
	return nil
}

// CheckTagFree aborts when the release tag already exists.
func (r *Runner) CheckTagFree(ctx context.Context) error {
	tag := r.Version.Tag()
	res, err := shx.Run(ctx,
		[]string{"git", "tag", "--list", tag},
		shx.CaptureOutput(),
		shx.WithCombinedError(),
	)
	if err != nil {
		return fmt.Errorf("git tag --list: %w", err)
	}
	if res.Text() != "" {
		return fmt.Errorf(
			"tag %s already exists; has this version already been released? set SKIP_TAG=1 to skip tagging",
			tag,
		)
	}
	return nil
}

// unexpectedPaths parses `git status --porcelain` output and returns the
// paths not accepted by allowed.
func unexpectedPaths(porcelain string, allowed func(string) bool) []string {
	var out []string
	for line := range strings.Lines(porcelain) {
		line = strings.TrimRight(line, "\n")
		if len(line) < 4 {
			continue
		}
		path := line[3:]
		// renames show as "XY old -> new"; the new path is what matters
		if _, newPath, ok := strings.Cut(path, " -> "); ok {
			path = newPath
		}
		path = strings.Trim(path, `"`)
		if !allowed(path) {
			out = append(out, path)
		}
	}
	return out
}

// bookkeepingFile reports whether a dirty path is one the release itself is
// expected to touch. Matching is by file name, not anchored path: the same
// bookkeeping files exist in every package directory.
func (r *Runner) bookkeepingFile(path string) bool {
	switch base := filepath.Base(path); base {
	case filepath.Base(r.Suite.VersionFile),
		"CHANGELOG.md",
		"Gemfile.lock",
		"package.json",
		"package-lock.json":
		return true
	default:
		// gem_version.rb and friends
		return strings.HasSuffix(base, "version.rb")
	}
}
