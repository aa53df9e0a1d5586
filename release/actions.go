package release

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"

	"fastcat.org/go/relkit/internal"
	"fastcat.org/go/relkit/shx"
	"fastcat.org/go/relkit/suite"
	"fastcat.org/go/relkit/textedit"
)

// artifact is the built gem's path in the shared output directory.
func (r *Runner) artifact(p suite.Package) string {
	return filepath.Join(r.Suite.OutputDir, fmt.Sprintf("%s-%s.gem", p.Name, r.Version))
}

// Clean removes the package's previously built artifact. A missing artifact
// is fine; Clean is idempotent.
func (r *Runner) Clean(p suite.Package) error {
	if err := os.Remove(r.artifact(p)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func constantRE(name string) *regexp.Regexp {
	return regexp.MustCompile(`^(\s*` + name + `\s*=\s*).*$`)
}

// UpdateVersions rewrites the package's MAJOR/MINOR/TINY/PRE version
// constants in place, then brings the npm metadata in line when the package
// has any.
func (r *Runner) UpdateVersions(ctx context.Context, p suite.Package) error {
	matches, err := filepath.Glob(p.ConstantsGlob)
	if err != nil {
		return err
	}
	if len(matches) != 1 {
		return fmt.Errorf(
			"%s: version constants glob %q matched %d files, want exactly 1",
			p.Name, p.ConstantsGlob, len(matches),
		)
	}
	file := matches[0]
	pre := "nil"
	if r.Version.Pre != "" {
		pre = strconv.Quote(r.Version.Pre)
	}
	_, err = textedit.EditFile(file, textedit.Chain(
		textedit.ReplacePattern(constantRE("MAJOR"), "${1}"+strconv.Itoa(r.Version.Major)).MustMatch(),
		textedit.ReplacePattern(constantRE("MINOR"), "${1}"+strconv.Itoa(r.Version.Minor)).MustMatch(),
		textedit.ReplacePattern(constantRE("TINY"), "${1}"+strconv.Itoa(r.Version.Tiny)).MustMatch(),
		textedit.ReplacePattern(constantRE("PRE"), "${1}"+pre).MustMatch(),
	))
	if err != nil {
		return fmt.Errorf("update version constants in %s: %w", file, err)
	}
	r.Log.Info("updated version constants", "package", p.Name, "file", file)
	return r.setNPMVersion(ctx, p)
}

// npmMeta is the slice of package.json this tool cares about.
type npmMeta struct {
	Version string `json:"version"`
}

// RecordedNPMVersion returns the version currently recorded in the package's
// npm metadata, and whether the package has npm metadata at all.
func RecordedNPMVersion(p suite.Package) (string, bool) {
	meta, err := internal.ReadJSONFile[npmMeta](p.PackageJSON)
	if err != nil {
		return "", false
	}
	return meta.Version, true
}

func (r *Runner) setNPMVersion(ctx context.Context, p suite.Package) error {
	if _, err := os.Stat(p.PackageJSON); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	meta, err := internal.ReadJSONFile[npmMeta](p.PackageJSON)
	if err != nil {
		return fmt.Errorf("%s: %w", p.PackageJSON, err)
	}
	npmVersion := r.Version.NPM()
	if meta.Version == npmVersion {
		return nil
	}
	if _, err := exec.LookPath("npm"); err != nil {
		return fmt.Errorf(
			"%s records version %s, need npm to set %s: %w",
			p.PackageJSON, meta.Version, npmVersion, err,
		)
	}
	r.Log.Info("setting npm version", "package", p.Name, "version", npmVersion)
	if _, err := shx.Run(ctx,
		[]string{"npm", "version", npmVersion, "--no-git-tag-version"},
		shx.WithCwd(p.Dir),
		shx.PassOutput(),
		shx.WithCombinedError(),
	); err != nil {
		return fmt.Errorf("npm version %s in %s: %w", npmVersion, p.Dir, err)
	}
	return nil
}

// BuildGem runs the gem build in the package directory and relocates the
// artifact into the shared output directory.
func (r *Runner) BuildGem(ctx context.Context, p suite.Package) error {
	r.Log.Info("building gem", "package", p.Name, "version", r.Version.String())
	if _, err := shx.Run(ctx,
		[]string{"gem", "build", p.Gemspec},
		shx.WithCwd(p.Dir),
		shx.PassOutput(),
		shx.WithCombinedError(),
	); err != nil {
		return fmt.Errorf("gem build %s: %w", p.Name, err)
	}
	if err := os.MkdirAll(r.Suite.OutputDir, 0o755); err != nil {
		return err
	}
	built := filepath.Join(p.Dir, fmt.Sprintf("%s-%s.gem", p.Name, r.Version))
	if err := os.Rename(built, r.artifact(p)); err != nil {
		return fmt.Errorf("collect built gem for %s: %w", p.Name, err)
	}
	return nil
}

// Build is the composite per-package build: clean, bump versions, build gem.
func (r *Runner) Build(ctx context.Context, p suite.Package) error {
	if err := r.Clean(p); err != nil {
		return err
	}
	if err := r.UpdateVersions(ctx, p); err != nil {
		return err
	}
	return r.BuildGem(ctx, p)
}

// Install builds the package and installs the artifact locally, accepting
// pre-release versions.
func (r *Runner) Install(ctx context.Context, p suite.Package) error {
	if err := r.Build(ctx, p); err != nil {
		return err
	}
	r.Log.Info("installing gem", "package", p.Name)
	if _, err := shx.Run(ctx,
		[]string{"gem", "install", r.artifact(p), "--pre"},
		shx.PassOutput(),
		shx.WithCombinedError(),
	); err != nil {
		return fmt.Errorf("gem install %s: %w", p.Name, err)
	}
	return nil
}

// Push builds the package and publishes it: always to the gem registry, and
// to npm as well when the package carries npm metadata.
func (r *Runner) Push(ctx context.Context, p suite.Package) error {
	if err := r.Build(ctx, p); err != nil {
		return err
	}
	r.Log.Info("pushing gem", "package", p.Name)
	args := []string{"gem", "push", r.artifact(p)}
	if code, ok := bestEffortOTP(ctx); ok {
		args = append(args, "--otp", code)
	}
	if _, err := shx.Run(ctx, args,
		shx.PassOutput(),
		shx.WithCombinedError(),
	); err != nil {
		return fmt.Errorf("gem push %s: %w", p.Name, err)
	}
	if _, err := os.Stat(p.PackageJSON); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	r.Log.Info("publishing to npm", "package", p.Name, "tag", r.Version.DistTag())
	args = []string{"npm", "publish", "--tag", r.Version.DistTag()}
	if code, ok := bestEffortOTP(ctx); ok {
		args = append(args, "--otp", code)
	}
	if _, err := shx.Run(ctx, args,
		shx.WithCwd(p.Dir),
		shx.PassOutput(),
		shx.WithCombinedError(),
	); err != nil {
		return fmt.Errorf("npm publish %s: %w", p.Name, err)
	}
	return nil
}
