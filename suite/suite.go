// Package suite describes the set of packages a release covers: an ordered
// list of gems (later ones may depend on earlier ones), optionally topped by
// an umbrella gem built from the repository root.
package suite

import (
	"path/filepath"
)

type Package struct {
	// Name is the gem name, e.g. "activesupport".
	Name string `yaml:"name" validate:"required"`
	// Dir is the package directory relative to the suite root. Defaults to
	// Name; the umbrella package uses ".".
	Dir string `yaml:"dir"`
	// ConstantsGlob locates the file holding the MAJOR/MINOR/TINY/PRE version
	// constants. It must match exactly one file.
	ConstantsGlob string `yaml:"constants_glob"`
	// Gemspec is the build spec path, relative to Dir.
	Gemspec string `yaml:"gemspec"`
	// Changelog path relative to the suite root, empty for none (umbrella).
	Changelog string `yaml:"changelog"`
	// PackageJSON is the npm metadata path relative to the suite root. A
	// package is published to npm iff this file exists on disk.
	PackageJSON string `yaml:"package_json"`

	umbrella bool
}

// Umbrella reports whether this is the suite's top-level aggregate package.
func (p Package) Umbrella() bool { return p.umbrella }

type Suite struct {
	// Product is the suite's human name, used in changelog headers and in the
	// boundary pattern that separates one release's changes from the next.
	Product string `yaml:"product" validate:"required"`
	// VersionFile holds the single dotted version string for the release.
	VersionFile string `yaml:"version_file" validate:"required"`
	// OutputDir is the shared directory built gems are collected into.
	OutputDir string `yaml:"output_dir"`
	// GuidesChangelog is the changelog of the docs pseudo-package. It gets a
	// release header like every real package, but is never built or pushed.
	GuidesChangelog string `yaml:"guides_changelog"`
	// AnnouncementTemplate overrides the built-in announcement draft template.
	AnnouncementTemplate string `yaml:"announcement_template"`
	// Packages in dependency order.
	Packages []Package `yaml:"packages" validate:"min=1,dive"`
	// UmbrellaPkg is the aggregate gem depending on all the others. Optional.
	UmbrellaPkg *Package `yaml:"umbrella" validate:"omitempty"`
}

// All returns the packages in release order, umbrella last.
func (s *Suite) All() []Package {
	if s.UmbrellaPkg == nil {
		return s.Packages
	}
	return append(append([]Package(nil), s.Packages...), *s.UmbrellaPkg)
}

func (s *Suite) applyDefaults() {
	if s.OutputDir == "" {
		s.OutputDir = "pkg"
	}
	if s.GuidesChangelog == "" {
		s.GuidesChangelog = filepath.Join("guides", "CHANGELOG.md")
	}
	for i := range s.Packages {
		s.Packages[i].applyDefaults()
	}
	if s.UmbrellaPkg != nil {
		s.UmbrellaPkg.umbrella = true
		if s.UmbrellaPkg.Dir == "" {
			s.UmbrellaPkg.Dir = "."
		}
		s.UmbrellaPkg.applyDefaults()
	}
}

func (p *Package) applyDefaults() {
	if p.Dir == "" {
		p.Dir = p.Name
	}
	if p.ConstantsGlob == "" {
		p.ConstantsGlob = filepath.Join(p.Dir, "lib", "*", "gem_version.rb")
	}
	if p.Gemspec == "" {
		p.Gemspec = p.Name + ".gemspec"
	}
	if p.Changelog == "" && !p.umbrella {
		p.Changelog = filepath.Join(p.Dir, "CHANGELOG.md")
	}
	if p.PackageJSON == "" {
		p.PackageJSON = filepath.Join(p.Dir, "package.json")
	}
}
