// Package announce drafts the release announcement for patch releases.
package announce

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/mod/semver"

	"fastcat.org/go/relkit/shx"
	"fastcat.org/go/relkit/version"
)

// Released wraps a released version with the announcement-relevant
// classifications.
type Released struct {
	version.Version
}

func NewReleased(s string) (Released, error) {
	v, err := version.Parse(s)
	if err != nil {
		return Released{}, err
	}
	return Released{v}, nil
}

// Previous is the version this release patches, with the tiny component
// decremented.
func (r Released) Previous() string {
	return fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Tiny-1)
}

var numericRE = regexp.MustCompile(`^\d+$`)

// MajorOrSecurity reports whether this is a major release (tiny is zero) or
// a security release (numeric fourth component). Neither gets the standard
// patch announcement.
func (r Released) MajorOrSecurity() bool {
	return r.Tiny == 0 || numericRE.MatchString(r.Pre)
}

// RC reports whether this is a release candidate.
func (r Released) RC() bool {
	return strings.Contains(r.String(), "rc")
}

// Data is the binding rendered into the announcement template.
type Data struct {
	Product     string
	Versions    []Released
	VersionList string
	Plural      bool
	// Previous is the patched version of the lowest release in the list.
	Previous string
	// FutureDate is the expected final-release date, only set when an RC is
	// among the versions.
	FutureDate string
	// Reviewer is the release manager's handle, best effort; may be empty.
	Reviewer string
}

// Draft renders the announcement for the given versions to w. It refuses
// major and security releases: those get hand-written announcements.
func Draft(
	ctx context.Context,
	product string,
	versions []string,
	templateFile string,
	now time.Time,
	w io.Writer,
) error {
	if len(versions) == 0 {
		return fmt.Errorf("no versions to announce")
	}
	rels := make([]Released, 0, len(versions))
	for _, s := range versions {
		rel, err := NewReleased(s)
		if err != nil {
			return err
		}
		if rel.MajorOrSecurity() {
			return fmt.Errorf("announce is only valid for patch releases, got %s", rel)
		}
		rels = append(rels, rel)
	}
	// the npm mapping is monotonic over the release ordering, and its output
	// is canonical semver, so it doubles as a sort key
	slices.SortFunc(rels, func(a, b Released) int {
		return semver.Compare("v"+a.NPM(), "v"+b.NPM())
	})

	data := Data{
		Product:     product,
		Versions:    rels,
		VersionList: versionList(rels),
		Plural:      len(rels) > 1,
		Previous:    rels[0].Previous(),
	}
	if slices.ContainsFunc(rels, Released.RC) {
		data.FutureDate = finalReleaseDate(now).Format("Monday, January 2, 2006")
		data.Reviewer = reviewer(ctx)
	}

	tmpl, err := loadTemplate(templateFile)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

func versionList(rels []Released) string {
	parts := make([]string, len(rels))
	for i, r := range rels {
		parts[i] = r.String()
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}

// finalReleaseDate is five days out, advanced past the weekend: final
// releases don't happen on a Saturday or Sunday.
func finalReleaseDate(now time.Time) time.Time {
	d := now.AddDate(0, 0, 5)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// reviewer looks up the configured identity to name as a placeholder
// reviewer. Best effort: an empty result just leaves the placeholder out.
func reviewer(ctx context.Context) string {
	res, err := shx.Run(ctx,
		[]string{"git", "config", "github.user"},
		shx.CaptureOutput(),
	)
	if err != nil || res.Err() != nil {
		return ""
	}
	return res.Text()
}
