// Package version models suite release versions of the form
// MAJOR.MINOR.TINY[.PRE], where PRE is either a pre-release marker such as
// "rc1" or a plain numeric fourth component used for security releases.
package version

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type Version struct {
	Major, Minor, Tiny int
	// Pre is the optional fourth component, empty when absent.
	Pre string
}

var versionRE = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:\.(.+))?$`)

// markers are the pre-release labels we recognize. Anything else in the
// fourth component is treated as a numeric increment.
var markers = []string{"rc", "beta", "alpha"}

func Parse(s string) (Version, error) {
	m := versionRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Version{}, fmt.Errorf("malformed version %q, want MAJOR.MINOR.TINY[.PRE]", s)
	}
	var v Version
	var err error
	if v.Major, err = strconv.Atoi(m[1]); err != nil {
		return Version{}, err
	}
	if v.Minor, err = strconv.Atoi(m[2]); err != nil {
		return Version{}, err
	}
	if v.Tiny, err = strconv.Atoi(m[3]); err != nil {
		return Version{}, err
	}
	v.Pre = m[4]
	return v, nil
}

// ParseFile reads a version file containing a single dotted version string.
func ParseFile(name string) (Version, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return Version{}, err
	}
	v, err := Parse(string(b))
	if err != nil {
		return Version{}, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Tiny)
	if v.Pre != "" {
		s += "." + v.Pre
	}
	return s
}

// Tag is the git tag for this version.
func (v Version) Tag() string {
	return "v" + v.String()
}

// PreRelease reports whether the fourth component is a pre-release marker
// (rc/beta/alpha, possibly with trailing digits) rather than a numeric
// increment.
func (v Version) PreRelease() bool {
	for _, m := range markers {
		if strings.Contains(v.Pre, m) {
			return true
		}
	}
	return false
}

// NPM folds the version into npm's three-component scheme. npm cannot order
// a dotted fourth component, so tiny releases get 100 slots each:
//
//	M.m.t       -> M.m.(t*100)
//	M.m.t.N     -> M.m.(t*100+N)
//	M.m.t.rcN   -> M.m.(t*100)-rcN
//
// The mapping is monotonic over the source ordering, which is what lets
// package tooling trust the converted numbers.
func (v Version) NPM() string {
	switch {
	case v.Pre == "":
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Tiny*100)
	case v.PreRelease():
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Tiny*100, v.Pre)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Tiny*100+atoiPrefix(v.Pre))
	}
}

// DistTag is the npm dist-tag a publish of this version should carry: any
// lowercase letter in the version marks it as a pre-release.
func (v Version) DistTag() string {
	if strings.ContainsFunc(v.String(), unicode.IsLower) {
		return "pre"
	}
	return "latest"
}

// atoiPrefix parses the leading run of digits, best effort: a non-numeric
// prefix yields 0.
func atoiPrefix(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}
