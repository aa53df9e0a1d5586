// Package config holds the handful of settings the release flow honors from
// the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"fastcat.org/go/relkit/internal"
)

const (
	keyManifest = "manifest"
	keySkipTag  = "skip_tag"
	keyVersions = "versions"
)

var vi *viper.Viper

func Initialize() {
	internal.CheckLockedDown()
	if vi != nil {
		panic(fmt.Errorf("config already initialized"))
	}
	v := viper.New()
	v.SetDefault(keyManifest, "release.yml")
	// SKIP_TAG and VERSIONS are the documented release overrides, kept
	// un-prefixed; the manifest path override is namespaced to the app.
	internal.Must0(v.BindEnv(keySkipTag, "SKIP_TAG"))
	internal.Must0(v.BindEnv(keyVersions, "VERSIONS"))
	internal.Must0(v.BindEnv(keyManifest, strings.ToUpper(internal.AppName())+"_MANIFEST"))
	vi = v
}

// Manifest is the path of the suite manifest to release from.
func Manifest() string {
	return vi.GetString(keyManifest)
}

// SkipTag reports whether the tag-uniqueness guard should be skipped.
func SkipTag() bool {
	return vi.GetString(keySkipTag) != ""
}

// Versions is the explicit announcement version list, nil when unset.
func Versions() []string {
	raw := vi.GetString(keyVersions)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
