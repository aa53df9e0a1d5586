package release

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastcat.org/go/relkit/suite"
)

const gemVersionSource = `module ActiveModel
  # Returns the currently loaded version of Active Model as a +Gem::Version+.
  def self.gem_version
    Gem::Version.new VERSION::STRING
  end

  module VERSION
    MAJOR = 6
    MINOR = 1
    TINY  = 3
    PRE   = "rc2"

    STRING = [MAJOR, MINOR, TINY, PRE].compact.join(".")
  end
end
`

func writeConstants(t testing.TB, dir string) string {
	t.Helper()
	sub := filepath.Join(dir, "lib", "active_model")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	fn := filepath.Join(sub, "gem_version.rb")
	require.NoError(t, os.WriteFile(fn, []byte(gemVersionSource), 0o644))
	return fn
}

func TestUpdateVersions_RewritesConstants(t *testing.T) {
	dir := t.TempDir()
	fn := writeConstants(t, dir)

	s := testSuite()
	s.Packages[0].ConstantsGlob = filepath.Join(dir, "lib", "*", "gem_version.rb")
	s.Packages[0].PackageJSON = filepath.Join(dir, "package.json") // absent
	r := testRunner(t, s, "6.1.4")

	require.NoError(t, r.UpdateVersions(t.Context(), s.Packages[0]))
	got, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(got), "    MAJOR = 6\n")
	assert.Contains(t, string(got), "    MINOR = 1\n")
	assert.Contains(t, string(got), "    TINY  = 4\n")
	assert.Contains(t, string(got), "    PRE   = nil\n")
	// the rest of the source is untouched
	assert.Contains(t, string(got), "def self.gem_version")
}

func TestUpdateVersions_PreRelease(t *testing.T) {
	dir := t.TempDir()
	fn := writeConstants(t, dir)

	s := testSuite()
	s.Packages[0].ConstantsGlob = filepath.Join(dir, "lib", "*", "gem_version.rb")
	s.Packages[0].PackageJSON = filepath.Join(dir, "package.json")
	r := testRunner(t, s, "7.0.0.rc1")

	require.NoError(t, r.UpdateVersions(t.Context(), s.Packages[0]))
	got, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(got), "    MAJOR = 7\n")
	assert.Contains(t, string(got), "    TINY  = 0\n")
	assert.Contains(t, string(got), "    PRE   = \"rc1\"\n")
}

func TestUpdateVersions_GlobMustMatchOne(t *testing.T) {
	dir := t.TempDir()

	s := testSuite()
	s.Packages[0].ConstantsGlob = filepath.Join(dir, "lib", "*", "gem_version.rb")
	r := testRunner(t, s, "6.1.4")

	err := r.UpdateVersions(t.Context(), s.Packages[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matched 0 files")
}

func TestUpdateVersions_MissingConstant(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "lib", "active_model")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	fn := filepath.Join(sub, "gem_version.rb")
	// no PRE assignment at all
	require.NoError(t, os.WriteFile(fn, []byte("MAJOR = 6\nMINOR = 1\nTINY = 3\n"), 0o644))

	s := testSuite()
	s.Packages[0].ConstantsGlob = filepath.Join(dir, "lib", "*", "gem_version.rb")
	s.Packages[0].PackageJSON = filepath.Join(dir, "package.json")
	r := testRunner(t, s, "6.1.4")

	err := r.UpdateVersions(t.Context(), s.Packages[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PRE")
	assert.Contains(t, err.Error(), fn)
}

func TestClean_Idempotent(t *testing.T) {
	dir := t.TempDir()
	s := testSuite()
	s.OutputDir = dir
	r := testRunner(t, s, "6.1.4")
	p := s.Packages[0]

	artifact := filepath.Join(dir, "activemodel-6.1.4.gem")
	require.NoError(t, os.WriteFile(artifact, []byte("gem"), 0o644))

	require.NoError(t, r.Clean(p))
	assert.NoFileExists(t, artifact)
	// absent artifact is not an error
	require.NoError(t, r.Clean(p))
}

func TestRecordedNPMVersion(t *testing.T) {
	dir := t.TempDir()
	pj := filepath.Join(dir, "package.json")

	_, ok := RecordedNPMVersion(suite.Package{PackageJSON: pj})
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(pj, []byte(`{"name":"@frame/view","version":"6.1.300"}`), 0o644))
	v, ok := RecordedNPMVersion(suite.Package{PackageJSON: pj})
	require.True(t, ok)
	assert.Equal(t, "6.1.300", v)
}
