package version

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/mod/semver"
)

func TestParse(t *testing.T) {
	type test struct {
		in      string
		want    Version
		wantErr bool
	}
	tests := []test{
		{in: "6.1.4", want: Version{6, 1, 4, ""}},
		{in: "6.1.4.rc1", want: Version{6, 1, 4, "rc1"}},
		{in: "6.0.3.1", want: Version{6, 0, 3, "1"}},
		{in: "7.0.0.alpha2", want: Version{7, 0, 0, "alpha2"}},
		{in: " 6.1.4\n", want: Version{6, 1, 4, ""}},
		{in: "6.1", wantErr: true},
		{in: "v6.1.4", wantErr: true},
		{in: "six.one.four", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "VERSION")
	require.NoError(t, os.WriteFile(fn, []byte("6.1.4.rc1\n"), 0o644))
	v, err := ParseFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "6.1.4.rc1", v.String())
	assert.Equal(t, "v6.1.4.rc1", v.Tag())
}

func TestNPM(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"6.1.4", "6.1.400"},
		{"6.1.0", "6.1.0"},
		{"6.0.3.1", "6.0.301"},
		{"6.0.3.22", "6.0.322"},
		{"6.1.4.rc1", "6.1.400-rc1"},
		{"7.0.0.beta2", "7.0.0-beta2"},
		{"7.0.0.alpha", "7.0.0-alpha"},
		// a fourth component that is neither marker nor number degrades to +0
		{"6.1.4.oops", "6.1.404"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.NPM())
		})
	}
}

// The npm mapping has to preserve the source ordering or npm clients would
// see "upgrades" going backwards.
func TestNPM_Monotonic(t *testing.T) {
	ordered := []string{
		"6.1.3.8",
		"6.1.4.rc1",
		"6.1.4.rc2",
		"6.1.4",
		"6.1.4.1",
		"6.1.5.rc1",
		"6.1.5",
	}
	for i := 1; i < len(ordered); i++ {
		prev, err := Parse(ordered[i-1])
		require.NoError(t, err)
		cur, err := Parse(ordered[i])
		require.NoError(t, err)
		assert.Negative(t,
			semver.Compare("v"+prev.NPM(), "v"+cur.NPM()),
			"%s -> %s must order %s before %s",
			ordered[i-1], ordered[i], prev.NPM(), cur.NPM(),
		)
	}
}

func TestPreReleaseAndDistTag(t *testing.T) {
	tests := []struct {
		in      string
		pre     bool
		distTag string
	}{
		{"6.1.4", false, "latest"},
		{"6.0.3.1", false, "latest"},
		{"6.1.4.rc1", true, "pre"},
		{"7.0.0.beta1", true, "pre"},
		{"7.0.0.alpha", true, "pre"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.pre, v.PreRelease())
			assert.Equal(t, tt.distTag, v.DistTag())
		})
	}
}

func TestAtoiPrefix(t *testing.T) {
	assert.Equal(t, 1, atoiPrefix("1"))
	assert.Equal(t, 22, atoiPrefix("22suffix"))
	assert.Equal(t, 0, atoiPrefix("nope"))
	assert.Equal(t, 0, atoiPrefix(""))
}
