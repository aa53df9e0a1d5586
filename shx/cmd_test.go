package shx

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CaptureOutput(t *testing.T) {
	res, err := Run(t.Context(),
		[]string{"sh", "-c", "echo hello"},
		CaptureOutput(),
		WithCombinedError(),
	)
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Text())

	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestRun_CaptureCombined(t *testing.T) {
	res, err := Run(t.Context(),
		[]string{"sh", "-c", "echo out; echo err >&2"},
		CaptureCombined(),
		WithCombinedError(),
	)
	require.NoError(t, err)
	assert.Contains(t, res.Text(), "out")
	assert.Contains(t, res.Text(), "err")
}

func TestRun_WithEnv(t *testing.T) {
	res, err := Run(t.Context(),
		[]string{"sh", "-c", `printf '%s' "$RELEASE_TEST_VAR"`},
		WithEnv("RELEASE_TEST_VAR", "42"),
		CaptureOutput(),
		WithCombinedError(),
	)
	require.NoError(t, err)
	assert.Equal(t, "42", res.Text())
}

func TestRun_WithCwd(t *testing.T) {
	dir := t.TempDir()
	res, err := Run(t.Context(),
		[]string{"pwd"},
		WithCwd(dir),
		CaptureOutput(),
		WithCombinedError(),
	)
	require.NoError(t, err)
	// pwd may resolve through symlinks (e.g. /tmp on macOS), so just check
	// the tail of the path.
	assert.Contains(t, res.Text(), filepath.Base(dir))
}

func TestRun_ExitError(t *testing.T) {
	res, err := Run(t.Context(), []string{"sh", "-c", "exit 3"})
	require.NoError(t, err)
	assert.Error(t, res.Err())
}

func TestRun_CombinedError(t *testing.T) {
	_, err := Run(t.Context(),
		[]string{"sh", "-c", "exit 3"},
		WithCombinedError(),
	)
	assert.Error(t, err)
}

func TestRun_StartError(t *testing.T) {
	res, err := Run(t.Context(), []string{"./does-not-exist-anywhere"})
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestResult_String(t *testing.T) {
	// status-style output where the leading column is positional
	res, err := Run(t.Context(),
		[]string{"sh", "-c", `printf ' M first\n M second\n'`},
		CaptureOutput(),
		WithCombinedError(),
	)
	require.NoError(t, err)
	assert.Equal(t, " M first\n M second\n", res.String())
	assert.Equal(t, "M first\n M second", res.Text())
}

func TestResult_NoCapture(t *testing.T) {
	res, err := Run(t.Context(), []string{"true"})
	require.NoError(t, err)
	assert.Nil(t, res.Stdout())
	assert.Empty(t, res.String())
	assert.Empty(t, res.Text())
}
