package textedit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t testing.TB, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.txt")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func testEditor(
	t testing.TB,
	original []string,
	editor Editor,
	expected []string,
	expectSkip bool,
) {
	fn := filepath.Join(t.TempDir(), "test.txt")
	require.NoError(t, os.WriteFile(fn, []byte(strings.Join(original, "")), 0o644))

	changed, err := EditFile(fn, editor)
	require.NoError(t, err)
	assert.Equal(t, expectSkip, !changed)

	got, err := os.ReadFile(fn)
	require.NoError(t, err)

	if expectSkip {
		assert.Equal(t, strings.Join(original, ""), string(got))
	} else {
		assert.Equal(t, strings.Join(expected, ""), string(got))
	}
}
