package debuglog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogfAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nbdiff.log")
	t.Setenv("NBDIFF_LOG", path)

	Logf("loaded %d cells", 4)
	Logf("rebuild took %s", "12ms")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "loaded 4 cells")
	require.Contains(t, lines[1], "rebuild took 12ms")
}

func TestLogfNoOpWhenUnset(t *testing.T) {
	t.Setenv("NBDIFF_LOG", "")
	require.False(t, Enabled())
	Logf("dropped %s", "silently")
}

func TestEnabled(t *testing.T) {
	t.Setenv("NBDIFF_LOG", filepath.Join(t.TempDir(), "x.log"))
	require.True(t, Enabled())
}
