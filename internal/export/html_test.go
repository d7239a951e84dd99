package export

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTMLMarksCharChanges(t *testing.T) {
	out, err := HTML("left.nb", "right.nb", "a\nb\nc", "a\nx\nc")
	require.NoError(t, err)

	s := string(out)
	require.Contains(t, s, "left.nb")
	require.Contains(t, s, "right.nb")
	require.Contains(t, s, "<del>b</del>")
	require.Contains(t, s, "<ins>x</ins>")
}

func TestHTMLEscapesContent(t *testing.T) {
	out, err := HTML("l", "r", "a<b", "a<b")
	require.NoError(t, err)

	s := string(out)
	require.Contains(t, s, "&lt;")
	require.NotContains(t, s, "a<b")
}

func TestHTMLPadsShorterSide(t *testing.T) {
	out, err := HTML("l", "r", "a\nb\nc\nd", "a\nx")
	require.NoError(t, err)

	require.Contains(t, string(out), `class="line pad"`)
}

func TestHTMLMarksCellHeaders(t *testing.T) {
	text := "(* Input 1 *)\nx = 1"
	out, err := HTML("l", "r", text, text)
	require.NoError(t, err)

	require.Contains(t, string(out), `class="line unchanged head"`)
}
