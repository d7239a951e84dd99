package notebook

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseInputs(t *testing.T) {
	inputs, err := ParseInputs(`["x = 1", "Plot[Sin[x], {x, 0, 2 Pi}]"]`)
	require.NoError(t, err)
	want := []string{"x = 1", "Plot[Sin[x], {x, 0, 2 Pi}]"}
	if diff := cmp.Diff(want, inputs); diff != "" {
		t.Errorf("inputs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInputsSurroundingWhitespace(t *testing.T) {
	inputs, err := ParseInputs("\n  [\"a\"]\n")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, inputs)
}

func TestParseInputsEmptyArray(t *testing.T) {
	inputs, err := ParseInputs("[]")
	require.NoError(t, err)
	require.Empty(t, inputs)
}

func TestParseInputsErrors(t *testing.T) {
	_, err := ParseInputs("")
	require.Error(t, err)

	_, err = ParseInputs("not json")
	require.Error(t, err)

	_, err = ParseInputs(`{"cells": []}`)
	require.Error(t, err)
}

func TestIsNotebook(t *testing.T) {
	require.True(t, IsNotebook("foo.nb"))
	require.True(t, IsNotebook("dir/FOO.NB"))
	require.False(t, IsNotebook("foo.txt"))
	require.False(t, IsNotebook("foo.nb.txt"))
	require.False(t, IsNotebook("foo"))
}

func TestFormatBatch(t *testing.T) {
	got := FormatBatch([]string{"x = 1", "y = 2"})

	require.True(t, strings.HasPrefix(got, "(* Input 1 *)\nx = 1\n\n"))
	require.Contains(t, got, "(* Input 2 *)\ny = 2\n")
	require.Equal(t, 2, strings.Count(got, batchRule))
	require.True(t, strings.HasSuffix(got, "\n\n"))
}

func TestFormatBatchEmpty(t *testing.T) {
	require.Equal(t, "(No input cells found)\n", FormatBatch(nil))
}
