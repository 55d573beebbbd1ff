package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the command tree against args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), err
}

// TestRenderCommand verifies end-to-end parse → assemble → draw.
func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "F(a,b,c) = Σm(1,2,5)", "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, `a\bc`)
	require.Contains(t, out, "1")
}

// TestRenderCommand_Groups verifies group outlines and the summary table.
func TestRenderCommand_Groups(t *testing.T) {
	out, err := execute(t, "render", "F(a,b,c) = Σm(4,5)", "--group", "4,5", "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "━", "group boundary must be drawn")
	require.Contains(t, out, "ab'", "summary must show the derived term")
}

// TestRenderCommand_Marker verifies the marker flag reaches the renderer.
func TestRenderCommand_Marker(t *testing.T) {
	out, err := execute(t, "render", "F(a,b) = Σm(1)", "--dontcare", "2", "--marker", "-", "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "-")
}

// TestRenderCommand_ParseFailure verifies parse errors surface and abort.
func TestRenderCommand_ParseFailure(t *testing.T) {
	_, err := execute(t, "render", "not a function", "--no-color")
	require.Error(t, err)
}

// TestLabelsCommand verifies the axis layout dump.
func TestLabelsCommand(t *testing.T) {
	out, err := execute(t, "labels", "3")
	require.NoError(t, err)
	require.Contains(t, out, "rows (1 var): 0 1")
	require.Contains(t, out, "cols (2 var): 00 01 11 10")
}

// TestLabelsCommand_BadCount verifies unsupported widths fail.
func TestLabelsCommand_BadCount(t *testing.T) {
	_, err := execute(t, "labels", "7")
	require.Error(t, err)
}

// TestParseTermList exercises the flag list parser.
func TestParseTermList(t *testing.T) {
	got, err := parseTermList(" 1, 2 ,5 ")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 5}, got)

	got, err = parseTermList("")
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = parseTermList("1,x")
	require.Error(t, err)
}
