package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/veitch/groups"
	"github.com/katalvlaran/veitch/kmap"
	"github.com/katalvlaran/veitch/notation"
	"github.com/katalvlaran/veitch/render"
)

func mustGrid(t *testing.T, text string, dontcares []int) (*kmap.Grid, notation.Function) {
	t.Helper()
	fn, err := notation.Parse(text)
	require.NoError(t, err)
	g, err := kmap.Assemble(fn, dontcares)
	require.NoError(t, err)

	return g, fn
}

// TestMap_Layout verifies labels, corner header and cell contents all
// appear in the drawn map.
func TestMap_Layout(t *testing.T) {
	g, _ := mustGrid(t, "F(a,b,c) = Σm(1,2,5)", nil)
	r := render.New(render.Options{NoColor: true})

	out := r.Map(g, nil)
	require.Contains(t, out, `a\bc`)
	for _, label := range []string{"00", "01", "11", "10"} {
		require.Contains(t, out, label)
	}
	require.Contains(t, out, "1")
	require.Contains(t, out, "0")

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 2, "header plus boxed rows")
}

// TestMap_ThickEdges verifies group boundary edges render thick while a
// fully wrapped direction stays thin: group [0,1] on the 2×2 map owns
// the whole top row, so top/bottom are thick and left/right are not.
func TestMap_ThickEdges(t *testing.T) {
	g, _ := mustGrid(t, "F(a,b) = Σm(0,1)", nil)
	bs, err := groups.Borders([][]int{{0, 1}}, 2)
	require.NoError(t, err)

	r := render.New(render.Options{NoColor: true})
	out := r.Map(g, bs)
	require.Contains(t, out, "━", "boundary edges must render thick")
	require.NotContains(t, out, "┃", "wrapped left/right edges must stay thin")
}

// TestMap_Marker verifies the configured don't-care marker is displayed.
func TestMap_Marker(t *testing.T) {
	g, _ := mustGrid(t, "F(a,b) = Σm(1)", []int{2})
	r := render.New(render.Options{Marker: "-", NoColor: true})

	out := r.Map(g, nil)
	require.Contains(t, out, "-")
	require.NotContains(t, out, "X")
}

// TestMap_LastPair verifies the renderer retains the last-rendered state
// so failed re-parses can leave the screen untouched.
func TestMap_LastPair(t *testing.T) {
	r := render.New(render.Options{NoColor: true})
	lastGrid, lastBorders := r.Last()
	require.Nil(t, lastGrid)
	require.Nil(t, lastBorders)

	g, _ := mustGrid(t, "F(a,b) = Σm(1,2)", nil)
	bs, err := groups.Borders([][]int{{1}}, 2)
	require.NoError(t, err)
	_ = r.Map(g, bs)

	lastGrid, lastBorders = r.Last()
	require.Equal(t, g, lastGrid)
	require.Equal(t, bs, lastBorders)
}

// TestMap_Deterministic verifies two draws of the same inputs are identical.
func TestMap_Deterministic(t *testing.T) {
	g, _ := mustGrid(t, "F(a,b,c,d) = Σm(0,5,10,15)", []int{7})
	bs, err := groups.Borders([][]int{{0}, {5, 7}}, 4)
	require.NoError(t, err)

	r := render.New(render.Options{NoColor: true})
	require.Equal(t, r.Map(g, bs), r.Map(g, bs))
}

// TestSummary verifies the group table contents, including don't-care
// filtering and skipping of groups that cover only don't-cares.
func TestSummary(t *testing.T) {
	_, fn := mustGrid(t, "F(a,b,c) = Σm(4)", []int{5, 6})
	r := render.New(render.Options{NoColor: true})

	out := r.Summary([][]int{{4, 5}, {5, 6}}, fn, []int{5, 6})
	require.Contains(t, out, "ab'")
	require.Contains(t, out, "[4]")
	require.NotContains(t, out, "[5 6]", "don't-care-only group must be skipped")
	require.Contains(t, out, "Explanation")
}
