package dot_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/dot"
	"github.com/katalvlaran/shortpath/solver"
)

func TestExport_Format(t *testing.T) {
	g := builder.MustBuildGraph(nil, builder.LectureSmall())
	a, _ := g.VertexByName("A")
	d, _ := g.VertexByName("D")

	r, err := bellmanford.NewRegular(g)
	require.NoError(t, err)
	r.From(a)
	r.To(d)
	require.NoError(t, r.Solve())

	out, err := r.Export(dot.NewExporter())
	require.NoError(t, err)

	want := strings.Join([]string{
		"digraph BellmanFord {",
		"//Shortest path edges",
		`A -> B [ label="5" ] [color=blue];`,
		`B -> C [ label="-2" ] [color=blue];`,
		`C -> D [ label="4" ] [color=blue];`,
		"//other edges",
		`A -> C [ label="4" ];`,
		`B -> C [ label="-2" ];`, // the shadowed duplicate stays an ordinary edge
		`B -> D [ label="3" ];`,
		"}",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestExport_EmptyPath(t *testing.T) {
	g := core.NewBuilder().Vertices("A", "B").Edge("A", "B", 1).MustBuild()
	out, err := dot.NewExporter(dot.WithGraphName("Floyd"), dot.WithPathColor("red")).Export(g, nil)
	require.NoError(t, err)
	assert.Equal(t, "digraph Floyd {\n//Shortest path edges\n//other edges\nA -> B [ label=\"1\" ];\n}", out)
}

func TestExport_QuotesNames(t *testing.T) {
	g := builder.MustBuildGraph(nil, builder.Grid(1, 2))
	out, err := dot.NewExporter().Export(g, g.Edges())
	require.NoError(t, err)
	assert.Contains(t, out, `"0,0" -> "0,1" [ label="1" ] [color=blue];`)
}

func TestExport_Errors(t *testing.T) {
	_, err := dot.NewExporter().Export(nil, nil)
	require.ErrorIs(t, err, core.ErrNilGraph)

	g := core.NewBuilder().Vertices("A", "B").Edge("A", "B", 1).MustBuild()
	a, _ := g.VertexByName("A")
	b, _ := g.VertexByName("B")
	for _, bad := range []core.Edge{
		{ID: 5, From: a, To: b},
		{ID: 0, From: b, To: a},
	} {
		_, err = dot.NewExporter().Export(g, []core.Edge{bad})
		assert.ErrorIs(t, err, dot.ErrForeignEdge)
	}
}

func TestRenderSVG(t *testing.T) {
	g := builder.MustBuildGraph(nil, builder.Lecture())
	s, err := bellmanford.NewWorklist(g)
	require.NoError(t, err)
	a, _ := g.VertexByName("A")
	p, _ := g.VertexByName("S")
	_, err = solver.ShortestPath(s, a, p)
	require.NoError(t, err)

	text, err := s.Export(dot.NewExporter())
	require.NoError(t, err)

	svg, err := dot.RenderSVG(context.Background(), text)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
