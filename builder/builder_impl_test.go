// Package builder_test contains functional tests for every Constructor in the
// builder package, verifying topology, counts, composition and determinism.
package builder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
)

// edgeKey identifies an edge by its endpoint names.
type edgeKey struct{ U, V string }

// edgeWeights maps every edge of g to its weight (first match wins).
func edgeWeights(g *core.Graph) map[edgeKey]int64 {
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		k := edgeKey{U: e.From.Name, V: e.To.Name}
		if _, seen := m[k]; !seen {
			m[k] = e.Weight
		}
	}
	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	const w = builder.DefaultEdgeWeight

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for i := 0; i < 3; i++ {
					got, ok := edges[edgeKey{fmt.Sprint(i), fmt.Sprint(i + 1)}]
					assert.True(t, ok, "missing %d→%d", i, i+1)
					assert.Equal(t, w, got)
				}
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				_, ok := edgeWeights(g)[edgeKey{"4", "0"}]
				assert.True(t, ok, "closing arc 4→0 missing")
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 12,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				assert.Contains(t, edges, edgeKey{"0", "3"})
				assert.Contains(t, edges, edgeKey{"3", "0"})
				assert.NotContains(t, edges, edgeKey{"2", "2"})
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7, // 2·2 right + 3 down
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				assert.Contains(t, edges, edgeKey{"0,0", "0,1"})
				assert.Contains(t, edges, edgeKey{"0,2", "1,2"})
				assert.NotContains(t, edges, edgeKey{"0,1", "0,0"})
			},
		},
		{
			name: "RandomDAG(5,1)", ctor: builder.RandomDAG(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomDAG(5,0)", ctor: builder.RandomDAG(5, 0), wantV: 5, wantE: 0,
		},
		{
			name: "Lecture", ctor: builder.Lecture(), wantV: 18, wantE: 27,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				s, ok := g.VertexByName("S")
				require.True(t, ok)
				assert.Equal(t, 17, s.ID)
				_, hasQ := g.VertexByName("Q")
				assert.False(t, hasQ)
				assert.Equal(t, int64(-9), edgeWeights(g)[edgeKey{"N", "S"}])
			},
		},
		{
			name: "LectureSmall", ctor: builder.LectureSmall(), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				shadowed := 0
				for _, e := range g.Edges() {
					if g.Shadowed(e) {
						shadowed++
						assert.Equal(t, "B", e.From.Name)
						assert.Equal(t, "C", e.To.Name)
					}
				}
				assert.Equal(t, 1, shadowed)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order(), "vertex count")
			assert.Equal(t, tc.wantE, g.Size(), "edge count")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bopts []builder.BuilderOption
		ctor  builder.Constructor
		want  error
	}{
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomDAG(0,.5)", nil, builder.RandomDAG(0, 0.5), builder.ErrTooFewVertices},
		{"RandomDAG(p<0)", nil, builder.RandomDAG(3, -0.1), builder.ErrInvalidProbability},
		{"RandomDAG(p>1)", nil, builder.RandomDAG(3, 1.5), builder.ErrInvalidProbability},
		{"RandomDAG(no rng)", nil, builder.RandomDAG(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(tc.bopts, tc.ctor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestBuildGraph_ComposesIdempotently(t *testing.T) {
	t.Parallel()

	// Path(3) and Cycle(3) share vertices 0,1,2; the arcs add up.
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 5, g.Size())

	// The repeated 0→1 and 1→2 arcs are shadowed by the Path ones.
	shadowed := 0
	for _, e := range g.Edges() {
		if g.Shadowed(e) {
			shadowed++
		}
	}
	assert.Equal(t, 2, shadowed)
}

func TestBuildGraph_CoreErrorSurfaces(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(func(int) string { return "" })},
		builder.Path(2),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrEmptyVertexName)
}

func TestRandomDAG_DeterministicAndAcyclic(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(-5, 10)}
	g1, err := builder.BuildGraph(opts, builder.RandomDAG(30, 0.3))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(-5, 10)}
	g2, err := builder.BuildGraph(opts, builder.RandomDAG(30, 0.3))
	require.NoError(t, err)

	require.Equal(t, g1.Edges(), g2.Edges(), "same seed must give the same graph")
	require.NotZero(t, g1.Size())

	for _, e := range g1.Edges() {
		assert.Less(t, e.From.ID, e.To.ID, "arc %s must point forward", e)
		assert.GreaterOrEqual(t, e.Weight, int64(-5))
		assert.LessOrEqual(t, e.Weight, int64(10))
	}
}

func TestCycle_NegativeWeights(t *testing.T) {
	t.Parallel()

	g := builder.MustBuildGraph(
		[]builder.BuilderOption{builder.WithConstantWeight(-1), builder.WithLetterIDs()},
		builder.Cycle(3),
	)
	var total int64
	for _, e := range g.Edges() {
		total += e.Weight
	}
	assert.Equal(t, int64(-3), total)
	_, ok := g.EdgeBetween(g.VertexAt(2), g.VertexAt(0))
	assert.True(t, ok, "C→A closes the cycle")
	assert.Equal(t, "C", g.VertexAt(2).Name)
}

func TestMustBuildGraph_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.MustBuildGraph(nil, builder.Path(0)) })
}
