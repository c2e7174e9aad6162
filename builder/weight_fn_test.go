package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/shortpath/builder"
)

func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.NormalWeightFn(0, -0.1) })
	assert.NotPanics(t, func() { builder.UniformWeightFn(-3, -3) })
}

// TestWeightFnBehavior covers the runtime behaviour of each WeightFn:
//   - nil RNG falls back to DefaultEdgeWeight for the random ones.
//   - negative weights are produced when the range allows them.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, int64(-9), builder.ConstantWeightFn(-9)(rng))

	uniform := builder.UniformWeightFn(-10, 10)
	assert.Equal(t, builder.DefaultEdgeWeight, uniform(nil))
	sawNegative := false
	for i := 0; i < 200; i++ {
		w := uniform(rng)
		assert.GreaterOrEqual(t, w, int64(-10))
		assert.LessOrEqual(t, w, int64(10))
		if w < 0 {
			sawNegative = true
		}
	}
	assert.True(t, sawNegative, "U[-10,10] produced no negative weight in 200 draws")
	assert.Equal(t, int64(-3), builder.UniformWeightFn(-3, -3)(rng))

	normal := builder.NormalWeightFn(0, 0)
	assert.Equal(t, builder.DefaultEdgeWeight, normal(nil))
	assert.Equal(t, int64(0), normal(rng))
}
