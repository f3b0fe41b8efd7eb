package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge under DefaultSettings.
const DefaultEdgeWeight float64 = 1

// WeightFn draws the weight of one new edge from the build RNG.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn ignores the RNG and yields w for every edge.
// Panics if w < 0.
func ConstantWeightFn(w float64) WeightFn {
	if w < 0 {
		panic(fmt.Sprintf("builder: ConstantWeightFn(%g): negative weight", w))
	}

	return func(*rand.Rand) float64 { return w }
}

// UniformWeightFn draws from [lo, hi). With lo == hi it is ConstantWeightFn(lo)
// and never touches the RNG; a nil RNG otherwise yields DefaultEdgeWeight.
// Panics unless 0 <= lo <= hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: UniformWeightFn(%g, %g): want 0 <= lo <= hi", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		switch {
		case lo == hi:
			return lo
		case rng == nil:
			return DefaultEdgeWeight
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
