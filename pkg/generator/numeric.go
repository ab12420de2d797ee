package generator

import (
	"math/rand/v2"
)

type NumericGenerator struct {
	rng  *rand.Rand
	Seed uint64
}

// NewNumericGenerator creates a sampler. A nil seed picks a random one.
func NewNumericGenerator(seed *uint64) *NumericGenerator {
	s := rand.Uint64()
	if seed != nil {
		s = *seed
	}
	return &NumericGenerator{
		rng:  rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
		Seed: s,
	}
}

// Generate draws p.Count independent uniform samples from [p.Min, p.Max]
func (ng *NumericGenerator) Generate(p Params) ([]int64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	values := make([]int64, p.Count)
	width := p.Width()
	for i := range values {
		values[i] = ng.sample(p.Min, width)
	}
	return values, nil
}

func (ng *NumericGenerator) sample(lo int64, width uint64) int64 {
	if width == 0 {
		// Full int64 range
		return int64(ng.rng.Uint64())
	}
	return int64(uint64(lo) + ng.rng.Uint64N(width))
}
