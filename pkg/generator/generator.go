package generator

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeCount = errors.New("count must not be negative")
	ErrInvalidRange  = errors.New("min must not be greater than max")
)

// Params describes one generation run
type Params struct {
	Count int
	Min   int64
	Max   int64
}

// Validate reports configuration errors before any output is produced
func (p Params) Validate() error {
	if p.Count < 0 {
		return fmt.Errorf("invalid count %d: %w", p.Count, ErrNegativeCount)
	}
	if p.Min > p.Max {
		return fmt.Errorf("invalid range [%d, %d]: %w", p.Min, p.Max, ErrInvalidRange)
	}
	return nil
}

// Width returns the number of distinct values in [Min, Max].
// A zero result means the range covers every int64.
func (p Params) Width() uint64 {
	return uint64(p.Max-p.Min) + 1
}
