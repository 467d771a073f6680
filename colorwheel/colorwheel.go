// Package colorwheel picks values from a palette without repeating any of
// them until the whole palette was used.
package colorwheel

import (
	"errors"
	"math/rand/v2"
	"time"
)

// ErrEmpty is returned when a wheel is created without values
var ErrEmpty = errors.New("color wheel needs at least one value")

// Source of colors
type Source interface {
	Next() string
}

// Option for a Shuffle
type Option func(*options)

type options struct {
	rand *rand.Rand
}

// WithRand sets the random source used to pick values
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

// Seeded uses a deterministic random source
func Seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// Shuffle cycles through its values in random order.
// Each slot is emitted exactly once per round and the order of every round
// is drawn independently. Duplicated values occupy independent slots.
//
// A Shuffle is not safe for concurrent use.
type Shuffle[T comparable] struct {
	values  []T
	pending []int
	rand    *rand.Rand
}

// NewShuffle creates a Shuffle over a copy of values
func NewShuffle[T comparable](values []T, opts ...Option) (*Shuffle[T], error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}

	var o = options{}

	for _, opt := range opts {
		opt(&o)
	}

	if o.rand == nil {
		var now = uint64(time.Now().UnixNano())
		o.rand = rand.New(rand.NewPCG(now, now>>1|1))
	}

	var s = &Shuffle[T]{
		values: append([]T(nil), values...),
		rand:   o.rand,
	}

	s.pending = make([]int, 0, len(s.values))
	s.reset()
	return s, nil
}

// Next value of the wheel
func (s *Shuffle[T]) Next() T {
	if len(s.pending) == 0 {
		s.reset()
	}

	var (
		pick = s.rand.IntN(len(s.pending))
		slot = s.pending[pick]
		last = len(s.pending) - 1
	)

	s.pending[pick] = s.pending[last]
	s.pending = s.pending[:last]
	return s.values[slot]
}

// Len is the number of slots in a round
func (s *Shuffle[T]) Len() int {
	return len(s.values)
}

// Remaining is the number of slots not yet emitted in the current round
func (s *Shuffle[T]) Remaining() int {
	return len(s.pending)
}

func (s *Shuffle[T]) reset() {
	s.pending = s.pending[:0]

	for i := range s.values {
		s.pending = append(s.pending, i)
	}
}
