package dealer

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the single random handle threaded through a tournament.
type Source interface {
	// Float returns a uniform value in [0, max).
	Float(max float64) float64
	// IntInclusive returns a uniform integer in [0, n].
	IntInclusive(n int) int
	// Shuffle permutes n elements uniformly through swap.
	Shuffle(n int, swap func(i, j int))
}

// Dealer draws from a seeded generator, so the same seed replays the same
// tournament.
type Dealer struct {
	seed int64
	rnd  *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return &Dealer{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

func (d *Dealer) Seed() int64 { return d.seed }

func (d *Dealer) Float(max float64) float64 {
	if max <= 0 {
		return 0
	}
	return d.rnd.Float64() * max
}

func (d *Dealer) IntInclusive(n int) int {
	if n <= 0 {
		return 0
	}
	return d.rnd.Intn(n + 1)
}

func (d *Dealer) Shuffle(n int, swap func(i, j int)) {
	d.rnd.Shuffle(n, swap)
}

// ShuffleSlice permutes s in place.
func ShuffleSlice[T any](src Source, s []T) {
	src.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// NewSeed reads a seed from crypto/rand for runs that did not ask for one.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
