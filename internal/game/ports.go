package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Rng is the only source of randomness the engine reads.
// *math/rand.Rand satisfies it.
type Rng interface {
	Float64() float64
}

// Clock is the only source of wall-clock time the engine reads.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// NewRng returns a seeded generator; the same seed replays the same run.
func NewRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewSeed draws a seed from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// intn maps the next float onto [0, n).
func intn(rng Rng, n int) int {
	if n <= 1 {
		return 0
	}
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
