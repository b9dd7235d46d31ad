package pixelgen

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"
)

// Seed is the single source of determinism for a generator. Integers are
// used as-is; strings and byte buffers are folded with 64-bit FNV-1a so the
// expansion is stable across platforms and runs.
type Seed struct {
	value int64
	set   bool
}

// SeedInt64 wraps an integer seed.
func SeedInt64(v int64) Seed {
	return Seed{value: v, set: true}
}

// SeedString derives a seed from an arbitrary string.
func SeedString(s string) Seed {
	return SeedBytes([]byte(s))
}

// SeedBytes derives a seed from a raw byte buffer.
func SeedBytes(b []byte) Seed {
	h := fnv.New64a()
	_, _ = h.Write(b)
	return Seed{value: int64(h.Sum64()), set: true}
}

// TimeSeed returns a time-based entropy seed, the default when a caller
// omits one.
func TimeSeed() Seed {
	return Seed{value: time.Now().UnixNano(), set: true}
}

// IsZero reports whether the seed was left unset.
func (s Seed) IsZero() bool {
	return !s.set
}

// Int64 returns the expanded 64-bit value.
func (s Seed) Int64() int64 {
	return s.value
}

// Rand returns a fresh deterministic generator for this seed. Each call
// starts from the same state, so one fill cannot perturb the next.
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewSource(s.value))
}

// orDefault substitutes time-based entropy for an unset seed.
func (s Seed) orDefault() Seed {
	if s.set {
		return s
	}
	return TimeSeed()
}

// UnmarshalJSON accepts a JSON number (used directly) or string (folded
// via FNV-1a). null leaves the seed unset.
func (s *Seed) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = Seed{}
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*s = SeedInt64(n)
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = SeedString(str)
		return nil
	}
	return fmt.Errorf("seed must be an integer or a string, got %s", b)
}
