package dice

import (
	"io"
	"strconv"
	"sync/atomic"
	"time"
)

// seededSource is a mulberry32 generator whose state is derived from a string.
//
// Invariant: two seededSources built from the same seed produce identical
// sequences for any number of calls.
type seededSource struct {
	state uint32
}

// NewSeededSource returns a deterministic Source derived from seed.
//
// Postcondition: every value returned by Float64 is in [0, 1).
func NewSeededSource(seed string) Source {
	return &seededSource{state: hashSeed(seed)}
}

// NewSource returns an unseeded Source. Its state comes from the wall clock
// and a process-wide counter, so calls in the same tick still differ. It is
// still a plain value owned by the caller.
func NewSource() Source {
	return NewSeededSource(TimeSeed())
}

// seedCounter separates seeds taken within the same clock tick.
var seedCounter atomic.Uint64

// TimeSeed returns a time-derived seed string suitable for NewSeededSource.
//
// Postcondition: no two calls within one process return the same string.
func TimeSeed() string {
	n := seedCounter.Add(1)
	return strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.FormatUint(n, 36)
}

// hashSeed folds seed into 32 bits using h = h*31 + c with wrapping arithmetic.
func hashSeed(seed string) uint32 {
	var h uint32
	for _, c := range seed {
		h = h*31 + uint32(c)
	}
	return h
}

// Float64 returns the next value in [0, 1).
func (s *seededSource) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// Intn returns a value in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// IntRange returns a value in [lo, hi] drawn from src. When hi < lo it returns lo.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Chance reports whether a draw from src falls under p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Shuffle permutes n elements in place with Fisher-Yates, calling swap for each exchange.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

type sourceReader struct {
	src Source
}

// Reader adapts src to an io.Reader producing one byte per draw. It lets
// identifier generators consume the caller's Source so seeded runs stay
// reproducible.
func Reader(src Source) io.Reader {
	return sourceReader{src: src}
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.Intn(256))
	}
	return len(p), nil
}
