package attribute

import (
	"math"

	"github.com/bbernstein/console-core/pkg/dmx"
)

// Value is a normalized attribute intensity in [0.0, 1.0]. Construction
// and every arithmetic operation clamp into range.
type Value float64

// NewValue clamps f into [0, 1].
func NewValue(f float64) Value {
	switch {
	case math.IsNaN(f):
		return 0
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return Value(f)
	}
}

// Float64 returns the underlying clamped scalar.
func (v Value) Float64() float64 {
	return float64(v)
}

// Add clamps the sum of v and other.
func (v Value) Add(other Value) Value {
	return NewValue(float64(v) + float64(other))
}

// Scale clamps v multiplied by factor.
func (v Value) Scale(factor float64) Value {
	return NewValue(float64(v) * factor)
}

// Byte converts v to a single 8-bit DMX byte: round(v * 255).
func (v Value) Byte() dmx.Value {
	return dmx.Value(math.Round(float64(v) * 255))
}

// EncodeBigEndian converts v to n big-endian bytes (n in 1..=4),
// rounding v*(2^(8n)-1) and writing the most-significant byte first.
func (v Value) EncodeBigEndian(n int) []dmx.Value {
	if n < 1 {
		n = 1
	}
	if n > 4 {
		n = 4
	}
	maxVal := math.Pow(2, float64(8*n)) - 1
	scaled := uint64(math.Round(float64(v) * maxVal))
	out := make([]dmx.Value, n)
	for i := 0; i < n; i++ {
		shift := uint(8 * (n - 1 - i))
		out[i] = dmx.Value((scaled >> shift) & 0xFF)
	}
	return out
}
