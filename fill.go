package randsource

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// FillInt overwrites every element of dst with an independent uniform draw
// from [min, max]. Elements are visited in order; each receives its own draw.
// Bounds are taken in T's own domain, so unsigned ranges past the int maximum
// work.
//
// min > max is caller misuse and panics.
func FillInt[T constraints.Integer](g Generator, dst []T, min, max T) {
	if min > max {
		panic(fmt.Sprintf("randsource: inverted bounds: min=%v max=%v", min, max))
	}
	span := uint64(max) - uint64(min)
	for i := range dst {
		dst[i] = min + T(drawOffset(g, span))
	}
}

// drawOffset returns a uniform uint64 in [0, span] using g's integer draws,
// so pooled and shared sources keep their own engines behind it.
func drawOffset(g Generator, span uint64) uint64 {
	if span <= math.MaxInt {
		return uint64(g.NextInt(0, int(span)))
	}
	// Compose a full 64-bit draw and reject past the span
	for {
		v := uint64(g.NextInt(0, math.MaxInt))<<1 | uint64(g.NextInt(0, 1))
		if v <= span {
			return v
		}
	}
}

// FillFloat overwrites every element of dst with an independent uniform draw
// from [min, max].
//
// min > max is caller misuse and panics.
func FillFloat[T constraints.Float](g Generator, dst []T, min, max T) {
	for i := range dst {
		dst[i] = T(g.NextFloat(float64(min), float64(max)))
	}
}

// Fill overwrites every element of dst with an independent uniform draw from
// [0, 1].
func Fill[T constraints.Float](g Generator, dst []T) {
	FillFloat(g, dst, 0, 1)
}

// Ints returns a slice of n independent uniform draws from [min, max].
func Ints[T constraints.Integer](g Generator, n int, min, max T) []T {
	out := make([]T, n)
	FillInt(g, out, min, max)
	return out
}

// Floats returns a slice of n independent uniform draws from [min, max].
func Floats[T constraints.Float](g Generator, n int, min, max T) []T {
	out := make([]T, n)
	FillFloat(g, out, min, max)
	return out
}
