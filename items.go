package randsource

import "fmt"

// ErrEmptyContainer indicates a selection from, or into, a container with no
// elements
type ErrEmptyContainer struct {
	Container string
}

// Error yields the error message for ErrEmptyContainer
func (e ErrEmptyContainer) Error() string {
	return fmt.Sprintf("cannot select over empty container: container=%s", e.Container)
}

// Shuffle permutes list in place such that every ordering of its elements is
// equally likely.
func Shuffle[T any](g Generator, list []T) {
	g.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
}

// Item returns one uniformly selected element of src. Selection is with
// replacement: src is never mutated, and repeated calls may return the same
// element. An empty src yields ErrEmptyContainer.
func Item[T any](g Generator, src []T) (T, error) {
	if len(src) == 0 {
		var zero T
		return zero, ErrEmptyContainer{"source"}
	}
	return src[g.Next(len(src)-1)], nil
}

// Items returns count elements selected uniformly from src with replacement.
// count may exceed len(src); duplicates are expected. An empty src yields
// ErrEmptyContainer; count <= 0 yields an empty result.
func Items[T any](g Generator, src []T, count int) ([]T, error) {
	if len(src) == 0 {
		return nil, ErrEmptyContainer{"source"}
	}
	if count < 0 {
		count = 0
	}
	out := make([]T, count)
	for i := range out {
		out[i] = src[g.Next(len(src)-1)]
	}
	return out, nil
}

// ItemsInto overwrites every element of dst with a uniform selection from src,
// with replacement. It fails with ErrEmptyContainer before touching dst when
// src is empty, and when dst is empty.
func ItemsInto[T any](g Generator, src, dst []T) error {
	if len(src) == 0 {
		return ErrEmptyContainer{"source"}
	}
	if len(dst) == 0 {
		return ErrEmptyContainer{"destination"}
	}
	for i := range dst {
		dst[i] = src[g.Next(len(src)-1)]
	}
	return nil
}
