// Package compare provides composable total-order comparators used by the
// domain model for natural ordering. A comparator returns a negative value,
// zero, or a positive value, in the usual convention.
//
// Optional fields participate in ordering through an explicit rule rather
// than language null semantics: absent orders before present. This keeps
// composed orders total and transitive.
package compare

import (
	"cmp"
	"time"
)

// Func is a total order over T.
type Func[T any] func(a, b T) int

// Chain composes comparators into a multi-key order: each comparator is
// consulted in turn until one breaks the tie.
func Chain[T any](fns ...Func[T]) Func[T] {
	return func(a, b T) int {
		for _, fn := range fns {
			if c := fn(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// On derives a comparator from an ordered key extractor.
func On[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// By derives a comparator from a key extractor and a comparator over the key.
func By[T, K any](key func(T) K, fn Func[K]) Func[T] {
	return func(a, b T) int {
		return fn(key(a), key(b))
	}
}

// Reverse inverts a comparator.
func Reverse[T any](fn Func[T]) Func[T] {
	return func(a, b T) int {
		return fn(b, a)
	}
}

// Times orders time values chronologically.
func Times(a, b time.Time) int {
	return a.Compare(b)
}

// Optional lifts a comparator over pointers: nil orders before non-nil, two
// nils compare equal.
func Optional[T any](fn Func[T]) Func[*T] {
	return func(a, b *T) int {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		case b == nil:
			return 1
		default:
			return fn(*a, *b)
		}
	}
}

// OptionalTimes is Optional(Times), spelled out for the common case.
func OptionalTimes(a, b *time.Time) int {
	return Optional(Times)(a, b)
}
