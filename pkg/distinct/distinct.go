// Package distinct removes duplicate elements from slices while keeping the
// order in which elements first appear.
package distinct

import (
	"errors"
	"fmt"
	"math"
)

// ErrSelector is wrapped by every error returned from By when the key
// selector fails.
var ErrSelector = errors.New("distinct: selector failed")

// Values returns the distinct elements of items in first-occurrence order.
// Equality is Go's == for T: pointers compare by identity and NaN never
// equals itself, so every NaN is kept.
func Values[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// By returns the elements of items whose selector key has not been seen
// before, in first-occurrence order. Floating-point NaN keys are all equal to
// one another, so only the first item keyed by NaN is kept. If the selector
// returns an error or
// panics for any element, By returns a nil slice and an error wrapping
// ErrSelector.
func By[T any, K comparable](items []T, selector func(T) (K, error)) (out []T, err error) {
	if selector == nil {
		return nil, fmt.Errorf("%w: nil selector", ErrSelector)
	}

	i := 0
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: item %d: %v", ErrSelector, i, r)
		}
	}()

	seen := make(map[K]struct{}, len(items))
	seenNaN := false
	out = make([]T, 0, len(items))
	for ; i < len(items); i++ {
		key, kerr := selector(items[i])
		if kerr != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrSelector, i, kerr)
		}
		if isNaN(key) {
			if seenNaN {
				continue
			}
			seenNaN = true
			out = append(out, items[i])
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, items[i])
	}
	return out, nil
}

func isNaN(v any) bool {
	switch f := v.(type) {
	case float64:
		return math.IsNaN(f)
	case float32:
		return math.IsNaN(float64(f))
	default:
		return false
	}
}

// Key adapts an infallible key function for use with By.
func Key[T any, K comparable](fn func(T) K) func(T) (K, error) {
	return func(v T) (K, error) {
		return fn(v), nil
	}
}
