package expr

import (
	"encoding/json"
	"fmt"
)

// CanonicalKey renders v as a comparable string. Maps are encoded with sorted
// keys, so structurally equal records produce equal keys, and numbers compare
// by value regardless of their decoded Go type.
func CanonicalKey(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cannot build key from %T: %w", v, err)
	}
	return string(b), nil
}

// KeySelector returns a selector computing the canonical key of p's result
// for each record. A nil program keys records by their own canonical value.
func KeySelector(p *Program) func(any) (string, error) {
	if p == nil {
		return CanonicalKey
	}
	return func(record any) (string, error) {
		v, err := p.Eval(record)
		if err != nil {
			return "", fmt.Errorf("%s: %w", p.Source(), err)
		}
		return CanonicalKey(v)
	}
}
