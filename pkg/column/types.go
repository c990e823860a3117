// Package column defines the closed set of column types recognized by the
// grid, classifies cells by type, and maps types to default display widths.
package column

import (
	"errors"
	"fmt"
	"strings"
)

// Type is the tag describing how a column's values are interpreted and rendered.
type Type string

const (
	Text     Type = "text"
	Number   Type = "number"
	Boolean  Type = "boolean"
	Date     Type = "date"
	Time     Type = "time"
	Timespan Type = "timespan"
	Checkbox Type = "checkbox"
	Status   Type = "status"
	Enum     Type = "enum"
	Currency Type = "currency"
)

// ErrUnknownType is returned by ParseType for names outside the registry.
var ErrUnknownType = errors.New("unknown column type")

var registry = []Type{Text, Number, Boolean, Date, Time, Timespan, Checkbox, Status, Enum, Currency}

// Types returns every recognized column type in declaration order.
// The returned slice is a copy and may be modified by the caller.
func Types() []Type {
	out := make([]Type, len(registry))
	copy(out, registry)
	return out
}

// Valid reports whether t is one of the recognized column types.
func (t Type) Valid() bool {
	for _, r := range registry {
		if r == t {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// ParseType normalizes s (trimmed, lower-cased) and returns the matching Type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownType, s)
	}
	return t, nil
}
