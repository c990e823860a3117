package style

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidWidth is returned by ParseWidth for values it cannot interpret.
var ErrInvalidWidth = errors.New("invalid column width")

// MaxPixels is the largest pixel count ParseWidth accepts.
const MaxPixels = math.MaxInt32

// WidthMode says how a column's configured width should be interpreted.
type WidthMode int

const (
	// WidthUnset means no width was configured; the type default applies.
	WidthUnset WidthMode = iota
	// WidthAuto asks for the type default explicitly.
	WidthAuto
	// WidthNone disables width constraints entirely.
	WidthNone
	// WidthPixels pins the width to Width.Pixels.
	WidthPixels
)

// Width is a column's configured width. The zero value is unset.
type Width struct {
	Mode   WidthMode
	Pixels int
}

// Auto is the width that resolves to the column type's default.
var Auto = Width{Mode: WidthAuto}

// None is the width that produces no constraints.
var None = Width{Mode: WidthNone}

// Pixels returns a fixed pixel width.
func Pixels(n int) Width {
	return Width{Mode: WidthPixels, Pixels: n}
}

// NeedsDefault reports whether the width is replaced by the type default:
// unset, auto, or a zero pixel count.
func (w Width) NeedsDefault() bool {
	switch w.Mode {
	case WidthUnset, WidthAuto:
		return true
	case WidthPixels:
		return w.Pixels == 0
	default:
		return false
	}
}

func (w Width) String() string {
	switch w.Mode {
	case WidthAuto:
		return "auto"
	case WidthNone:
		return "none"
	case WidthPixels:
		return strconv.Itoa(w.Pixels) + "px"
	default:
		return ""
	}
}

// ParseWidth interprets a loosely typed width value as found in configuration
// files and flags. nil and "" are unset, "auto" and "none" are keywords, and
// numbers or numeric strings (optionally suffixed with "px") are pixel counts.
func ParseWidth(v any) (Width, error) {
	switch x := v.(type) {
	case nil:
		return Width{}, nil
	case Width:
		return x, nil
	case int:
		return pixelCount(int64(x))
	case int64:
		return pixelCount(x)
	case uint64:
		if x > MaxPixels {
			return Width{}, fmt.Errorf("%w: %d exceeds %d pixels", ErrInvalidWidth, x, MaxPixels)
		}
		return Pixels(int(x)), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return Width{}, fmt.Errorf("%w: %v is not a whole pixel count", ErrInvalidWidth, x)
		}
		if x < 0 || x > MaxPixels {
			return Width{}, fmt.Errorf("%w: %v is outside 0..%d pixels", ErrInvalidWidth, x, MaxPixels)
		}
		return Pixels(int(x)), nil
	case string:
		return parseWidthString(x)
	default:
		return Width{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidWidth, v)
	}
}

func parseWidthString(s string) (Width, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return Width{}, nil
	case "auto":
		return Auto, nil
	case "none", "null":
		return None, nil
	}
	n, err := strconv.ParseInt(strings.TrimSuffix(s, "px"), 10, 64)
	if err != nil {
		return Width{}, fmt.Errorf("%w: %q", ErrInvalidWidth, s)
	}
	return pixelCount(n)
}

func pixelCount(n int64) (Width, error) {
	if n < 0 || n > MaxPixels {
		return Width{}, fmt.Errorf("%w: %d is outside 0..%d pixels", ErrInvalidWidth, n, MaxPixels)
	}
	return Pixels(int(n)), nil
}
