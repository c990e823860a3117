// Package style derives inline min/max width rules for grid header and cell
// elements from a column's width configuration.
package style

import (
	"strconv"
	"strings"

	"github.com/oakwood-commons/gridkit/pkg/column"
)

// Config is the width-related part of a column's configuration.
type Config struct {
	Width  Width
	Type   column.Type
	Scaled bool // scaled columns may grow past their width
}

// Style holds inline width rules. Empty fields mean "no rule".
type Style struct {
	MinWidth string `json:"minWidth,omitempty" yaml:"minWidth,omitempty"`
	MaxWidth string `json:"maxWidth,omitempty" yaml:"maxWidth,omitempty"`
}

// IsEmpty reports whether the style carries no width rule.
func (s Style) IsEmpty() bool {
	return s.MinWidth == "" && s.MaxWidth == ""
}

// Element is the style surface of a header or cell element.
// Setting a property to "" clears any previous inline value.
type Element interface {
	SetMinWidth(string)
	SetMaxWidth(string)
}

// Compute resolves cfg's width and returns the inline style together with the
// resolved width. cfg is not modified.
func Compute(cfg Config) (Style, Width) {
	w := cfg.Width
	if w.NeedsDefault() {
		w = Pixels(column.DefaultWidth(cfg.Type))
	}
	if w.Mode == WidthNone {
		return Style{}, w
	}

	px := strconv.Itoa(w.Pixels) + "px"
	if cfg.Scaled {
		return Style{MinWidth: px}, w
	}
	return Style{MinWidth: px, MaxWidth: px}, w
}

// Inline computes the style, stores the resolved width back into c, and
// applies the style to el when el is non-nil.
func (c *Config) Inline(el Element) Style {
	s, w := Compute(*c)
	c.Width = w
	if el != nil {
		Apply(s, el)
	}
	return s
}

// Apply writes both width properties of s onto el, clearing those s leaves empty.
func Apply(s Style, el Element) {
	el.SetMinWidth(s.MinWidth)
	el.SetMaxWidth(s.MaxWidth)
}

// InlineStyle is an in-memory Element that renders as CSS declarations.
type InlineStyle struct {
	MinWidth string
	MaxWidth string
}

func (is *InlineStyle) SetMinWidth(v string) { is.MinWidth = v }

func (is *InlineStyle) SetMaxWidth(v string) { is.MaxWidth = v }

// String renders the set properties, e.g. "min-width: 20px; max-width: 20px".
func (is *InlineStyle) String() string {
	decls := make([]string, 0, 2)
	if is.MinWidth != "" {
		decls = append(decls, "min-width: "+is.MinWidth)
	}
	if is.MaxWidth != "" {
		decls = append(decls, "max-width: "+is.MaxWidth)
	}
	return strings.Join(decls, "; ")
}
