// Package config loads grid layout files (YAML or TOML) and resolves them into
// style configurations.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridkit/pkg/column"
	"github.com/oakwood-commons/gridkit/pkg/style"
)

// Load reads a layout file. Files ending in .toml are parsed as TOML,
// everything else as YAML.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a YAML layout, rejecting unknown fields.
func ParseYAML(data []byte) (Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && !errors.Is(err, io.EOF) {
		return Layout{}, fmt.Errorf("invalid YAML layout: %w", err)
	}
	return l, l.Validate()
}

// ParseTOML decodes a TOML layout, rejecting unknown fields.
func ParseTOML(data []byte) (Layout, error) {
	var l Layout
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("invalid TOML layout: %w", err)
	}
	return l, l.Validate()
}

// Validate checks every column's type and width.
func (l Layout) Validate() error {
	var errs []error
	for i, c := range l.Columns {
		if _, err := c.StyleConfig(); err != nil {
			errs = append(errs, fmt.Errorf("columns[%d] (%s): %w", i, c.Name, err))
		}
	}
	return errors.Join(errs...)
}

// StyleConfig converts the column into a style configuration. An empty type
// is allowed and falls back to the default width.
func (c Column) StyleConfig() (style.Config, error) {
	var cfg style.Config
	if strings.TrimSpace(c.Type) != "" {
		t, err := column.ParseType(c.Type)
		if err != nil {
			return cfg, err
		}
		cfg.Type = t
	}
	w, err := style.ParseWidth(c.Width)
	if err != nil {
		return cfg, err
	}
	cfg.Width = w
	cfg.Scaled = c.Scaled
	return cfg, nil
}
