package config

// Layout describes the columns of one grid as stored in a layout file.
type Layout struct {
	Name    string   `yaml:"name" toml:"name"`
	Columns []Column `yaml:"columns" toml:"columns"`
}

// Column is one column entry of a layout file. Width is kept loosely typed
// so that both `width: 120` and `width: auto` are accepted.
type Column struct {
	Name   string `yaml:"name" toml:"name"`
	Type   string `yaml:"type" toml:"type"`
	Width  any    `yaml:"width" toml:"width"`
	Scaled bool   `yaml:"scaled" toml:"scaled"`
}
