package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gridkit/pkg/column"
	"github.com/oakwood-commons/gridkit/pkg/style"
)

const layoutYAML = `name: orders
columns:
  - name: id
    type: number
  - name: state
    type: Status
  - name: note
    type: text
    width: auto
    scaled: true
  - name: amount
    type: currency
    width: 120
  - name: free
    width: none
`

func TestParseYAML(t *testing.T) {
	l, err := ParseYAML([]byte(layoutYAML))
	require.NoError(t, err)
	assert.Equal(t, "orders", l.Name)
	require.Len(t, l.Columns, 5)

	tests := []struct {
		idx  int
		want style.Config
	}{
		{0, style.Config{Type: column.Number}},
		{1, style.Config{Type: column.Status}},
		{2, style.Config{Type: column.Text, Width: style.Auto, Scaled: true}},
		{3, style.Config{Type: column.Currency, Width: style.Pixels(120)}},
		{4, style.Config{Width: style.None}},
	}
	for _, tt := range tests {
		t.Run(l.Columns[tt.idx].Name, func(t *testing.T) {
			got, err := l.Columns[tt.idx].StyleConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYAMLRejectsUnknownFields(t *testing.T) {
	_, err := ParseYAML([]byte("name: x\ncolums: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML layout")
}

func TestParseYAMLEmpty(t *testing.T) {
	l, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, l.Columns)
}

func TestValidateReportsEveryBadColumn(t *testing.T) {
	_, err := ParseYAML([]byte(`columns:
  - name: a
    type: money
  - name: b
    width: wide
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, column.ErrUnknownType)
	assert.ErrorIs(t, err, style.ErrInvalidWidth)
	assert.Contains(t, err.Error(), "columns[0] (a)")
	assert.Contains(t, err.Error(), "columns[1] (b)")
}

func TestParseTOML(t *testing.T) {
	l, err := ParseTOML([]byte(`name = "orders"

[[columns]]
name = "id"
type = "number"
width = 60

[[columns]]
name = "when"
type = "date"
width = "auto"
`))
	require.NoError(t, err)
	require.Len(t, l.Columns, 2)

	cfg, err := l.Columns[0].StyleConfig()
	require.NoError(t, err)
	assert.Equal(t, style.Config{Type: column.Number, Width: style.Pixels(60)}, cfg)

	cfg, err = l.Columns[1].StyleConfig()
	require.NoError(t, err)
	assert.Equal(t, style.Auto, cfg.Width)
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(layoutYAML), 0o600))
	l, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "orders", l.Name)

	tomlPath := filepath.Join(dir, "layout.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("name = \"t\"\n"), 0o600))
	l, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "t", l.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
