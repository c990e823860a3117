// Package loader reads record lists from JSON, NDJSON, YAML (single or
// multi-document) and TOML input, auto-detecting the format.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrEmptyInput is returned when the input holds no documents.
var ErrEmptyInput = errors.New("empty input")

// Format names a supported input encoding.
type Format string

const (
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
)

var (
	tomlSection  = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	tomlKeyValue = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// Detect guesses the format of input.
func Detect(input string) Format {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "---") || strings.Contains(input, "\n---") {
		return FormatYAML
	}
	lines := strings.Split(input, "\n")
	if len(lines) > 1 && isLikelyNDJSON(lines) {
		return FormatNDJSON
	}
	// TOML [section] headers look like JSON arrays, so check TOML first.
	if isLikelyTOML(lines) {
		return FormatTOML
	}
	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		return FormatJSON
	}
	return FormatYAML
}

// FormatFromPath maps a file extension to a Format. ok is false for unknown extensions.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".ndjson", ".jsonl":
		return FormatNDJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

// Documents parses input in the given format and returns one element per
// document. An empty format auto-detects.
func Documents(input string, format Format) ([]any, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}
	if format == "" {
		format = Detect(input)
	}

	switch format {
	case FormatJSON:
		var doc any
		if err := json.Unmarshal([]byte(input), &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return []any{doc}, nil
	case FormatNDJSON:
		return loadNDJSON(input)
	case FormatTOML:
		var doc map[string]any
		if err := toml.Unmarshal([]byte(input), &doc); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
		return []any{doc}, nil
	case FormatYAML:
		return loadYAML(input)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Records parses input and flattens it into a record list. A single document
// that is a list yields its elements; a single TOML/JSON/YAML table whose only
// value is a list (e.g. [[items]]) yields that list; otherwise every document
// is one record.
func Records(input string, format Format) ([]any, error) {
	docs, err := Documents(input, format)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return docs, nil
	}
	switch doc := docs[0].(type) {
	case []any:
		return doc, nil
	case map[string]any:
		if len(doc) == 1 {
			for _, v := range doc {
				if list, ok := v.([]any); ok {
					return list, nil
				}
			}
		}
	}
	return docs, nil
}

// ReadRecords reads all of r and parses it with Records.
func ReadRecords(r io.Reader, format Format) ([]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Records(string(data), format)
}

// LoadFile reads path and parses it with Records, using the file extension to
// choose the format when it is recognized.
func LoadFile(path string) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format, _ := FormatFromPath(path)
	return ReadRecords(f, format)
}

func loadYAML(input string) ([]any, error) {
	var docs []any
	dec := yaml.NewDecoder(strings.NewReader(input))
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		if doc != nil {
			docs = append(docs, doc)
		}
	}
	if len(docs) == 0 {
		return nil, ErrEmptyInput
	}
	return docs, nil
}

// loadNDJSON parses one JSON value per line. Lines that are not JSON are kept
// as plain strings.
func loadNDJSON(input string) ([]any, error) {
	lines := strings.Split(input, "\n")
	docs := make([]any, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var doc any
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			docs = append(docs, line)
			continue
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, ErrEmptyInput
	}
	return docs, nil
}

// isLikelyNDJSON requires several non-empty lines, most of them starting like
// a JSON object or array.
func isLikelyNDJSON(lines []string) bool {
	jsonCount, nonEmpty := 0, 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			jsonCount++
		}
	}
	return nonEmpty > 1 && jsonCount > nonEmpty/2
}

// isLikelyTOML looks for section headers or a majority of key = value lines.
func isLikelyTOML(lines []string) bool {
	sections, pairs, nonEmpty := 0, 0, 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmpty++
		if tomlSection.MatchString(line) {
			sections++
		}
		if tomlKeyValue.MatchString(line) {
			pairs++
		}
	}
	return sections > 0 || (nonEmpty > 0 && pairs > nonEmpty/2)
}
