// Package loader is the grid's data-source collaborator: it parses
// structured input into data rows, auto-detecting the format.
//
// Supported formats:
//   - single JSON object or array
//   - newline-delimited JSON (NDJSON): one JSON object per line
//   - YAML: single document, document list, or multi-document (---)
//   - TOML: a table, or a table holding one array of tables
//
// All formats normalize to []map[string]any, one element per data row.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadRows parses input into data rows, auto-detecting the format.
func LoadRows(input string) ([]map[string]any, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	docs, err := loadDocs(input)
	if err != nil {
		return nil, err
	}
	return normalizeRows(docs)
}

// LoadRowsFile reads a file (or stdin for "-") and parses it into rows.
func LoadRowsFile(path string) ([]map[string]any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return LoadRows(string(data))
}

// loadDocs splits the input into one or more decoded documents.
func loadDocs(input string) ([]any, error) {
	// Multi-document YAML first (most restrictive marker).
	if strings.Contains(input, "\n---") || strings.HasPrefix(input, "---") {
		return loadMultiDocYAML(input)
	}

	// Newline-delimited JSON: multiple lines, majority JSON-shaped.
	lines := strings.Split(input, "\n")
	if len(lines) > 1 && isLikelyNDJSON(lines) {
		return loadNDJSON(input)
	}

	// TOML before JSON: "[server]" headers look like JSON arrays but are
	// distinct from "[1, 2, 3]".
	if isLikelyTOML(input) {
		return loadTOML(input)
	}

	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		return loadJSON(input)
	}

	return loadYAML(input)
}

// normalizeRows flattens decoded documents into data rows. Arrays are
// expanded, objects become single rows, and anything else is rejected:
// a grid needs records, not scalars.
func normalizeRows(docs []any) ([]map[string]any, error) {
	var rows []map[string]any
	for _, doc := range docs {
		switch v := doc.(type) {
		case []any:
			for i, elem := range v {
				row, ok := asRow(elem)
				if !ok {
					return nil, fmt.Errorf("element %d is not an object (got %T)", i, elem)
				}
				rows = append(rows, row)
			}
		default:
			row, ok := asRow(doc)
			if !ok {
				return nil, fmt.Errorf("input is not an object or array of objects (got %T)", doc)
			}
			// A TOML/YAML table holding exactly one array of objects is
			// treated as a named row collection, e.g. [[users]].
			if inner, ok := singleArrayOfObjects(row); ok {
				rows = append(rows, inner...)
				continue
			}
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data rows found in input")
	}
	return rows, nil
}

func asRow(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func singleArrayOfObjects(row map[string]any) ([]map[string]any, bool) {
	if len(row) != 1 {
		return nil, false
	}
	for _, v := range row {
		arr, ok := v.([]any)
		if !ok || len(arr) == 0 {
			return nil, false
		}
		rows := make([]map[string]any, 0, len(arr))
		for _, elem := range arr {
			m, ok := asRow(elem)
			if !ok {
				return nil, false
			}
			rows = append(rows, m)
		}
		return rows, true
	}
	return nil, false
}

func loadJSON(input string) ([]any, error) {
	var data any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return []any{data}, nil
}

func loadYAML(input string) ([]any, error) {
	var data any
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return []any{data}, nil
}

func loadMultiDocYAML(input string) ([]any, error) {
	var results []any
	decoder := yaml.NewDecoder(strings.NewReader(input))
	for {
		var doc any
		if err := decoder.Decode(&doc); err != nil {
			if err == io.EOF || err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("invalid multi-document YAML: %w", err)
		}
		if doc != nil {
			results = append(results, doc)
		}
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no documents found in multi-document YAML")
	}
	return results, nil
}

func loadNDJSON(input string) ([]any, error) {
	lines := strings.Split(input, "\n")
	results := make([]any, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var obj any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			return nil, fmt.Errorf("invalid JSON on line %d: %w", i+1, err)
		}
		results = append(results, obj)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no data found in input")
	}
	return results, nil
}

func loadTOML(input string) ([]any, error) {
	var data any
	if err := toml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return []any{data}, nil
}

// isLikelyNDJSON: a majority of non-empty lines must start with '{' or
// '[' so YAML list items don't get misclassified.
func isLikelyNDJSON(lines []string) bool {
	jsonCount := 0
	nonEmptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmptyCount++
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			jsonCount++
		}
	}
	return nonEmptyCount > 1 && jsonCount > nonEmptyCount/2
}

var (
	// TOML section headers: [server], [[items]], [database.credentials].
	tomlSectionPattern = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	// TOML key = value (not key: value, which is YAML).
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

func isLikelyTOML(input string) bool {
	lines := strings.Split(input, "\n")
	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++
		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}
	if sectionCount > 0 {
		return true
	}
	return nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2
}
