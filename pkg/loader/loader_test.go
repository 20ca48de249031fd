package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRows_JSONArray(t *testing.T) {
	rows, err := LoadRows(`[{"name":"ada","age":36},{"name":"grace","age":85}]`)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ada", rows[0]["name"])
	assert.Equal(t, "grace", rows[1]["name"])
}

func TestLoadRows_SingleJSONObject(t *testing.T) {
	rows, err := LoadRows(`{"name":"ada"}`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ada", rows[0]["name"])
}

func TestLoadRows_NDJSON(t *testing.T) {
	input := `{"name":"ada"}
{"name":"grace"}
{"name":"margaret"}`
	rows, err := LoadRows(input)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "margaret", rows[2]["name"])
}

func TestLoadRows_NDJSONInvalidLine(t *testing.T) {
	input := `{"name":"ada"}
{broken`
	_, err := LoadRows(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadRows_YAMLList(t *testing.T) {
	input := `
- name: ada
  age: 36
- name: grace
  age: 85
`
	rows, err := LoadRows(input)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ada", rows[0]["name"])
	assert.Equal(t, 85, rows[1]["age"])
}

func TestLoadRows_MultiDocYAML(t *testing.T) {
	input := `---
name: ada
---
name: grace
`
	rows, err := LoadRows(input)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "grace", rows[1]["name"])
}

func TestLoadRows_YAMLNamedCollection(t *testing.T) {
	input := `
users:
  - name: ada
  - name: grace
`
	rows, err := LoadRows(input)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ada", rows[0]["name"])
}

func TestLoadRows_TOMLArrayOfTables(t *testing.T) {
	input := `
[[users]]
name = "ada"

[[users]]
name = "grace"
`
	rows, err := LoadRows(input)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "grace", rows[1]["name"])
}

func TestLoadRows_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"scalar", "42"},
		{"array of scalars", "[1, 2, 3]"},
		{"invalid JSON", "{broken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRows(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestLoadRowsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1}]`), 0o644))

	rows, err := LoadRowsFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = LoadRowsFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
