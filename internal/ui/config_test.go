package ui

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridx/internal/grid"
)

func TestConfigNormalizeDefaults(t *testing.T) {
	var c Config
	c.Normalize()
	if c.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", c.Theme)
	}
	if c.ReflowDebounceMs != DefaultReflowDebounceMs {
		t.Errorf("ReflowDebounceMs = %d, want %d", c.ReflowDebounceMs, DefaultReflowDebounceMs)
	}
	if c.SearchDebounceMs != DefaultSearchDebounceMs {
		t.Errorf("SearchDebounceMs = %d, want %d", c.SearchDebounceMs, DefaultSearchDebounceMs)
	}
}

func TestConfigNormalizeKeepsExplicitValues(t *testing.T) {
	c := Config{Theme: "mono", ReflowDebounceMs: 50, SearchDebounceMs: 10}
	c.Normalize()
	if c.Theme != "mono" || c.ReflowDebounceMs != 50 || c.SearchDebounceMs != 10 {
		t.Errorf("Normalize() clobbered explicit values: %+v", c)
	}
}

func TestBreakpointTableFromConfig(t *testing.T) {
	c := Config{Breakpoints: []BreakpointConfig{
		{Name: "desktop", Max: 0}, // unbounded, listed first on purpose
		{Name: "mobile", Max: 480},
		{Name: "tablet", Max: 1024},
	}}
	table := c.BreakpointTable()

	if got := table.Resolve(300); got != "mobile" {
		t.Errorf("Resolve(300) = %q, want mobile", got)
	}
	if got := table.Resolve(500); got != "tablet" {
		t.Errorf("Resolve(500) = %q, want tablet", got)
	}
	if got := table.Resolve(5000); got != "desktop" {
		t.Errorf("Resolve(5000) = %q, want desktop", got)
	}
}

func TestBreakpointTableEmptyUsesDefault(t *testing.T) {
	var c Config
	table := c.BreakpointTable()
	if got := table.Resolve(60); got != "compact" {
		t.Errorf("Resolve(60) = %q, want compact", got)
	}
}

func TestGridHeuristicsOverride(t *testing.T) {
	h := grid.DefaultHeuristics()
	h.BaselinePriority = 7
	c := Config{Heuristics: &h}
	if got := c.GridHeuristics().BaselinePriority; got != 7 {
		t.Errorf("BaselinePriority = %d, want 7", got)
	}

	var def Config
	if got := def.GridHeuristics(); got != grid.DefaultHeuristics() {
		t.Errorf("unset heuristics should fall back to defaults, got %+v", got)
	}
}

func TestConfigYAMLRoundTrip(t *testing.T) {
	in := []byte(`
theme: light
row_numbers: true
reflow_debounce_ms: 80
breakpoints:
  - name: small
    max: 60
  - name: large
    max: 0
`)
	var c Config
	if err := yaml.Unmarshal(in, &c); err != nil {
		t.Fatalf("yaml.Unmarshal() error: %v", err)
	}
	c.Normalize()
	if c.Theme != "light" || !c.RowNumbers || c.ReflowDebounceMs != 80 {
		t.Errorf("unexpected config: %+v", c)
	}
	if got := c.BreakpointTable().Resolve(100); got != "large" {
		t.Errorf("Resolve(100) = %q, want large", got)
	}
}
