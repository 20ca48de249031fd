package ui

import (
	"sort"

	"github.com/oakwood-commons/gridx/internal/grid"
)

// Debounce defaults, in milliseconds.
const (
	DefaultReflowDebounceMs = 120
	DefaultSearchDebounceMs = 200
)

// Config is the YAML-backed UI configuration. Zero values fall back to the
// defaults at load time, so a partial config file is fine.
type Config struct {
	Theme            string             `yaml:"theme"`
	RowNumbers       bool               `yaml:"row_numbers"`
	ReflowDebounceMs int                `yaml:"reflow_debounce_ms"`
	SearchDebounceMs int                `yaml:"search_debounce_ms"`
	Heuristics       *grid.Heuristics   `yaml:"heuristics"`
	Breakpoints      []BreakpointConfig `yaml:"breakpoints"`
}

// BreakpointConfig is one tier in the config file. Max 0 or negative means
// unbounded; the loader ensures the widest tier always is.
type BreakpointConfig struct {
	Name string `yaml:"name"`
	Max  int    `yaml:"max"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Theme:            "dark",
		ReflowDebounceMs: DefaultReflowDebounceMs,
		SearchDebounceMs: DefaultSearchDebounceMs,
	}
}

// Normalize fills zero-valued fields with defaults.
func (c *Config) Normalize() {
	if c.Theme == "" {
		c.Theme = "dark"
	}
	if c.ReflowDebounceMs <= 0 {
		c.ReflowDebounceMs = DefaultReflowDebounceMs
	}
	if c.SearchDebounceMs <= 0 {
		c.SearchDebounceMs = DefaultSearchDebounceMs
	}
}

// GridHeuristics returns the configured heuristics, or the defaults.
func (c Config) GridHeuristics() grid.Heuristics {
	if c.Heuristics != nil {
		return *c.Heuristics
	}
	return grid.DefaultHeuristics()
}

// BreakpointTable converts the configured tiers to a resolver table, sorted
// ascending with an unbounded last tier. An empty config yields the default
// table.
func (c Config) BreakpointTable() grid.Table {
	if len(c.Breakpoints) == 0 {
		return grid.DefaultTable()
	}
	t := make(grid.Table, 0, len(c.Breakpoints))
	for _, bp := range c.Breakpoints {
		max := bp.Max
		if max <= 0 {
			max = grid.Unbounded
		}
		t = append(t, grid.Tier{Name: bp.Name, Max: max})
	}
	// keep tiers in ascending bound order regardless of file order
	sort.SliceStable(t, func(i, j int) bool { return t[i].Max < t[j].Max })
	return t
}
