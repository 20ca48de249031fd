// Package datagrid is the embeddable entry point for the responsive grid
// widget. Host applications hand it rows (or raw input for the auto-detecting
// loader) and get an interactive Bubble Tea table whose columns hide and
// reappear as the terminal is resized, with expandable detail rows exposing
// the hidden values.
package datagrid

import (
	"io"
	"os"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"
	"golang.org/x/term"

	"github.com/oakwood-commons/gridx/internal/grid"
	"github.com/oakwood-commons/gridx/internal/pager"
	"github.com/oakwood-commons/gridx/internal/render"
	"github.com/oakwood-commons/gridx/internal/ui"
	"github.com/oakwood-commons/gridx/pkg/loader"
)

// defaultFallbackTermWidth is used when terminal size cannot be detected.
const defaultFallbackTermWidth = 120

// Config controls a grid instance. The zero value is usable.
type Config struct {
	// Columns overrides schema inference. Leave empty to infer descriptors
	// from the row keys.
	Columns []Column

	// RowNumbers prepends a synthetic "#" column.
	RowNumbers bool

	// SelectionColumn controls the leading selection/toggle column. Nil
	// means enabled; without it detail rows have no toggle to live in.
	SelectionColumn *bool

	// Theme names a built-in palette (dark, light, mono).
	Theme string

	// NoColor disables all styling.
	NoColor bool

	// Width and Height force dimensions for snapshot rendering. Zero means
	// detect from the terminal.
	Width  int
	Height int

	// ReflowDebounceMs and SearchDebounceMs override the debounce delays.
	ReflowDebounceMs int
	SearchDebounceMs int

	// Heuristics overrides the column scoring constants.
	Heuristics *grid.Heuristics

	// Breakpoints overrides the breakpoint table.
	Breakpoints []ui.BreakpointConfig

	// Pager configures pagination (limit/offset/tail).
	Pager pager.Config

	// OnBreakpointChange is invoked when a recomputation lands on a new
	// breakpoint tier.
	OnBreakpointChange func(name string, res Result)

	// Logger receives structured diagnostics. Nil discards them.
	Logger *logr.Logger
}

// Column is the caller-facing column descriptor.
type Column struct {
	Title     string
	DataKey   string
	Width     string // e.g. "12", "14ch", "96px"; empty uses the heuristic
	Priority  int    // 0 uses the heuristic; >= grid.NeverHide pins the column
	Orderable bool
	ClassName string
	Render    func(value any, ctx Context) string
}

// Context is re-exported so callers can write render functions without
// importing internal packages.
type Context struct {
	Row      map[string]any
	RowIndex int
	DataKey  string
}

// NeverHide is the priority sentinel above which a column is never hidden.
const NeverHide = grid.NeverHide

// Result is the visible/hidden partition of column indices, aliased so
// callers can write breakpoint callbacks without importing internals.
type Result = grid.Result

// LoadRows parses raw input (JSON, NDJSON, YAML or TOML, auto-detected)
// into grid rows.
func LoadRows(input string) ([]map[string]any, error) {
	return loader.LoadRows(input)
}

// LoadRowsFile reads and parses a file; "-" reads stdin.
func LoadRowsFile(path string) ([]map[string]any, error) {
	return loader.LoadRowsFile(path)
}

// Run starts the interactive grid over the given rows and blocks until the
// user quits.
func Run(rows []map[string]any, cfg Config, opts ...tea.ProgramOption) error {
	m, err := newModel(rows, cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, opts...).Run()
	return err
}

// RenderSnapshot renders the grid once at the configured (or detected)
// dimensions and returns it as a string, for non-interactive use.
func RenderSnapshot(rows []map[string]any, cfg Config) (string, error) {
	m, err := newModel(rows, cfg)
	if err != nil {
		return "", err
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		dw, dh := DetectTerminalSize()
		if width <= 0 {
			width = dw
		}
		if height <= 0 {
			height = dh
		}
	}
	return m.Snapshot(width, height), nil
}

func newModel(rows []map[string]any, cfg Config) (*ui.Model, error) {
	uiCfg := ui.Config{
		Theme:            cfg.Theme,
		RowNumbers:       cfg.RowNumbers,
		ReflowDebounceMs: cfg.ReflowDebounceMs,
		SearchDebounceMs: cfg.SearchDebounceMs,
		Heuristics:       cfg.Heuristics,
		Breakpoints:      cfg.Breakpoints,
	}
	uiCfg.Normalize()

	if err := ui.SetThemeByName(uiCfg.Theme); err != nil {
		return nil, err
	}

	cols := descriptors(cfg.Columns, rows)
	if cfg.RowNumbers {
		cols = grid.WithRowNumbers(cols)
	}

	m := ui.New(cols, rows, uiCfg, cfg.Logger)
	m.SetNoColor(cfg.NoColor)
	if cfg.SelectionColumn != nil {
		m.SetSelectionColumn(*cfg.SelectionColumn)
	}
	if cfg.OnBreakpointChange != nil {
		m.SetBreakpointCallback(cfg.OnBreakpointChange)
	}
	if cfg.Pager.IsActive() {
		m.SetPager(cfg.Pager)
	}
	return m, nil
}

func descriptors(cols []Column, rows []map[string]any) []grid.Descriptor {
	if len(cols) == 0 {
		return grid.InferDescriptors(rows)
	}
	out := make([]grid.Descriptor, len(cols))
	for i, c := range cols {
		d := grid.Descriptor{
			Index:            i,
			Title:            c.Title,
			DataKey:          c.DataKey,
			DeclaredWidth:    c.Width,
			DeclaredPriority: c.Priority,
			Orderable:        c.Orderable,
			ClassName:        c.ClassName,
		}
		if c.Render != nil {
			fn := c.Render
			d.Render = func(value any, ctx render.Context) string {
				return fn(value, Context(ctx))
			}
		}
		out[i] = d
	}
	return out
}

// DetectTerminalSize returns the best-effort terminal width and height by
// probing stdout, stderr and stdin, then the COLUMNS environment variable.
// Failing everything, generous defaults keep non-TTY output readable.
func DetectTerminalSize() (width int, height int) {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, h, err := term.GetSize(int(fd)); err == nil && (w > 0 || h > 0) {
			return w, h
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w, 24
		}
	}
	return defaultFallbackTermWidth, 24
}

// WithIO returns tea.ProgramOptions for custom input/output streams.
func WithIO(in io.Reader, out io.Writer) []tea.ProgramOption {
	opts := []tea.ProgramOption{}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	return opts
}
