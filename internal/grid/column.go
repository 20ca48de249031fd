// Package grid implements the responsive column-visibility engine: it
// normalizes column configuration into numeric minimum widths and
// priorities, classifies terminal widths into breakpoints, and decides
// which columns stay visible under a given width budget. Everything in
// this package is pure computation; rendering lives in internal/ui.
package grid

import (
	"strconv"
	"strings"

	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/gridx/internal/render"
)

// NeverHide is the priority threshold at or above which a column is kept
// visible regardless of the available width budget.
const NeverHide = 10000

// RowIndexKey marks a column as the synthetic row-number column. Detail
// rows skip it; there is no point echoing the row number back at the user.
const RowIndexKey = "__row__"

// Descriptor is the caller-facing column configuration. Index is the
// stable identity used throughout the engine.
type Descriptor struct {
	Index            int
	Title            string
	DataKey          string
	DeclaredWidth    string // e.g. "12", "14ch", "96px"; empty = infer
	DeclaredPriority int    // responsive priority; 0 = infer, lower = shown first
	Orderable        bool
	ClassName        string          // style marker; a "center" marker affects the heuristics
	Render           render.CellFunc // optional custom cell renderer
}

// Entry is the resolved runtime form the calculator consumes.
type Entry struct {
	Index    int
	MinWidth int // resolved minimum width in terminal cells, always > 0
	Priority int // resolved priority, total order with index as tie-break
}

// Heuristics holds the tunable constants behind priority and width
// inference. The relative ordering of the effects is the contract
// (never-hide > centered > rendered > position > actions-hide-last);
// the specific numbers are policy and may be overridden via config.
type Heuristics struct {
	BaselinePriority     int `yaml:"baseline_priority"`
	CenteredBoost        int `yaml:"centered_boost"`          // subtracted: centered columns show sooner
	RenderedBoost        int `yaml:"rendered_boost"`          // subtracted: custom-rendered columns show a bit sooner
	ActionsPenalty       int `yaml:"actions_penalty"`         // added: non-orderable "actions" columns hide first
	PositionStep         int `yaml:"position_step"`           // added per position: later columns hide slightly sooner
	WidthPadding         int `yaml:"width_padding"`           // cells added around the title estimate
	WidthFloor           int `yaml:"width_floor"`             // absolute minimum cell width
	WidthCap             int `yaml:"width_cap"`               // inferred width cap on wide terminals
	NarrowWidthCap       int `yaml:"narrow_width_cap"`        // inferred width cap on narrow terminals
	CenteredWidthCap     int `yaml:"centered_width_cap"`      // lower cap for centered columns
	NonOrderableCapBoost int `yaml:"non_orderable_cap_boost"` // slightly higher cap for non-orderable columns
	NarrowViewport       int `yaml:"narrow_viewport"`         // terminal width at or below this counts as narrow
	CellsPerPx           int `yaml:"-"`                       // divisor for legacy "px" width hints
}

// DefaultHeuristics returns the stock tuning.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		BaselinePriority:     100,
		CenteredBoost:        30,
		RenderedBoost:        10,
		ActionsPenalty:       500,
		PositionStep:         2,
		WidthPadding:         2,
		WidthFloor:           3,
		WidthCap:             28,
		NarrowWidthCap:       16,
		CenteredWidthCap:     12,
		NonOrderableCapBoost: 4,
		NarrowViewport:       80,
		CellsPerPx:           8,
	}
}

// BuildModel resolves every descriptor into a runtime entry, in input
// order. viewportWidth feeds the width caps only; it does not decide
// visibility here. There are no error paths: malformed width hints fall
// back to inference.
func BuildModel(cols []Descriptor, viewportWidth int, h Heuristics) []Entry {
	entries := make([]Entry, len(cols))
	for i, c := range cols {
		entries[i] = Entry{
			Index:    c.Index,
			MinWidth: resolveWidth(c, viewportWidth, h),
			Priority: resolvePriority(c, h),
		}
	}
	return entries
}

func resolvePriority(c Descriptor, h Heuristics) int {
	if c.DeclaredPriority > 0 {
		return c.DeclaredPriority
	}

	// A non-orderable first column is assumed to be a row-number column
	// and is pinned visible.
	if c.Index == 0 && !c.Orderable {
		return NeverHide
	}

	score := h.BaselinePriority
	if isCentered(c.ClassName) {
		score -= h.CenteredBoost
	}
	if c.Render != nil {
		score -= h.RenderedBoost
	}
	if !c.Orderable && looksLikeActions(c.Title) {
		score += h.ActionsPenalty
	}
	score += h.PositionStep * c.Index

	if score < 1 {
		score = 1
	}
	return score
}

func resolveWidth(c Descriptor, viewportWidth int, h Heuristics) int {
	if w, ok := parseWidthHint(c.DeclaredWidth, h); ok {
		return w
	}

	label := c.Title
	if label == "" {
		label = c.DataKey
	}
	w := runewidth.StringWidth(label) + h.WidthPadding

	cap := h.WidthCap
	if viewportWidth > 0 && viewportWidth <= h.NarrowViewport {
		cap = h.NarrowWidthCap
	}
	if isCentered(c.ClassName) && h.CenteredWidthCap < cap {
		cap = h.CenteredWidthCap
	}
	if !c.Orderable {
		cap += h.NonOrderableCapBoost
	}

	if w > cap {
		w = cap
	}
	if w < h.WidthFloor {
		w = h.WidthFloor
	}
	return w
}

// parseWidthHint accepts "12", "12ch", or legacy "96px" hints. Anything
// that does not parse to a positive width is ignored.
func parseWidthHint(s string, h Heuristics) (int, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, false
	}
	px := false
	switch {
	case strings.HasSuffix(s, "px"):
		s, px = strings.TrimSuffix(s, "px"), true
	case strings.HasSuffix(s, "ch"):
		s = strings.TrimSuffix(s, "ch")
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	if px {
		n = n / h.CellsPerPx
		if n < 1 {
			n = 1
		}
	}
	return n, true
}

func isCentered(className string) bool {
	return strings.Contains(strings.ToLower(className), "center")
}

func looksLikeActions(title string) bool {
	return strings.Contains(strings.ToLower(title), "action")
}
