package ui

import (
	"encoding/json"
	"sort"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/gridx/internal/filter"
	"github.com/oakwood-commons/gridx/internal/grid"
	"github.com/oakwood-commons/gridx/internal/pager"
	"github.com/oakwood-commons/gridx/internal/render"
	"github.com/oakwood-commons/gridx/pkg/logger"
)

// ReflowDebounceMsg is sent after the resize debounce delay. Only the
// message carrying the latest ID triggers a recomputation; earlier timers
// from the same resize burst are ignored.
type ReflowDebounceMsg struct {
	ID int
}

// SearchDebounceMsg is sent after the search input debounce delay.
type SearchDebounceMsg struct {
	ID    int
	Query string
}

// DataReloadedMsg replaces the data set. Reloads bypass the resize debounce:
// the new rows need the current visibility applied before the next paint.
type DataReloadedMsg struct {
	Rows []map[string]any
}

// BreakpointCallback is invoked when a recomputation lands on a different
// breakpoint tier than the previous one.
type BreakpointCallback func(name string, res grid.Result)

// Model is the top-level bubbletea model. It owns the recomputation
// pipeline: measure width, resolve breakpoint, calculate visibility, apply
// it to the surface, then rebuild detail-row state.
type Model struct {
	columns []grid.Descriptor
	rows    []map[string]any // full data set
	view    []map[string]any // rows after filter, sort, pagination
	viewIdx []int            // original row index per view row

	layout  *LayoutManager
	surface *Surface
	details *Details
	entries []grid.Entry
	result  grid.Result

	breakpoints  grid.Table
	breakpoint   string
	onBreakpoint BreakpointCallback

	heuristics   grid.Heuristics
	hasSelection bool

	cursor   int          // data-row index within the view
	selected map[int]bool // record indices, survives reflow but not reload

	searchInput    textinput.Model
	searching      bool
	activeFilter   *filter.Filter
	searchID       int
	searchDebounce time.Duration

	pages pager.Config

	sortColumn int // index into columns, -1 for unsorted

	reflowID       int
	reflowDebounce time.Duration

	theme    Theme
	noColor  bool
	showHelp bool
	status   string
	quitting bool

	log *logr.Logger
}

// New builds a model for the given columns and rows.
func New(columns []grid.Descriptor, rows []map[string]any, cfg Config, log *logr.Logger) *Model {
	cfg.Normalize()
	if log == nil {
		log = logger.GetNoopLogger()
	}

	si := textinput.New()
	si.Placeholder = "substring or ?CEL expression"
	si.CharLimit = 200
	si.SetWidth(40)
	si.Prompt = "/"

	m := &Model{
		columns:        columns,
		rows:           rows,
		layout:         NewLayoutManager(0, 0),
		breakpoints:    cfg.BreakpointTable(),
		heuristics:     cfg.GridHeuristics(),
		hasSelection:   true,
		selected:       make(map[int]bool),
		searchInput:    si,
		searchDebounce: time.Duration(cfg.SearchDebounceMs) * time.Millisecond,
		sortColumn:     -1,
		reflowDebounce: time.Duration(cfg.ReflowDebounceMs) * time.Millisecond,
		theme:          CurrentTheme(),
		log:            log,
	}
	m.rebuildSurface()
	return m
}

// SetPager configures pagination. Invalid configs are ignored.
func (m *Model) SetPager(p pager.Config) {
	if err := p.Validate(); err != nil {
		m.log.Error(err, "ignoring invalid pager configuration")
		return
	}
	m.pages = p
	m.rebuildSurface()
}

// SetNoColor disables styling.
func (m *Model) SetNoColor(v bool) { m.noColor = v }

// SetBreakpointCallback registers the breakpoint-change notification.
func (m *Model) SetBreakpointCallback(cb BreakpointCallback) { m.onBreakpoint = cb }

// SetSelectionColumn controls the leading selection/toggle column. Without
// it there is no place to host expand toggles, so detail rows are disabled.
func (m *Model) SetSelectionColumn(v bool) {
	m.hasSelection = v
	m.rebuildSurface()
}

// Result returns the visibility result of the last recomputation.
func (m *Model) Result() grid.Result { return m.result }

// Breakpoint returns the breakpoint name of the last recomputation.
func (m *Model) Breakpoint() string { return m.breakpoint }

// SurfaceState exposes the surface for inspection.
func (m *Model) SurfaceState() *Surface { return m.surface }

// DetailState exposes the detail controller for inspection.
func (m *Model) DetailState() *Details { return m.details }

// Init schedules the initial recomputation. The short settle delay lets the
// first WindowSizeMsg arrive before width is measured; measuring too early
// reads zero and hides everything until the next resize.
func (m *Model) Init() tea.Cmd {
	return m.scheduleReflow()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.SetDimensions(msg.Width, msg.Height)
		return m, m.scheduleReflow()

	case ReflowDebounceMsg:
		if msg.ID != m.reflowID {
			return m, nil
		}
		m.reflow()
		return m, nil

	case SearchDebounceMsg:
		if msg.ID != m.searchID {
			return m, nil
		}
		m.applySearch(msg.Query)
		return m, nil

	case DataReloadedMsg:
		m.rows = msg.Rows
		m.selected = make(map[int]bool)
		m.rebuildSurface()
		m.reflow()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.searching {
		switch key {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.applySearch("")
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.applySearch(m.searchInput.Value())
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.searchID++
		return m, tea.Batch(cmd, debouncedSearch(m.searchID, m.searchInput.Value(), m.searchDebounce))
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch ActionFor(key) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionDown:
		m.moveCursor(1)
	case ActionUp:
		m.moveCursor(-1)
	case ActionTop:
		m.cursor = 0
	case ActionBottom:
		if n := m.surface.DataRowCount(); n > 0 {
			m.cursor = n - 1
		}
	case ActionToggleDetail:
		if i := m.surface.DataRowAt(m.cursor); i >= 0 {
			m.details.Toggle(i)
		}
	case ActionToggleSelect:
		if !m.hasSelection {
			break
		}
		if i := m.surface.DataRowAt(m.cursor); i >= 0 {
			orig := m.viewIdx[m.surface.Body[i].OwnerIndex]
			if m.selected[orig] {
				delete(m.selected, orig)
			} else {
				m.selected[orig] = true
			}
		}
	case ActionSearch:
		m.searching = true
		m.searchInput.Focus()
	case ActionSort:
		m.cycleSort()
	case ActionNextPage:
		if next := m.pages.NextPage(m.filteredCount()); next != m.pages {
			m.pages = next
			m.rebuildSurface()
			m.reflow()
		}
	case ActionPrevPage:
		if prev := m.pages.PrevPage(); prev != m.pages {
			m.pages = prev
			m.rebuildSurface()
			m.reflow()
		}
	case ActionClear:
		m.searchInput.SetValue("")
		m.applySearch("")
	case ActionHelp:
		m.showHelp = true
	}
	return m, nil
}

// scheduleReflow bumps the debounce correlation ID and returns the timer
// command. A resize arriving before the timer fires reschedules; the stale
// timer's message no longer matches the ID and is dropped.
func (m *Model) scheduleReflow() tea.Cmd {
	m.reflowID++
	id := m.reflowID
	delay := m.reflowDebounce
	return func() tea.Msg {
		time.Sleep(delay)
		return ReflowDebounceMsg{ID: id}
	}
}

func debouncedSearch(id int, query string, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(delay)
		return SearchDebounceMsg{ID: id, Query: query}
	}
}

// reflow runs the full recomputation sequence: measure the width budget,
// resolve the breakpoint, calculate visibility, apply it to the surface,
// then reset detail-row state against the new hidden set. The sequence
// always runs in full; there is no incremental path.
func (m *Model) reflow() {
	budget := m.layout.AvailableWidth(m.hasSelection)
	bp := m.breakpoints.Resolve(m.layout.GetWidth())

	m.entries = grid.BuildModel(m.columns, m.layout.GetWidth(), m.heuristics)
	res := grid.Calculate(m.entries, budget)

	m.surface.Apply(res)
	m.details.Reset(res)
	m.result = res

	if bp != m.breakpoint {
		m.log.V(1).Info("breakpoint changed",
			"from", m.breakpoint, "to", bp,
			"width", m.layout.GetWidth(), "budget", budget,
			"visible", len(res.Visible), "hidden", len(res.Hidden))
		m.breakpoint = bp
		if m.onBreakpoint != nil {
			m.onBreakpoint(bp, res)
		}
	}
}

// rebuildSurface recomputes the view rows (filter, sort, pagination) and
// replaces the surface and detail controller. Visibility is applied by the
// next reflow.
func (m *Model) rebuildSurface() {
	m.view, m.viewIdx = m.viewRows()
	m.surface = BuildSurface(m.columns, m.view, m.hasSelection)
	m.details = NewDetails(m.surface)
	if n := m.surface.DataRowCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) viewRows() ([]map[string]any, []int) {
	order := make([]int, 0, len(m.rows))
	for i, r := range m.rows {
		if m.activeFilter != nil && m.activeFilter.IsActive() &&
			!m.activeFilter.Match(r, m.displayCells(r, i)) {
			continue
		}
		order = append(order, i)
	}
	if m.sortColumn >= 0 && m.sortColumn < len(m.columns) {
		key := m.columns[m.sortColumn].DataKey
		sort.SliceStable(order, func(i, j int) bool {
			return lessValue(m.rows[order[i]][key], m.rows[order[j]][key])
		})
	}
	if m.pages.IsActive() {
		start, end := m.pages.Window(len(order))
		order = order[start:end]
	}
	rows := make([]map[string]any, len(order))
	for i, idx := range order {
		rows[i] = m.rows[idx]
	}
	return rows, order
}

// displayCells renders a record's cells the way the table would, for
// substring matching against what the user actually sees.
func (m *Model) displayCells(rec map[string]any, idx int) []string {
	cells := make([]string, 0, len(m.columns))
	for _, c := range m.columns {
		if c.DataKey == grid.RowIndexKey {
			continue
		}
		ctx := render.Context{Row: rec, RowIndex: idx, DataKey: c.DataKey}
		cells = append(cells, render.DisplayValue(rec[c.DataKey], ctx, c.Render))
	}
	return cells
}

func (m *Model) filteredCount() int {
	if m.activeFilter == nil || !m.activeFilter.IsActive() {
		return len(m.rows)
	}
	n := 0
	for i, r := range m.rows {
		if m.activeFilter.Match(r, m.displayCells(r, i)) {
			n++
		}
	}
	return n
}

func (m *Model) applySearch(query string) {
	f, err := filter.New(query)
	if err != nil {
		m.status = "search: " + err.Error()
		return
	}
	m.status = ""
	m.activeFilter = f
	m.pages.Offset = 0
	m.rebuildSurface()
	m.reflow()
}

// cycleSort advances the sort column through the orderable columns and back
// to unsorted.
func (m *Model) cycleSort() {
	next := m.sortColumn + 1
	for next < len(m.columns) {
		if m.columns[next].Orderable {
			break
		}
		next++
	}
	if next >= len(m.columns) {
		next = -1
	}
	m.sortColumn = next
	m.rebuildSurface()
	m.reflow()
}

func (m *Model) moveCursor(delta int) {
	n := m.surface.DataRowCount()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// lessValue orders mixed scalar values: numbers numerically, everything
// else by stringified form. Nil sorts first.
func lessValue(a, b any) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	return render.Stringify(a) < render.Stringify(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
