package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"
)

const cellGap = " "

// SelectedMark flags selected rows in the selection column.
const SelectedMark = "*"

// isSelectedBody reports whether the data row at the given body index is
// part of the current selection.
func (m *Model) isSelectedBody(bodyIndex int) bool {
	if bodyIndex < 0 || bodyIndex >= len(m.surface.Body) {
		return false
	}
	row := m.surface.Body[bodyIndex]
	if row.Detail || row.OwnerIndex < 0 || row.OwnerIndex >= len(m.viewIdx) {
		return false
	}
	return m.selected[m.viewIdx[row.OwnerIndex]]
}

// View renders the full screen: header, optional search bar, body rows with
// interleaved detail rows, status line and footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder

	if m.searching {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	b.WriteString(m.renderRow(&m.surface.Header, m.headerStyle(), -1))
	b.WriteString("\n")

	bodyHeight := m.layout.BodyHeight(m.searching, m.surface.Footer != nil)
	cursorBody := m.surface.DataRowAt(m.cursor)
	start := m.scrollStart(bodyHeight, cursorBody)
	end := start + bodyHeight
	if end > len(m.surface.Body) {
		end = len(m.surface.Body)
	}
	for i := start; i < end; i++ {
		row := &m.surface.Body[i]
		if row.Detail {
			b.WriteString(m.renderDetailRow(row))
		} else {
			style := m.cellStyle()
			if i == cursorBody {
				style = m.selectedStyle()
			}
			b.WriteString(m.renderRow(row, style, i))
		}
		b.WriteString("\n")
	}

	if m.surface.Footer != nil {
		b.WriteString(m.renderRow(m.surface.Footer, m.footerStyle(), -1))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.footerBar())
	return b.String()
}

// scrollStart keeps the cursor row inside the visible body window.
func (m *Model) scrollStart(height, cursorBody int) int {
	if cursorBody < 0 || len(m.surface.Body) <= height {
		return 0
	}
	start := cursorBody - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(m.surface.Body) {
		start = len(m.surface.Body) - height
	}
	return start
}

// renderRow draws one cell row, skipping hidden cells. Visible data cells
// are padded or truncated to their column's resolved width.
func (m *Model) renderRow(row *Row, style lipgloss.Style, bodyIndex int) string {
	off := m.surface.cellOffset()
	parts := make([]string, 0, len(row.Cells))
	if m.surface.HasSelection && len(row.Cells) > 0 {
		glyph := row.Cells[0].Content
		if bodyIndex >= 0 && m.isSelectedBody(bodyIndex) {
			glyph = SelectedMark + glyph
		}
		parts = append(parts, m.toggleStyle().Render(fit(glyph, SelectionColWidth)))
	}
	for i := off; i < len(row.Cells); i++ {
		cell := row.Cells[i]
		if cell.Hidden {
			continue
		}
		w := m.columnWidth(i - off)
		parts = append(parts, style.Render(fit(cell.Content, w)))
	}
	return strings.Join(parts, cellGap)
}

// renderDetailRow draws a synthetic detail row as one line spanning the
// table: indented label/value pairs for the hidden columns.
func (m *Model) renderDetailRow(row *Row) string {
	indent := strings.Repeat(" ", SelectionColWidth+1)
	if len(row.Pairs) == 0 {
		return indent + m.detailValueStyle().Render(DetailPlaceholder)
	}
	parts := make([]string, 0, len(row.Pairs))
	for _, p := range row.Pairs {
		parts = append(parts,
			m.detailLabelStyle().Render(p.Label+":")+" "+m.detailValueStyle().Render(p.Value))
	}
	return indent + strings.Join(parts, "  ")
}

// columnWidth is the resolved minimum width of column i, from the entries
// computed during the last reflow.
func (m *Model) columnWidth(i int) int {
	for _, e := range m.entries {
		if e.Index == i {
			return e.MinWidth
		}
	}
	if i >= 0 && i < len(m.columns) {
		return runewidth.StringWidth(m.columns[i].Title)
	}
	return 0
}

func (m *Model) statusLine() string {
	if m.status != "" {
		return m.statusErrorStyle().Render(m.status)
	}
	total := m.filteredCount()
	parts := []string{fmt.Sprintf("%d/%d rows", m.surface.DataRowCount(), total)}
	if m.pages.IsActive() {
		page, pages := m.pages.PageInfo(total)
		parts = append(parts, fmt.Sprintf("page %d/%d", page, pages))
	}
	if m.activeFilter != nil && m.activeFilter.IsActive() {
		parts = append(parts, "filtered")
	}
	if len(m.selected) > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", len(m.selected)))
	}
	if len(m.result.Hidden) > 0 {
		parts = append(parts, fmt.Sprintf("%d hidden", len(m.result.Hidden)))
	}
	if m.breakpoint != "" {
		parts = append(parts, m.breakpoint)
	}
	if m.sortColumn >= 0 && m.sortColumn < len(m.columns) {
		parts = append(parts, "sort:"+m.columns[m.sortColumn].Title)
	}
	return m.statusStyle().Render(strings.Join(parts, " | "))
}

func (m *Model) footerBar() string {
	keys := []string{"j/k move", "enter expand", "x select", "/ search", "s sort", "? help", "q quit"}
	line := " " + strings.Join(keys, "  ")
	return m.footerStyle().Render(fit(line, m.layout.GetWidth()))
}

func (m *Model) helpView() string {
	lines := []string{
		"gridx keys",
		"",
		"  j / down       move down",
		"  k / up         move up",
		"  g / home       first row",
		"  G / end        last row",
		"  enter / space  expand or collapse detail row",
		"  x              select or deselect row",
		"  /              search (prefix ? for a CEL expression)",
		"  s              cycle sort column",
		"  [ / ] pgup/pgdn  previous / next page",
		"  esc            clear search",
		"  q / ctrl+c     quit",
		"",
		"press any key to close",
	}
	return strings.Join(lines, "\n")
}

// fit pads or truncates s to exactly w display cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > w {
		return runewidth.Truncate(s, w, "…")
	}
	return runewidth.FillRight(s, w)
}

func (m *Model) styled(fn func(lipgloss.Style) lipgloss.Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if m.noColor {
		return s
	}
	return fn(s)
}

func (m *Model) headerStyle() lipgloss.Style {
	return m.styled(func(s lipgloss.Style) lipgloss.Style {
		return s.Foreground(m.theme.HeaderFG).Background(m.theme.HeaderBG).Bold(true)
	})
}

func (m *Model) cellStyle() lipgloss.Style {
	return m.styled(func(s lipgloss.Style) lipgloss.Style {
		return s.Foreground(m.theme.CellFG)
	})
}

func (m *Model) selectedStyle() lipgloss.Style {
	return m.styled(func(s lipgloss.Style) lipgloss.Style {
		return s.Foreground(m.theme.SelectedFG).Background(m.theme.SelectedBG)
	})
}

func (m *Model) toggleStyle() lipgloss.Style {
	return m.styled(func(s lipgloss.Style) lipgloss.Style {
		return s.Foreground(m.theme.ToggleFG)
	})
}

func (m *Model) detailLabelStyle() lipgloss.Style {
	return m.styled(func(s lipgloss.Style) lipgloss.Style {
		return s.Foreground(m.theme.DetailLabelFG).Bold(true)
	})
}

func (m *Model) detailValueStyle() lipgloss.Style {
	return m.styled(func(s lipgloss.Style) lipgloss.Style {
		return s.Foreground(m.theme.DetailValueFG)
	})
}

func (m *Model) statusStyle() lipgloss.Style {
	return m.styled(func(s lipgloss.Style) lipgloss.Style {
		return s.Foreground(m.theme.StatusFG)
	})
}

func (m *Model) statusErrorStyle() lipgloss.Style {
	return m.styled(func(s lipgloss.Style) lipgloss.Style {
		return s.Foreground(m.theme.StatusError)
	})
}

func (m *Model) footerStyle() lipgloss.Style {
	return m.styled(func(s lipgloss.Style) lipgloss.Style {
		return s.Foreground(m.theme.FooterFG).Background(m.theme.FooterBG)
	})
}
