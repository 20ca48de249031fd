package ui

// LayoutManager manages the layout calculations for the TUI.
type LayoutManager struct {
	width  int
	height int
}

// Reserved chrome, in terminal cells. The width budget handed to the
// visibility calculator is the window width minus these reserves.
const (
	SelectionColWidth = 2 // leading selection/toggle column incl. padding
	ToggleColWidth    = 2 // expand affordance next to the selection marker
	EdgeMargin        = 2 // borders and right-edge slack
	NarrowEdgeMargin  = 4 // wider slack when the viewport is narrow
	NarrowViewport    = 80
)

// Fixed component heights.
const (
	HeaderLineCount = 1
	SearchLineCount = 1
	StatusLineCount = 1
	FooterLineCount = 1
	MinBodyHeight   = 1
)

// NewLayoutManager creates a new layout manager.
func NewLayoutManager(width, height int) *LayoutManager {
	return &LayoutManager{width: width, height: height}
}

// SetDimensions updates the layout manager dimensions.
func (lm *LayoutManager) SetDimensions(width, height int) {
	lm.width = width
	lm.height = height
}

// AvailableWidth is the width budget for data columns: window width minus
// the selection and toggle columns (when present) and the edge margin. The
// margin grows at or below the narrow-viewport threshold, where scrollbars
// and borders eat proportionally more of the line.
func (lm *LayoutManager) AvailableWidth(hasSelection bool) int {
	reserve := EdgeMargin
	if lm.width <= NarrowViewport {
		reserve = NarrowEdgeMargin
	}
	if hasSelection {
		reserve += SelectionColWidth + ToggleColWidth
	}
	budget := lm.width - reserve
	if budget < 0 {
		budget = 0
	}
	return budget
}

// BodyHeight is the line count left for body rows after the fixed bars.
func (lm *LayoutManager) BodyHeight(showSearch bool, showFooter bool) int {
	fixed := HeaderLineCount + StatusLineCount + FooterLineCount
	if showSearch {
		fixed += SearchLineCount
	}
	if showFooter {
		fixed += FooterLineCount
	}
	h := lm.height - fixed
	if h < MinBodyHeight {
		h = MinBodyHeight
	}
	return h
}

// GetWidth returns the current width.
func (lm *LayoutManager) GetWidth() int { return lm.width }

// GetHeight returns the current height.
func (lm *LayoutManager) GetHeight() int { return lm.height }
