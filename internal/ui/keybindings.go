package ui

// Action is a named operation triggered by a key press.
type Action string

const (
	ActionNone         Action = ""
	ActionDown         Action = "down"
	ActionUp           Action = "up"
	ActionTop          Action = "top"
	ActionBottom       Action = "bottom"
	ActionToggleDetail Action = "toggle_detail"
	ActionToggleSelect Action = "toggle_select"
	ActionSearch       Action = "search"
	ActionSort         Action = "sort"
	ActionNextPage     Action = "next_page"
	ActionPrevPage     Action = "prev_page"
	ActionClear        Action = "clear"
	ActionHelp         Action = "help"
	ActionQuit         Action = "quit"
)

// DefaultKeyBindings maps key strings (as bubbletea reports them) to
// actions. Vim-style navigation plus arrow keys.
var DefaultKeyBindings = map[string]Action{
	"j":      ActionDown,
	"down":   ActionDown,
	"k":      ActionUp,
	"up":     ActionUp,
	"g":      ActionTop,
	"home":   ActionTop,
	"G":      ActionBottom,
	"end":    ActionBottom,
	"enter":  ActionToggleDetail,
	"space":  ActionToggleDetail,
	"x":      ActionToggleSelect,
	"/":      ActionSearch,
	"s":      ActionSort,
	"]":      ActionNextPage,
	"pgdown": ActionNextPage,
	"[":      ActionPrevPage,
	"pgup":   ActionPrevPage,
	"esc":    ActionClear,
	"?":      ActionHelp,
	"q":      ActionQuit,
	"ctrl+c": ActionQuit,
}

// ActionFor resolves a key string to its bound action.
func ActionFor(key string) Action {
	if a, ok := DefaultKeyBindings[key]; ok {
		return a
	}
	return ActionNone
}
