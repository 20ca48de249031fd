package ui

import "testing"

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{key: "j", want: ActionDown},
		{key: "down", want: ActionDown},
		{key: "enter", want: ActionToggleDetail},
		{key: "/", want: ActionSearch},
		{key: "q", want: ActionQuit},
		{key: "ctrl+c", want: ActionQuit},
		{key: "x", want: ActionToggleSelect},
		{key: "pgdown", want: ActionNextPage},
		{key: "pgup", want: ActionPrevPage},
		{key: "z", want: ActionNone},
	}
	for _, tt := range tests {
		if got := ActionFor(tt.key); got != tt.want {
			t.Errorf("ActionFor(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
