package ui

import "testing"

func TestSetThemeByName(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme()) })

	for _, name := range []string{"dark", "light", "mono"} {
		if err := SetThemeByName(name); err != nil {
			t.Errorf("SetThemeByName(%q) error: %v", name, err)
		}
	}
	if err := SetThemeByName("neon"); err == nil {
		t.Error("SetThemeByName with an unknown name should fail")
	}
}

func TestCurrentThemeFollowsSet(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme()) })

	if err := SetThemeByName("light"); err != nil {
		t.Fatal(err)
	}
	if CurrentTheme() != ThemePresets["light"] {
		t.Error("CurrentTheme() should return the theme just set")
	}
}
