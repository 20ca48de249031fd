package settings

import (
	"testing"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	want := &Run{
		MinLogLevel: 0,
		DataPath:    "",
		IsQuiet:     false,
		NoColor:     false,
		Interactive: true,
		ExitOnError: true,
	}
	if *got != *want {
		t.Errorf("NewCliParams() = %+v, want %+v", got, want)
	}
}
