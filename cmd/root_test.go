package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		// reset flag state so one test's flags do not leak into the next
		rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			}
		})
	}()
	err := rootCmd.Execute()
	return out.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.json")
	data := []byte(`[
		{"name": "Ada", "email": "a@b.com", "phone": "555-1234"},
		{"name": "Grace", "email": "g@h.com", "phone": "555-5678"}
	]`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestSnapshotCommandWide(t *testing.T) {
	out, err := runRoot(t, writeSample(t), "--snapshot", "--width", "200", "--height", "24", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "Phone")
}

func TestSnapshotCommandNarrow(t *testing.T) {
	out, err := runRoot(t, writeSample(t), "--snapshot", "--width", "24", "--height", "24", "--no-color")
	require.NoError(t, err)
	assert.NotContains(t, out, "Phone")
	assert.Contains(t, out, "hidden")
}

func TestSnapshotRowNumbers(t *testing.T) {
	out, err := runRoot(t, writeSample(t), "--snapshot", "--width", "200", "--height", "24", "--no-color", "--row-numbers")
	require.NoError(t, err)
	assert.Contains(t, out, "#")
}

func TestConflictingPagerFlags(t *testing.T) {
	_, err := runRoot(t, writeSample(t), "--snapshot", "--limit", "5", "--tail", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestUnknownThemeFails(t *testing.T) {
	_, err := runRoot(t, writeSample(t), "--snapshot", "--theme", "neon", "--width", "80", "--height", "24")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestMissingFileFails(t *testing.T) {
	_, err := runRoot(t, filepath.Join(t.TempDir(), "nope.json"), "--snapshot")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gridx")
}

func TestTerminalDeviceNames(t *testing.T) {
	in, outDev := terminalDeviceNames("linux")
	assert.Equal(t, "/dev/tty", in)
	assert.Equal(t, "/dev/tty", outDev)

	in, outDev = terminalDeviceNames("windows")
	assert.Equal(t, "CONIN$", in)
	assert.Equal(t, "CONOUT$", outDev)
}
