package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridx/internal/ui"
	"github.com/oakwood-commons/gridx/pkg/settings"
)

// resolveConfigPath returns the explicit path if set, otherwise the XDG
// location ($XDG_CONFIG_HOME/gridx/config.yaml) or
// ~/.config/gridx/config.yaml when one exists.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// loadConfig reads and normalizes a config file. An empty path returns the
// defaults; a missing or malformed file is an error since the user asked
// for it explicitly or it exists at the discovery location.
func loadConfig(path string) (ui.Config, error) {
	cfg := ui.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gridx configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(resolveConfigPath(configFile))
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cmd.Print(string(out))
		return nil
	},
}

var configThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		names := make([]string, 0, len(ui.ThemePresets))
		for name := range ui.ThemePresets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cmd.Println(name)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configThemesCmd)
}
