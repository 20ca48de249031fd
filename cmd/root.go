// Package cmd implements the gridx command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/gridx/internal/grid"
	"github.com/oakwood-commons/gridx/internal/pager"
	"github.com/oakwood-commons/gridx/pkg/datagrid"
	"github.com/oakwood-commons/gridx/pkg/logger"
	"github.com/oakwood-commons/gridx/pkg/settings"
)

var (
	interactive  bool
	snapshot     bool
	flagWidth    int
	flagHeight   int
	noColor      bool
	themeName    string
	configFile   string
	rowNumbers   bool
	limitRecords int
	offsetRows   int
	tailRecords  int
	debug        bool

	rootCtx = context.Background()

	// test seam for terminal reopen
	openTerminalIOFn = openTerminalIO
)

var rootCmd = &cobra.Command{
	Use:   "gridx [file]",
	Short: "responsive data grid for the terminal",
	Long: `gridx renders tabular data (JSON, NDJSON, YAML or TOML, auto-detected)
as an interactive terminal grid. Columns hide and reappear as the window
is resized; expand a row to see the values of its hidden columns.`,
	Example: "\n  gridx people.json\n  gridx people.yaml --snapshot --width 60\n  cat records.ndjson | gridx -\n  gridx people.json --limit 20 --row-numbers\n",
	Args:    cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		var level int8
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, "command", settings.CliBinaryName, "subcommand", cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		lgr := logger.FromContext(rootCtx)

		pcfg := pager.Config{Limit: limitRecords, Offset: offsetRows, Tail: tailRecords}
		if err := pcfg.Validate(); err != nil {
			return fmt.Errorf("record limiting: %w", err)
		}

		params := settings.NewCliParams()
		params.DataPath = "-"
		if len(args) > 0 {
			params.DataPath = args[0]
		}
		params.NoColor = noColor
		params.Interactive = interactive && !snapshot && stdoutIsTerminal()
		if debug {
			params.MinLogLevel = -1
		}
		rootCtx = settings.IntoContext(rootCtx, params)

		if params.DataPath == "-" && !stdinIsPiped() {
			return cmd.Help()
		}

		rows, err := datagrid.LoadRowsFile(params.DataPath)
		if err != nil {
			return fmt.Errorf("load %s: %w", params.DataPath, err)
		}
		lgr.V(1).Info("loaded rows", "path", params.DataPath, "count", len(rows))

		fileCfg, err := loadConfig(resolveConfigPath(configFile))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("theme") {
			fileCfg.Theme = themeName
		}
		if cmd.Flags().Changed("row-numbers") {
			fileCfg.RowNumbers = rowNumbers
		}

		gcfg := datagrid.Config{
			RowNumbers:       fileCfg.RowNumbers,
			Theme:            fileCfg.Theme,
			NoColor:          noColor,
			Width:            flagWidth,
			Height:           flagHeight,
			ReflowDebounceMs: fileCfg.ReflowDebounceMs,
			SearchDebounceMs: fileCfg.SearchDebounceMs,
			Heuristics:       fileCfg.Heuristics,
			Breakpoints:      fileCfg.Breakpoints,
			Pager:            pcfg,
			Logger:           lgr,
			OnBreakpointChange: func(name string, res grid.Result) {
				lgr.V(1).Info("breakpoint changed", "name", name,
					"visible", len(res.Visible), "hidden", len(res.Hidden))
			},
		}

		if !params.Interactive {
			out, err := datagrid.RenderSnapshot(rows, gcfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}

		opts, cleanup := getProgramOptions()
		defer cleanup()
		return datagrid.Run(rows, gcfg, opts...)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print gridx version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		v := settings.VersionInformation
		cmd.Printf("%s %s (commit %s, built %s)\n",
			settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", true, "run the interactive TUI (disable for plain output)")
	rootCmd.Flags().BoolVar(&snapshot, "snapshot", false, "render a single grid snapshot and exit; honors --width/--height")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "force render width in cells (0 = detect)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "force render height in lines (0 = detect)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "theme name: dark|light|mono (default from config)")
	rootCmd.Flags().StringVar(&configFile, "config-file", "", "path to a YAML config file")
	rootCmd.Flags().BoolVar(&rowNumbers, "row-numbers", false, "prepend a row-number column")
	rootCmd.Flags().IntVar(&limitRecords, "limit", 0, "show only this many rows per page (0 = all)")
	rootCmd.Flags().IntVar(&offsetRows, "offset", 0, "skip the first N rows")
	rootCmd.Flags().IntVar(&tailRecords, "tail", 0, "show only the last N rows; mutually exclusive with --limit")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func stdinIsPiped() bool {
	st, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (st.Mode() & os.ModeCharDevice) == 0
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// getProgramOptions handles piped stdin by reopening the terminal for
// interactive input/output, so the TUI keeps receiving keyboard and resize
// events when the data arrived on a pipe.
func getProgramOptions() ([]tea.ProgramOption, func()) {
	cleanup := func() {}
	if !stdinIsPiped() {
		return nil, cleanup
	}

	ttyIn, ttyOut, err := openTerminalIOFn()
	if err != nil {
		// no controlling terminal (CI); fall back to piped stdin
		return nil, cleanup
	}
	cleanup = func() {
		_ = ttyIn.Close()
		if ttyOut != nil && ttyOut != ttyIn {
			_ = ttyOut.Close()
		}
	}

	opts := []tea.ProgramOption{tea.WithInput(ttyIn)}
	if ttyOut != nil {
		opts = append(opts, tea.WithOutput(ttyOut))
	}
	return opts, cleanup
}

func openTerminalIO() (*os.File, *os.File, error) {
	in, out := terminalDeviceNames(runtime.GOOS)

	input, err := os.OpenFile(in, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, err
	}
	if out == "" || out == in {
		return input, input, nil
	}
	output, err := os.OpenFile(out, os.O_RDWR, 0)
	if err != nil {
		return input, nil, err
	}
	return input, output, nil
}

func terminalDeviceNames(goos string) (input string, output string) {
	if goos == "windows" {
		return "CONIN$", "CONOUT$"
	}
	return "/dev/tty", "/dev/tty"
}
