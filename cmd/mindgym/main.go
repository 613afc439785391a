// Package main provides the CLI entrypoint for mindgym.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/mindgym/internal/config"
	"github.com/verte-zerg/mindgym/internal/model"
	"github.com/verte-zerg/mindgym/internal/stats"
	"github.com/verte-zerg/mindgym/internal/store"
	"github.com/verte-zerg/mindgym/internal/tui"
)

const (
	defaultStroopDuration   = 45
	defaultStroopDifficulty = 1
	defaultNBackEndIndex    = 40
	defaultNBackDifficulty  = 1
	maxStroopDifficulty     = 5
	maxNBackDifficulty      = 7
)

var (
	stroopDuration   int
	stroopDifficulty int

	nbackEndIndex   int
	nbackDifficulty int

	statsPlain bool
	statsGame  string
	statsLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mindgym",
		Short:         "TUI brain trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, tui.StartHome)
		},
	}
	addGameFlags(rootCmd)

	rootCmd.AddCommand(newStroopCmd())
	rootCmd.AddCommand(newNBackCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&stroopDuration, "stroop-duration", defaultStroopDuration, "stroop session length in seconds")
	cmd.Flags().IntVar(&stroopDifficulty, "stroop-difficulty", defaultStroopDifficulty, "stroop starting difficulty (1-5)")
	cmd.Flags().IntVar(&nbackEndIndex, "nback-end-index", defaultNBackEndIndex, "stimuli per 1-back session")
	cmd.Flags().IntVar(&nbackDifficulty, "nback-difficulty", defaultNBackDifficulty, "1-back starting difficulty (1-7)")
}

func newStroopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stroop",
		Short: "Play a Stroop focus session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, tui.StartStroop)
		},
	}
	addGameFlags(cmd)
	return cmd
}

func newNBackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nback",
		Short: "Play a 1-back memory session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApp(cmd, tui.StartNBack)
		},
	}
	addGameFlags(cmd)
	return cmd
}

func runApp(cmd *cobra.Command, start tui.Start) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	statsStore := stats.New(st)
	statsStore.Initialize(context.Background())

	appModel := tui.NewModel(statsStore, cfg, start)
	program := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func resolveConfig(cmd *cobra.Command) (tui.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return tui.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "stroop-duration", &stroopDuration, fileCfg.Stroop.Duration)
	applyIntConfig(cmd, "stroop-difficulty", &stroopDifficulty, fileCfg.Stroop.StartDifficulty)
	applyIntConfig(cmd, "nback-end-index", &nbackEndIndex, fileCfg.NBack.EndIndex)
	applyIntConfig(cmd, "nback-difficulty", &nbackDifficulty, fileCfg.NBack.StartDifficulty)

	if stroopDuration <= 0 {
		return tui.Config{}, fmt.Errorf("--stroop-duration must be > 0")
	}
	if stroopDifficulty < 1 || stroopDifficulty > maxStroopDifficulty {
		return tui.Config{}, fmt.Errorf("--stroop-difficulty must be between 1 and %d", maxStroopDifficulty)
	}
	if nbackEndIndex <= 0 {
		return tui.Config{}, fmt.Errorf("--nback-end-index must be > 0")
	}
	if nbackDifficulty < 1 || nbackDifficulty > maxNBackDifficulty {
		return tui.Config{}, fmt.Errorf("--nback-difficulty must be between 1 and %d", maxNBackDifficulty)
	}

	return tui.Config{
		StroopDuration:        time.Duration(stroopDuration) * time.Second,
		StroopStartDifficulty: stroopDifficulty,
		NBackEndIndex:         nbackEndIndex,
		NBackStartDifficulty:  nbackDifficulty,
	}, nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain-text report instead of the TUI")
	cmd.Flags().StringVar(&statsGame, "game", "", "game filter (stroop, nback, memory)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	gameKey, err := resolveGameFilter(statsGame)
	if err != nil {
		return err
	}

	if !statsPlain {
		return runApp(cmd, tui.StartStats)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	statsStore := stats.New(st)
	statsStore.Initialize(ctx)

	cfg := model.ReportConfig{Game: gameKey, Last: statsLast}
	report, err := stats.BuildReport(ctx, statsStore, st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := stats.RenderReport(cmd.OutOrStdout(), report, cfg); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func resolveGameFilter(value string) (model.GameKey, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "", nil
	}
	for _, key := range model.GameKeys {
		if value == string(key) {
			return key, nil
		}
	}
	known := make([]string, len(model.GameKeys))
	for i, key := range model.GameKeys {
		known[i] = string(key)
	}
	return "", fmt.Errorf("unknown game %q (available: %s)", value, strings.Join(known, ", "))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# mindgym configuration
# Uncomment a value to enable it. CLI flags override config values.

[stroop]
# duration = %d           # Session length in seconds
# start-difficulty = %d   # Starting difficulty (1-%d)

[nback]
# end-index = %d          # Stimuli per session
# start-difficulty = %d   # Starting difficulty (1-%d)
`,
		defaultStroopDuration,
		defaultStroopDifficulty,
		maxStroopDifficulty,
		defaultNBackEndIndex,
		defaultNBackDifficulty,
		maxNBackDifficulty,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
