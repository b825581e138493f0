package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/letsDanceDB/pomodoro-timer/internal/config"
	"github.com/letsDanceDB/pomodoro-timer/internal/store"
	"github.com/letsDanceDB/pomodoro-timer/internal/timer"
	"github.com/letsDanceDB/pomodoro-timer/internal/tui"
	"github.com/letsDanceDB/pomodoro-timer/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "This program must be run in a terminal.")
		os.Exit(1)
	}

	ctx := context.Background()

	appCfg, err := config.LoadFile(filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	dataDir := resolveDataDir(appCfg)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(ctx, filepath.Join(dataDir, config.DBFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			util.LogError("closing store", err)
		}
	}()

	timerCfg := st.LoadTimerConfig(ctx)
	engine := timer.NewEngine(timerCfg, timer.SystemClock(), store.NewEventLog(ctx, st))

	model := tui.NewModel(ctx, st, engine, appCfg.Theme)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// resolveDataDir prefers an explicit data_dir from the app config file
// over the platform default.
func resolveDataDir(cfg *config.AppConfig) string {
	if cfg != nil && cfg.DataDir != "" {
		return cfg.DataDir
	}
	return util.DataDir(config.AppName)
}
