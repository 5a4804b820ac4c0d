package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"pocketpet/internal/config"
	"pocketpet/internal/pet"
	"pocketpet/internal/store"
	"pocketpet/internal/ui"
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pocketpet: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so the logger writes to a file.
	logger, logFile, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pocketpet: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	st, err := openStore(cfg.Store)
	if err != nil {
		logger.Error("open store", "err", err)
		fmt.Fprintf(os.Stderr, "pocketpet: open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	simCfg := cfg.Pet.SimConfig()
	sim := pet.NewSimulator(simCfg, pet.MonotonicClock(), logger)

	rec, err := st.Load()
	if err != nil {
		// An unreadable record is a fresh start, not a fatal error.
		logger.Warn("could not read saved state, starting fresh", "err", err)
		rec = nil
	}
	sim.LoadOrInitialize(rec)

	queue := pet.NewQueue(16)
	program := tea.NewProgram(
		ui.NewModel(sim, queue, st, logger, simCfg.TickInterval),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pocketpet: %v\n", err)
		os.Exit(1)
	}

	// Every graceful exit snapshots, even between save cadences.
	if err := st.Save(sim.Snapshot()); err != nil {
		logger.Warn("final save failed", "err", err)
	}
}

func newLogger(cfg config.LogConfig) (*log.Logger, *os.File, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, f, nil
}

func openStore(cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Backend {
	case "sqlite":
		return store.OpenSQLite(cfg.Path)
	default:
		return store.NewFileStore(cfg.Path)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pocketpet.yaml"
	}
	return filepath.Join(home, ".config", "pocketpet", "config.yaml")
}
