package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"backoffice/internal/eventbus"
	"backoffice/internal/features"
	"backoffice/internal/logutil"
	"backoffice/internal/ui"
)

// runTUI starts the interactive dashboard
func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	bus := eventbus.New()
	defer bus.Close()

	cfg, _, err := loadSettings(cmd, opts, bus)
	if err != nil {
		return err
	}
	if _, err := logutil.Setup(cfg.Log); err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logutil.Close()
	log := logutil.L()

	registry := features.Default()
	if cfg.DefaultFeature != "" {
		if _, err := registry.Lookup(cfg.DefaultFeature); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := ui.NewModel(bus, ui.Options{
		Registry:      registry,
		Source:        newSource(cfg),
		RowsPerPage:   cfg.RowsPerPage,
		ConfirmDelete: cfg.UISettings.ConfirmDelete,
		Mouse:         cfg.UISettings.Mouse,
		ToastDuration: time.Duration(cfg.UISettings.ToastSeconds) * time.Second,
		Feature:       cfg.DefaultFeature,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	zone.NewGlobal()

	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	stop := forwardEvents(bus, p)
	defer stop()

	log.Info("starting dashboard",
		zap.String("version", Version),
		zap.String("feature", cfg.DefaultFeature),
		zap.Int("rows_per_page", cfg.RowsPerPage),
		zap.Int64("seed", cfg.Mock.Seed),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error("program failed", zap.Error(err))
		return fmt.Errorf("run dashboard: %w", err)
	}
	log.Info("dashboard exited")
	return nil
}
