package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rplrewind/rewind/internal/content"
	"github.com/rplrewind/rewind/internal/logging"
	"github.com/rplrewind/rewind/internal/skin"
	"github.com/rplrewind/rewind/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

var errNoTerminal = errors.New("TUI requires a real terminal")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "rewind",
		Short:         "Browse the class yearbook one section at a time",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCLIConfig(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runTUI(cmd.Context(), cfg)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:     %s
  Built:      %s
  Go version: %s
`, commit, buildTime, goVersion))

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default is $HOME/.config/rewind/config.yml)")
	cmd.Flags().String("content", "", "yearbook content file (default is the built-in yearbook)")
	cmd.Flags().String("skin", "", "colour skin name")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

func runTUI(ctx context.Context, cfg cliConfig) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errNoTerminal
	}
	if ctx == nil {
		ctx = context.Background()
	}

	closer, err := logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer closer.Close()
	logger := logging.NewLogger("main")

	book, err := content.Load(cfg.Content)
	if err != nil {
		return err
	}

	sk, err := skin.Load(cfg.Skin, cfg.SkinDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	page, err := tui.NewYearbookPage(book, tui.Options{
		Cooldown:           cfg.Cooldown,
		WheelThreshold:     cfg.WheelThreshold,
		WheelDelta:         cfg.WheelDelta,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
		Skin:               sk,
	})
	if err != nil {
		return err
	}
	app := tui.NewApp(page)

	logger.WithField("sections", len(book.Sections)).Infof("starting %s %s", book.Title, version)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)

	if cfg.WatchSkin && cfg.SkinDir != "" {
		w, err := skin.NewWatcher(skin.Path(cfg.Skin, cfg.SkinDir), func(s skin.Skin) {
			p.Send(tui.SkinMsg{Skin: s})
		})
		if err != nil {
			logger.WithError(err).Warn("skin hot reload disabled")
		} else {
			g.Go(func() error {
				return w.Run(gctx)
			})
		}
	}

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) {
				return nil
			}
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return errNoTerminal
			}
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logger.Info("session ended")
	return err
}
