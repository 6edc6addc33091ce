package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/qyinm/pokedextui/config"
	"github.com/qyinm/pokedextui/logger"
	"github.com/qyinm/pokedextui/pokeapi"
	"github.com/qyinm/pokedextui/types"
	"github.com/qyinm/pokedextui/ui"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

var rootFlags struct {
	generation int
	apiURL     string
	logLevel   string
	logFile    string
	skipTitle  bool
}

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "A retro Pokédex for the terminal",
	Long: `pokedex browses the national Pokédex from PokeAPI in a handheld style TUI.

Pick a generation, search by name or number, and open any entry to read its
stats, moves, evolution line and flavor text. Works with keyboard and mouse.`,
	RunE: runTUI,
}

func init() {
	rootCmd.Flags().IntVarP(&rootFlags.generation, "generation", "g", 0, "Generation to load on start, 1-9 (default from config)")
	rootCmd.Flags().StringVar(&rootFlags.apiURL, "api-url", "", "PokeAPI base url (default from config)")
	rootCmd.Flags().StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&rootFlags.logFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&rootFlags.skipTitle, "skip-title", false, "Skip the title screen")

	rootCmd.AddCommand(configCmd)
}

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("command failed: %v", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := pokeapi.New(
		pokeapi.WithBaseURL(cfg.APIBaseURL),
		pokeapi.WithTimeout(cfg.HTTPTimeout),
		pokeapi.WithUserAgent(cfg.UserAgent),
	)

	m := ui.NewModel(client, ui.Options{
		Generation: types.Generation(cfg.Generation),
		Context:    ctx,
		SkipTitle:  rootFlags.skipTitle,
	})
	defer m.Close()

	logger.Info("starting pokedex %s against %s", version, cfg.APIBaseURL)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// loadConfig reads the config files and environment, applies flag overrides
// and sets up the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("generation") {
		cfg.Generation = rootFlags.generation
	}
	if cmd.Flags().Changed("api-url") {
		cfg.APIBaseURL = rootFlags.apiURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = rootFlags.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = rootFlags.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	return cfg, nil
}
