package main

import (
	"fmt"
	"os"

	"github.com/qyinm/pokedextui/config"
	"github.com/spf13/cobra"
)

var configFlags struct {
	project bool
	force   bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pokedex configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a pokedex configuration file",
	Long: `Create a pokedex configuration file with the default settings.

By default, creates a global config at ~/.config/pokedex/pokedex.yml.
Use --project to create a project-local config in the current directory.`,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg.MCP.APIKey = ""
		b, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	configInitCmd.Flags().BoolVarP(&configFlags.force, "force", "f", false, "Overwrite existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	target := config.GlobalPath()
	if configFlags.project {
		target = config.ProjectPath()
	}

	if _, err := os.Stat(target); err == nil && !configFlags.force {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", target)
	}

	var err error
	if configFlags.project {
		err = config.WriteProject(config.Default())
	} else {
		err = config.WriteGlobal(config.Default())
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to: %s\n", target)
	return nil
}
