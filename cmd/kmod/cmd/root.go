/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/kenshimod/pkg/config"
	"github.com/ssargent/kenshimod/pkg/di"
	"github.com/ssargent/kenshimod/pkg/logging"
	"github.com/ssargent/kenshimod/pkg/store"
)

type contextKey string

const (
	storeKey  contextKey = "store"
	configKey contextKey = "config"
)

var container *di.Container

// SetContainer injects the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

// NewRootCmd builds the kmod command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kmod",
		Short: "Inspect and edit Kenshi mod files",
		Long: `kmod reads and writes the binary .mod and .base files used by Kenshi.

It can show header metadata, list and dump records, sample text for language
detection, verify lossless round trips, and export or import record strings
for translation.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupStore,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default is "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")

	rootCmd.AddCommand(
		newInfoCmd(),
		newRecordsCmd(),
		newSummaryCmd(),
		newDumpCmd(),
		newRoundtripCmd(),
		newStringsCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setupStore loads configuration, builds the logger and puts the mod store
// in the command context
func setupStore(cmd *cobra.Command, args []string) error {
	if container == nil {
		return errors.New("dependency container not initialized")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	st := container.NewModStore(cfg, logger)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, configKey, cfg)
	cmd.SetContext(context.WithValue(ctx, storeKey, st))
	return nil
}

// loadConfig reads the --config file, or the default config file when it
// exists, and applies the logging flags on top
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg := config.DefaultConfig()

	switch {
	case path != "":
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case config.ConfigExists(config.GetDefaultConfigPath()):
		loaded, err := config.LoadConfig(config.GetDefaultConfigPath())
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.Logging.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func storeFrom(cmd *cobra.Command) (*store.ModStore, error) {
	st, ok := cmd.Context().Value(storeKey).(*store.ModStore)
	if !ok {
		return nil, errors.New("store not found in context")
	}
	return st, nil
}

func configFrom(cmd *cobra.Command) (*config.Config, error) {
	cfg, ok := cmd.Context().Value(configKey).(*config.Config)
	if !ok {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}
