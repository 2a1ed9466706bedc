package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aretw0/flash/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flash",
	Short: "Flash asks a language model one question and prints the answer",
	Long: `Flash reads one message from stdin, runs it through a START -> chat_bot -> END graph
backed by a hosted chat model, and prints the reply. It also renders the extension icons.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to a rotating file instead of stderr")
	rootCmd.PersistentFlags().String("trace-file", "", "Export OpenTelemetry spans to this file")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file on exit")
}

// loadConfig resolves the configuration: file and environment first, then explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	overrideString(cmd, "log-level", &cfg.LogLevel)
	overrideString(cmd, "log-file", &cfg.LogFile)
	overrideString(cmd, "trace-file", &cfg.TraceFile)
	overrideString(cmd, "metrics-file", &cfg.MetricsFile)
	overrideString(cmd, "provider", &cfg.Provider)
	overrideString(cmd, "model", &cfg.Model)
	overrideString(cmd, "base-url", &cfg.BaseURL)

	if f := cmd.Flags().Lookup("markdown"); f != nil && f.Changed {
		cfg.Markdown, _ = cmd.Flags().GetBool("markdown")
	}
	if f := cmd.Flags().Lookup("timeout"); f != nil && f.Changed {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}

	return cfg, nil
}

// overrideString copies a flag into dst when the user set it. Flags absent from cmd are ignored.
func overrideString(cmd *cobra.Command, name string, dst *string) {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return
	}
	*dst = f.Value.String()
}
