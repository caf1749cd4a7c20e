package api

import (
	"context"

	"github.com/spf13/cobra"
)

type serveFlags struct {
	configPath string
	port       string
	seed       bool
	logLevel   string
}

// NewRootCommand builds the restaurant-api CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "restaurant-api",
		Short:         "In-memory restaurant ordering API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCommand())
	return cmd
}

func newServeCommand() *cobra.Command {
	var flags serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dishes, users and orders HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return Run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a YAML config file (defaults to CONFIG_PATH)")
	cmd.Flags().StringVar(&flags.port, "port", "", "HTTP listen port")
	cmd.Flags().BoolVar(&flags.seed, "seed", true, "load the seed fixture at startup")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
	return cmd
}

// resolveConfig applies explicitly set flags over the file and environment configuration.
func resolveConfig(cmd *cobra.Command, flags serveFlags) (Config, error) {
	cfg, err := LoadConfig(flags.configPath)
	if err != nil {
		return Config{}, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flags.port
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed.Enabled = flags.seed
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	return cfg, cfg.Validate()
}

// Execute runs the CLI with ctx as the root context.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
