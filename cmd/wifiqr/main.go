package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/itsChris/wifiqr/internal/config"
	"github.com/itsChris/wifiqr/internal/i18n"
	"github.com/itsChris/wifiqr/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errReported means the command already printed what went wrong.
var errReported = errors.New("reported")

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wifiqr",
		Short:         "WiFi QR code generator",
		Long:          "wifiqr turns WiFi network details into a QR code that phones can scan to join the network.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "path to config file")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "log format (text, json)")
	root.PersistentFlags().Bool("dev-mode", false, "enable development mode")
	root.PersistentFlags().String("lang", "", "message language (en, es, or a locale like es_ES.UTF-8)")

	root.AddCommand(
		newGenerateCmd(),
		newPayloadCmd(),
		newValidateCmd(),
		newVersionCmd(),
		newConfigCmd(),
	)

	return root
}

// cmdEnv is what every command needs after configuration is loaded.
type cmdEnv struct {
	ctx    context.Context
	cfg    *config.Config
	logger *slog.Logger
	locale i18n.Locale
	out    io.Writer
	errOut io.Writer
}

func setup(cmd *cobra.Command, task string) (*cmdEnv, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Dev mode forces debug logging.
	level := cfg.Logging.Level
	if cfg.Logging.Dev && level == "warn" {
		level = "debug"
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithTaskID(ctx, logging.GenerateTaskID(task))

	logger := logging.New(logging.Config{
		Level:   logging.ParseLevel(level),
		Format:  cfg.Logging.Format,
		DevMode: cfg.Logging.Dev,
		Output:  cmd.ErrOrStderr(),
	})
	logger = logging.FromContext(ctx, logger)

	locale := i18n.Match(cfg.Locale)

	logger.Debug("wifiqr_starting",
		"version", version,
		"go_version", runtime.Version(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"config", configPath,
		"locale", locale.String(),
		"output_dir", cfg.Output.Dir,
		"component", "main",
	)

	return &cmdEnv{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		locale: locale,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wifiqr %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "config invalid:\n%v\n", err)
				return errReported
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "config ok")
			fmt.Fprintf(out, "  output.dir:      %s\n", cfg.Output.Dir)
			fmt.Fprintf(out, "  output.filename: %s\n", cfg.Output.Filename)
			fmt.Fprintf(out, "  logging.level:   %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  logging.format:  %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  locale:          %s (%s)\n", cfg.Locale, i18n.Match(cfg.Locale))
			return nil
		},
	})

	return configCmd
}
