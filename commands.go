package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CristiGvl/corecheck/api"
	"github.com/CristiGvl/corecheck/internal/config"
	"github.com/CristiGvl/corecheck/internal/report"
	"github.com/CristiGvl/corecheck/internal/sysinfo"
)

const (
	version = "1.0.0"
	author  = "CristiGvl"
)

// options collects flag values that override the config file
type options struct {
	configPath string
	format     string
	multiplier int
	verbose    bool
	bind       string
	port       string

	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "corecheck",
		Short:        "Identify the local processor and operating system",
		Long:         "corecheck reports the processor brand, signature, architecture, clock speeds\nand core counts together with the operating system version of this machine.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := sysinfo.New(opts.cfg.Multiplier)
			r := svc.Report(cmd.Context())
			return report.Render(cmd.OutOrStdout(), r, opts.cfg.Format, report.Banner{
				Name:    "CoreCheck",
				Version: version,
				Author:  author,
			})
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "Output format: text, json or yaml")
	rootCmd.Flags().IntVarP(&opts.multiplier, "multiplier", "m", 0, "Multiplier used to estimate the base clock (default from config, 38)")

	rootCmd.AddCommand(newServeCommand(opts))
	return rootCmd
}

func newServeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the report as JSON over a local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := sysinfo.New(opts.cfg.Multiplier)
			server, err := api.NewServer(svc, version)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			// Handle graceful shutdown
			go func() {
				sigChan := make(chan os.Signal, 1)
				signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
				<-sigChan

				if err := server.Shutdown(); err != nil {
					log.Errorf("Error during shutdown: %v", err)
				}
			}()

			address := opts.cfg.Server.Bind + ":" + opts.cfg.Server.Port
			log.Infof("Starting corecheck server on %s", address)
			return server.Start(address)
		},
	}

	cmd.Flags().StringVar(&opts.bind, "bind", "", "IP address to bind the server to (default 127.0.0.1)")
	cmd.Flags().StringVar(&opts.port, "port", "", "Port to run the server on (default 8080)")
	cmd.Flags().IntVarP(&opts.multiplier, "multiplier", "m", 0, "Multiplier used to estimate the base clock")
	return cmd
}

// load reads the config file and applies flags the user set explicitly
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("multiplier") {
		cfg.Multiplier = o.multiplier
	}
	if flags.Changed("bind") {
		cfg.Server.Bind = o.bind
	}
	if flags.Changed("port") {
		cfg.Server.Port = o.port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if o.verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())

	o.cfg = cfg
	return nil
}
