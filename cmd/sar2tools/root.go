package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sar2tools/internal/logging"
)

var (
	logLevel  string
	logFormat string
	logPath   string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "sar2tools",
	Short: "Search and Rescue II authoring toolkit",
	Long:  "sar2tools renders the SaR II parameter manual and generates city and crowd scenery.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		opts := logging.FromEnv()
		if cmd.Flags().Changed("log-level") || opts.Level == "" {
			opts.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") || opts.Format == "" {
			opts.Format = logFormat
		}
		if cmd.Flags().Changed("log-path") || opts.File == "" {
			opts.File = logPath
		}
		l, closer := logging.NewWithOptions(os.Stderr, opts)
		closeLog = closer
		slog.SetDefault(l)
		cmd.SetContext(logging.NewContext(cmd.Context(), l))
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeLog(); cerr != nil {
		fmt.Fprintln(os.Stderr, "close log:", cerr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format on stderr (text or json)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-path", "", "Also write JSON logs to this rotated file")
	rootCmd.AddCommand(manualCmd)
	rootCmd.AddCommand(cityCmd)
	rootCmd.AddCommand(crowdCmd)
	rootCmd.AddCommand(replayCmd)
}
