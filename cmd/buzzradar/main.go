package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osegura/buzzradar/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "buzzradar",
		Short: "Score financial news feeds by buzz and surface per-asset trends",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(verbose)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(fetchCmd())
	root.AddCommand(trendsCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(runCmd())
	root.AddCommand(configCmd())

	return root
}

func fetchCmd() *cobra.Command {
	var (
		jsonOutput bool
		limit      int
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch all feeds once and print the ranked stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(jsonOutput, limit, all)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().IntVar(&limit, "limit", 15, "max stories to show")
	cmd.Flags().BoolVar(&all, "all", false, "skip watchlist and buzz threshold filters")
	return cmd
}

func trendsCmd() *cobra.Command {
	var (
		jsonOutput bool
		window     int
	)

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Fetch feeds and show per-asset trend aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrends(jsonOutput, window)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().IntVar(&window, "window", 0, "trend window in minutes (default: from config)")
	return cmd
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch feeds and export the ranked table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (default: from config)")
	return cmd
}

func runCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the daemon with autorefresh, alerts and HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "server port (default: from config)")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or update the configuration file",
	}
	cmd.AddCommand(configSetAlertsCmd())
	return cmd
}

func configSetAlertsCmd() *cobra.Command {
	var (
		enable  bool
		token   string
		chatID  string
		minBuzz float64
	)

	cmd := &cobra.Command{
		Use:   "set-alerts",
		Short: "Save Telegram alert settings to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSetAlerts(enable, token, chatID, minBuzz)
		},
	}

	cmd.Flags().BoolVar(&enable, "enable", false, "enable push alerts")
	cmd.Flags().StringVar(&token, "token", "", "Telegram bot token")
	cmd.Flags().StringVar(&chatID, "chat-id", "", "Telegram chat ID")
	cmd.Flags().Float64Var(&minBuzz, "min-buzz", -1, "minimum buzz threshold (unchanged if negative)")
	return cmd
}
