package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ijalalfrz/travel-planner-service/internal/app/config"
	"github.com/ijalalfrz/travel-planner-service/internal/app/dto"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	configFile string
	format     string
	outputFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "travel-planner",
	Short: "Search flights and hotels and plan trips from the terminal",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level := config.LogLeveler(logLevel)
		logger.InitStructuredLogger(level, os.Stderr)

		if err := validateFormat(format); err != nil {
			return err
		}

		return dto.InitValidator()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", ".env", "path to the .env config file")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", formatTable, "output format: table, markdown, csv or json")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to this file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr")

	rootCmd.AddCommand(flightsCmd, hotelsCmd, planCmd, normalizeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Debug("command failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
