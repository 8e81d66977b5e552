// Copyright (c) 2025 Neomantra Corp
//
// Single cobra root command, unlike dbn-go-file's multi-subcommand
// layout, since this tool has exactly one operation. --verbose / slog
// wiring and requireNoErrorWithoutPrint follow dbn-go-mcp-meta/main.go.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/neomantra/itch-vwap/driver"
)

///////////////////////////////////////////////////////////////////////////////

var (
	verbose bool

	timeFrom    string
	timeTo      string
	granularity string
	ticker      string
	outputDir   string
)

func requireNoErrorWithoutPrint(err error) {
	if err != nil {
		os.Exit(1)
	}
}

///////////////////////////////////////////////////////////////////////////////

func main() {
	cobra.OnInitialize()

	rootCmd.Flags().StringVar(&timeFrom, "time_from", "09:30", "Window start, HH:MM")
	rootCmd.Flags().StringVar(&timeTo, "time_to", "16:00", "Window end, HH:MM")
	rootCmd.Flags().StringVar(&granularity, "granularity", "3600s", "Bucket width: <number><unit>, unit in {ns, us, ms, s}")
	rootCmd.Flags().StringVar(&ticker, "ticker", "", "Restrict output to a single ticker symbol")
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", ".", "Output directory for the VWAP CSV")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	err := rootCmd.Execute()
	requireNoErrorWithoutPrint(err)
}

///////////////////////////////////////////////////////////////////////////////

var rootCmd = &cobra.Command{
	Use:   "itch-vwap fileName",
	Short: "itch-vwap computes running per-symbol VWAP buckets from a TotalView-ITCH 5.0 feed",
	Long: `itch-vwap reads a NASDAQ TotalView-ITCH 5.0 binary feed (optionally
gzip-compressed), buckets executed volume into a fixed-granularity
intraday window, and writes one running-VWAP CSV row per symbol.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

		err := driver.Run(context.Background(), driver.Options{
			InputPath:   args[0],
			OutputDir:   outputDir,
			TimeFrom:    timeFrom,
			TimeTo:      timeTo,
			Granularity: granularity,
			Ticker:      ticker,
			Logger:      logger,
			Progress: func(bytesRead uint64) {
				logger.Debug("progress", "bytes_read", humanize.Comma(int64(bytesRead)))
			},
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}
