// Copyright (c) 2025 Neomantra Corp
//
// Grounded on dbn-go's internal/mcp_data/cache.go, which itself reaches
// for stdlib encoding/csv rather than a third-party CSV writer — so does
// this, rather than pulling in an unwired dependency.

package vwap

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/neomantra/itch-vwap/itch"
)

// WriteRunningVWAP performs the §4.6 second pass: for every symbol in
// dir (or just the one named by ticker, if non-empty), it sweeps grid's
// buckets in order, accumulates running (value, qty) sums, and writes
// one CSV row of running VWAP per bucket. The header row is
// "Stock Ticker" followed by one rendered bucket-start label per
// column. Returns ErrUnknownTicker if a non-empty ticker filter matches
// no directory entry — the caller must not have created an output file
// yet when that happens, per spec's "no partial CSVs" policy.
func WriteRunningVWAP(w io.Writer, dir *itch.SymbolDirectory, grid *Grid, ticker string) error {
	locates, err := selectLocates(dir, ticker)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	keys := grid.BucketKeys()
	header := make([]string, 0, len(keys)+1)
	header = append(header, "Stock Ticker")
	for _, k := range keys {
		header = append(header, FormatBucketLabel(k))
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, locate := range locates {
		symbol, _ := dir.Ticker(locate)
		cells, ok := grid.Cells(locate)
		if !ok {
			cells = make([]Cell, len(keys))
		}

		row := make([]string, 0, len(cells)+1)
		row = append(row, symbol)

		var runningValue float64
		var runningQty uint64
		for _, cell := range cells {
			runningValue += cell.ValueSum
			runningQty += cell.QtySum
			var vwap float64
			if runningQty > 0 {
				vwap = runningValue / float64(runningQty)
			}
			row = append(row, strconv.FormatFloat(vwap, 'f', -1, 64))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// selectLocates returns the stock-locate codes to emit rows for, sorted
// for deterministic output order. A non-empty ticker restricts the
// result to that single symbol, failing with ErrUnknownTicker if no
// directory entry matches it.
func selectLocates(dir *itch.SymbolDirectory, ticker string) ([]uint16, error) {
	all := dir.Locates()
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	if ticker == "" {
		return all, nil
	}
	for _, locate := range all {
		if sym, _ := dir.Ticker(locate); sym == ticker {
			return []uint16{locate}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTicker, ticker)
}

///////////////////////////////////////////////////////////////////////////////

const (
	nsPerSecond = 1_000_000_000
	nsPerMinute = 60 * nsPerSecond
	nsPerHour   = 60 * nsPerMinute
)

// FormatBucketLabel renders a bucket's start nanosecond offset as
// "HH:MM:SS", or "HH:MM:SS.ddd…" with trailing zeros stripped (and no
// trailing dot) when the boundary carries a sub-second part.
func FormatBucketLabel(ns uint64) string {
	hours := ns / nsPerHour
	ns %= nsPerHour
	minutes := ns / nsPerMinute
	ns %= nsPerMinute
	seconds := ns / nsPerSecond
	fracNs := ns % nsPerSecond

	label := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	if fracNs == 0 {
		return label
	}

	frac := fmt.Sprintf("%09d", fracNs)
	frac = strings.TrimRight(frac, "0")
	return label + "." + frac
}
