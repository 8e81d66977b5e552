// Copyright (c) 2025 Neomantra Corp
//
// Orchestrates §4's C7->C1->C2->(C3,C4,C5)->C6 pipeline. Grounded on
// dbn-go's cmd/dbn-go-file/main.go thin-command-calls-a-function shape,
// and on cmd/dbn-go-hist/main.go's use of dustin/go-humanize for
// progress reporting.

package driver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/neomantra/itch-vwap/itch"
	"github.com/neomantra/itch-vwap/vwap"
)

///////////////////////////////////////////////////////////////////////////////

// Options configures one run of the pipeline.
type Options struct {
	InputPath   string // path to the ITCH feed, gzip-compressed or raw
	OutputDir   string // directory the output CSV is written into
	TimeFrom    string // "HH:MM", window start
	TimeTo      string // "HH:MM", window end
	Granularity string // "<number><unit?>", bucket width
	Ticker      string // optional single-ticker filter

	// Progress, if non-nil, is called periodically with the number of
	// bytes consumed so far. Advisory only; must not affect semantics.
	Progress func(bytesRead uint64)

	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

///////////////////////////////////////////////////////////////////////////////

// Run executes one end-to-end pipeline pass: parses the window and
// granularity, scans the ITCH feed, aggregates running VWAP, and writes
// the output CSV at <OutputDir>/<basename-without-extension>.csv. On any
// fatal error, no output file is written — partial CSVs are never
// produced (spec §7).
func Run(ctx context.Context, opts Options) error {
	log := opts.logger()

	startNs, endNs, err := vwap.ParseWindow(opts.TimeFrom, opts.TimeTo)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	granNs, err := vwap.ParseGranularity(opts.Granularity, endNs-startNs)
	if err != nil {
		return fmt.Errorf("granularity: %w", err)
	}
	window := vwap.Window{StartNs: startNs, EndNs: endNs, GranNs: granNs}
	log.Info("parsed window", "start_ns", startNs, "end_ns", endNs, "gran_ns", granNs, "buckets", window.BucketCount())

	src, closer, err := itch.OpenSource(opts.InputPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", opts.InputPath, err)
	}
	defer closer.Close()

	dir := itch.NewSymbolDirectory()
	prices := itch.NewOrderPriceCache()
	agg := vwap.NewAggregator(window)

	if err := scan(ctx, src, dir, prices, agg, opts.Progress, log); err != nil {
		return fmt.Errorf("scanning %s: %w", opts.InputPath, err)
	}
	log.Info("scan complete", "symbols", dir.Len(), "cached_orders", prices.Len())

	var buf bytes.Buffer
	if err := vwap.WriteRunningVWAP(&buf, dir, agg.Grid, opts.Ticker); err != nil {
		return fmt.Errorf("emitting VWAP: %w", err)
	}

	outPath := outputPath(opts.OutputDir, opts.InputPath)
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Info("wrote output", "path", outPath, "bytes", humanize.Bytes(uint64(buf.Len())))
	return nil
}

// scan drives the frame-by-frame decode loop: C1 (itch.FrameReader) into
// C2 (message decode) fanning out to C3/C4/C5. It stops cleanly on a
// market-close system event, on the aggregator's window-end halt signal,
// or at end of stream; any other error is fatal and propagated.
func scan(
	ctx context.Context,
	src io.Reader,
	dir *itch.SymbolDirectory,
	prices *itch.OrderPriceCache,
	agg *vwap.Aggregator,
	progress func(uint64),
	log *slog.Logger,
) error {
	fr := itch.NewFrameReader(src)

	const progressEvery = 1_000_000
	messageCount := 0

	for fr.Next() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		messageCount++
		if progress != nil && messageCount%progressEvery == 0 {
			progress(fr.BytesRead())
		}

		halt, err := handleMessage(fr.Type(), fr.Body(), dir, prices, agg, log)
		if err != nil {
			return err
		}
		if halt {
			break
		}
	}

	if err := fr.Err(); err != nil && err != io.EOF {
		return err
	}
	if progress != nil {
		progress(fr.BytesRead())
	}
	return nil
}

// handleMessage decodes one (type, body) frame and applies it to the
// directory, price cache, or aggregator per spec §4.2. It returns
// halt=true when the scan should stop: a market-close system event, or
// the aggregator signaling the window's hard right edge has been
// reached.
func handleMessage(
	msgType byte,
	body []byte,
	dir *itch.SymbolDirectory,
	prices *itch.OrderPriceCache,
	agg *vwap.Aggregator,
	log *slog.Logger,
) (halt bool, err error) {
	switch msgType {
	case itch.MsgSystemEvent:
		var ev itch.SystemEvent
		if err := ev.Fill_Raw(body); err != nil {
			return false, err
		}
		switch ev.EventCode {
		case itch.EventMarketOpen:
			log.Debug("market open", "ts_ns", ev.TimestampNs)
		case itch.EventMarketClose:
			log.Debug("market close", "ts_ns", ev.TimestampNs)
			return true, nil
		}

	case itch.MsgStockDirectory:
		var sd itch.StockDirectory
		if err := sd.Fill_Raw(body); err != nil {
			return false, err
		}
		dir.Put(sd.StockLocate, sd.Ticker)

	case itch.MsgAddOrder, itch.MsgAddOrderMPID:
		var ao itch.AddOrder
		if err := ao.Fill_Raw(body); err != nil {
			return false, err
		}
		prices.Put(ao.OrderRef, ao.Price)

	case itch.MsgOrderExecuted:
		var e itch.OrderExecuted
		if err := e.Fill_Raw(body); err != nil {
			return false, err
		}
		price, _ := prices.Price(e.OrderRef) // absent reference soft-fails to 0.0, per spec §4.2
		locate := stockLocateFromBody(body)
		return agg.Observe(locate, e.TimestampNs, price, e.Shares), nil

	case itch.MsgOrderExecutedWithPrice:
		var c itch.OrderExecutedWithPrice
		if err := c.Fill_Raw(body); err != nil {
			return false, err
		}
		if c.Printable != itch.PrintableYes {
			return false, nil
		}
		locate := stockLocateFromBody(body)
		return agg.Observe(locate, c.TimestampNs, c.Price, c.Shares), nil

	case itch.MsgTrade:
		var t itch.Trade
		if err := t.Fill_Raw(body); err != nil {
			return false, err
		}
		locate := stockLocateFromBody(body)
		return agg.Observe(locate, t.TimestampNs, t.Price, t.Shares), nil
	}
	return false, nil
}

// stockLocateFromBody reads the stock-locate code common to the first
// two bytes of every ITCH message body.
func stockLocateFromBody(body []byte) uint16 {
	if len(body) < 2 {
		return 0
	}
	return uint16(body[0])<<8 | uint16(body[1])
}

// outputPath returns <outputDir>/<basename-without-extension>.csv,
// overwriting any prior file at that path (os.WriteFile truncates).
func outputPath(outputDir, inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, base+".csv")
}
