// Copyright (c) 2025 Neomantra Corp
//
// No teacher analogue — dbn-go has no intraday-window concept. Written
// in the teacher's small-pure-function-with-sentinel-error idiom.

package vwap

import (
	"fmt"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////

// Window is the intraday [StartNs, EndNs) half-open interval the run
// aggregates over, and the bucket width it is sliced into.
type Window struct {
	StartNs uint64
	EndNs   uint64
	GranNs  uint64
}

// BucketCount returns ceil((EndNs-StartNs)/GranNs), the dense number of
// buckets every known symbol is pre-populated with.
func (w Window) BucketCount() int {
	span := w.EndNs - w.StartNs
	return int((span + w.GranNs - 1) / w.GranNs)
}

// BucketKey returns the start of the bucket containing ts, per spec:
// the largest StartNs + k*GranNs <= ts.
func (w Window) BucketKey(ts uint64) uint64 {
	k := (ts - w.StartNs) / w.GranNs
	return w.StartNs + k*w.GranNs
}

///////////////////////////////////////////////////////////////////////////////

// ParseWindow parses two "HH:MM" clock strings into nanosecond offsets
// from the trading day's local midnight. Returns ErrInvalidWindow on a
// malformed clock string or a non-positive span.
func ParseWindow(from, to string) (startNs, endNs uint64, err error) {
	startNs, err = parseClock(from)
	if err != nil {
		return 0, 0, err
	}
	endNs, err = parseClock(to)
	if err != nil {
		return 0, 0, err
	}
	if endNs <= startNs {
		return 0, 0, fmt.Errorf("%w: end %q must be after start %q", ErrInvalidWindow, to, from)
	}
	return startNs, endNs, nil
}

func parseClock(clock string) (uint64, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidWindow, clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q has a bad hour", ErrInvalidWindow, clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q has a bad minute", ErrInvalidWindow, clock)
	}
	secs := int64(hours)*3600 + int64(minutes)*60
	return uint64(secs) * 1_000_000_000, nil
}

///////////////////////////////////////////////////////////////////////////////

// granularityScales maps a unit suffix to its nanosecond scale. An empty
// unit (a bare number) means seconds.
var granularityScales = map[string]float64{
	"":   1e9,
	"s":  1e9,
	"ms": 1e6,
	"us": 1e3,
	"ns": 1,
}

// ParseGranularity parses a "<number><unit?>" string (unit one of ns,
// us, ms, s; missing unit means seconds) into a nanosecond bucket width.
// windowSpanNs bounds the result: it must be positive and no wider than
// the window itself.
func ParseGranularity(s string, windowSpanNs uint64) (uint64, error) {
	numPart, unitPart := splitNumberUnit(s)
	scale, ok := granularityScales[unitPart]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrInvalidGranularity, unitPart, s)
	}
	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidGranularity, s)
	}

	granNs := uint64(value*scale + 0.5)
	if granNs == 0 {
		return 0, fmt.Errorf("%w: %q rounds to zero", ErrInvalidGranularity, s)
	}
	if granNs > windowSpanNs {
		return 0, fmt.Errorf("%w: %q is wider than the window", ErrInvalidGranularity, s)
	}
	return granNs, nil
}

// splitNumberUnit splits a trailing run of alphabetic characters off s,
// returning the numeric prefix and the (possibly empty) unit suffix.
func splitNumberUnit(s string) (number, unit string) {
	i := len(s)
	for i > 0 && isAlpha(s[i-1]) {
		i--
	}
	return s[:i], s[i:]
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
