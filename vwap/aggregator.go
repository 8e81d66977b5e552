// Copyright (c) 2025 Neomantra Corp
//
// Grounded on the data-flow shape of original_source/engine/hourly_vwap.py's
// cal_vwap/flush_trades (group executions by bucket, accumulate amount &
// volume), translated from a buffered pandas groupby into a streaming
// online fold: a symbol's dense bucket grid is lazily allocated on its
// first observed event, per spec's design note that this is equivalent
// to the two-pass buffer-then-fold variant.

package vwap

// Cell is one (symbol, bucket) accumulator cell: running notional and
// share sums for executions that landed in that bucket.
type Cell struct {
	ValueSum float64 // Sum(price * qty)
	QtySum   uint64  // Sum(qty)
}

// VWAP returns the cell's own volume-weighted average price, or 0 if no
// volume has landed in it yet.
func (c Cell) VWAP() float64 {
	if c.QtySum == 0 {
		return 0
	}
	return c.ValueSum / float64(c.QtySum)
}

///////////////////////////////////////////////////////////////////////////////

// Grid is a dense per-symbol sequence of Cells spanning a Window, keyed
// by stock-locate code. A symbol's slice is always exactly
// Window.BucketCount() long once allocated, so that empty buckets are
// emitted as zero (spec's Bucket grid invariant).
type Grid struct {
	window Window
	cells  map[uint16][]Cell
}

// NewGrid returns an empty Grid over w.
func NewGrid(w Window) *Grid {
	return &Grid{window: w, cells: make(map[uint16][]Cell)}
}

// EnsureSymbol allocates locate's dense bucket slice if it does not
// already exist. Safe to call repeatedly.
func (g *Grid) EnsureSymbol(locate uint16) {
	if _, ok := g.cells[locate]; !ok {
		g.cells[locate] = make([]Cell, g.window.BucketCount())
	}
}

// Add accumulates one priced, bucketed execution into locate's grid,
// allocating the symbol's grid on first sight if needed. The caller is
// responsible for window filtering (Aggregator.Observe does this).
func (g *Grid) Add(locate uint16, ts uint64, price float64, qty uint32) {
	g.EnsureSymbol(locate)
	idx := g.bucketIndex(ts)
	cell := &g.cells[locate][idx]
	cell.ValueSum += price * float64(qty)
	cell.QtySum += uint64(qty)
}

func (g *Grid) bucketIndex(ts uint64) int {
	return int((ts - g.window.StartNs) / g.window.GranNs)
}

// Cells returns locate's dense bucket slice and whether it is known.
func (g *Grid) Cells(locate uint16) ([]Cell, bool) {
	c, ok := g.cells[locate]
	return c, ok
}

// BucketKeys returns the ascending BucketKey for each bucket index.
func (g *Grid) BucketKeys() []uint64 {
	n := g.window.BucketCount()
	keys := make([]uint64, n)
	for i := 0; i < n; i++ {
		keys[i] = g.window.StartNs + uint64(i)*g.window.GranNs
	}
	return keys
}

///////////////////////////////////////////////////////////////////////////////

// Aggregator applies spec's window filter ahead of Grid accumulation:
// executions before the window are dropped, and the first execution at
// or past the window's end halts the entire parse (the window is a
// hard right-edge on stream order, not a filter over the whole stream).
type Aggregator struct {
	window Window
	Grid   *Grid
}

// NewAggregator returns an Aggregator over w with a fresh Grid.
func NewAggregator(w Window) *Aggregator {
	return &Aggregator{window: w, Grid: NewGrid(w)}
}

// Observe records one priced execution event. It returns halt=true when
// ts has reached the window's end, signaling the caller to stop pulling
// further frames from the stream; the event that triggered halt is
// itself not recorded.
func (a *Aggregator) Observe(locate uint16, ts uint64, price float64, qty uint32) (halt bool) {
	if ts < a.window.StartNs {
		return false
	}
	if ts >= a.window.EndNs {
		return true
	}
	a.Grid.Add(locate, ts, price, qty)
	return false
}
