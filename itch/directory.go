// Copyright (c) 2025 Neomantra Corp
//
// Grounded on symbol_map.go's map-wrapper shape: a thin, single-writer
// map with Put/Get, no eviction, no locking (the driver is the only
// mutator, per spec's single-threaded concurrency model).

package itch

// SymbolDirectory maps a stock-locate code to its ticker symbol,
// populated by MsgStockDirectory messages. Re-announcements overwrite;
// no conflict is raised.
type SymbolDirectory struct {
	byLocate map[uint16]string
}

// NewSymbolDirectory returns an empty SymbolDirectory.
func NewSymbolDirectory() *SymbolDirectory {
	return &SymbolDirectory{byLocate: make(map[uint16]string)}
}

// Put records (or overwrites) the ticker for a stock-locate code.
func (d *SymbolDirectory) Put(locate uint16, ticker string) {
	d.byLocate[locate] = ticker
}

// Ticker returns the ticker for a stock-locate code, and whether it is known.
func (d *SymbolDirectory) Ticker(locate uint16) (string, bool) {
	t, ok := d.byLocate[locate]
	return t, ok
}

// Locates returns every stock-locate code currently in the directory.
// Order is unspecified.
func (d *SymbolDirectory) Locates() []uint16 {
	locates := make([]uint16, 0, len(d.byLocate))
	for l := range d.byLocate {
		locates = append(locates, l)
	}
	return locates
}

// Len returns the number of distinct stock-locate codes known.
func (d *SymbolDirectory) Len() int { return len(d.byLocate) }

///////////////////////////////////////////////////////////////////////////////

// OrderPriceCache maps an order reference to the limit price it was
// added at, populated by Add Order messages. Entries are never evicted
// during a run (spec's invariant #2) — an order executed without its
// own price looks its price up here.
type OrderPriceCache struct {
	byRef map[uint64]float64
}

// NewOrderPriceCache returns an empty OrderPriceCache.
func NewOrderPriceCache() *OrderPriceCache {
	return &OrderPriceCache{byRef: make(map[uint64]float64)}
}

// Put records (or overwrites) the price for an order reference.
func (c *OrderPriceCache) Put(ref uint64, price float64) {
	c.byRef[ref] = price
}

// Price returns the cached price for an order reference, and whether it
// is known. A missing reference is a soft failure for the caller (spec
// §4.2: priced at 0, execution still contributes shares).
func (c *OrderPriceCache) Price(ref uint64) (float64, bool) {
	p, ok := c.byRef[ref]
	return p, ok
}

// Len returns the number of distinct order references cached.
func (c *OrderPriceCache) Len() int { return len(c.byRef) }
