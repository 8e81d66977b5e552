// Copyright (c) 2025 Neomantra Corp
//
// Field layouts grounded on the NASDAQ TotalView-ITCH 5.0 spec and on
// other_examples' tienpsm-go-trader itch-handler.go message struct
// shapes, folded into dbn-go's structs.go Fill_Raw(body []byte) error
// convention: one method per message type that fills a struct from its
// raw body bytes, all offsets relative to the body (the type header is
// already consumed by FrameReader).

package itch

import "encoding/binary"

///////////////////////////////////////////////////////////////////////////////

// SystemEvent is a MsgSystemEvent ('S') message: timestamp and event code.
type SystemEvent struct {
	TimestampNs uint64
	EventCode   byte
}

// Fill_Raw fills s from a MsgSystemEvent body (11 bytes).
func (s *SystemEvent) Fill_Raw(body []byte) error {
	if len(body) < 11 {
		return ErrMalformedBody
	}
	s.TimestampNs = TimestampFromBE6(body[2:8])
	s.EventCode = body[8]
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// StockDirectory is a MsgStockDirectory ('R') message: stock-locate to
// ticker mapping.
type StockDirectory struct {
	StockLocate uint16
	Ticker      string
}

// Fill_Raw fills s from a MsgStockDirectory body (38 bytes).
func (s *StockDirectory) Fill_Raw(body []byte) error {
	if len(body) < 18 {
		return ErrMalformedBody
	}
	s.StockLocate = binary.BigEndian.Uint16(body[0:2])
	s.Ticker = TrimSymbol(body[10:18])
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// AddOrder is a MsgAddOrder ('A') or MsgAddOrderMPID ('F') message: only
// the order reference and limit price are kept, since the VWAP core
// never retains side, timestamp, or shares for an order.
type AddOrder struct {
	OrderRef uint64
	Price    float64
}

// Fill_Raw fills a from an Add Order body. 'A' and 'F' share the same
// first 35 bytes, which is all this decoder reads.
func (a *AddOrder) Fill_Raw(body []byte) error {
	if len(body) < 31 {
		return ErrMalformedBody
	}
	a.OrderRef = binary.BigEndian.Uint64(body[4:12])
	a.Price = PriceFromRaw(binary.BigEndian.Uint32(body[27:31]))
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// OrderExecuted is a MsgOrderExecuted ('E') message: no price of its
// own, priced from the order price cache by the caller.
type OrderExecuted struct {
	TimestampNs uint64
	OrderRef    uint64
	Shares      uint32
}

// Fill_Raw fills e from a MsgOrderExecuted body (30 bytes).
func (e *OrderExecuted) Fill_Raw(body []byte) error {
	if len(body) < 24 {
		return ErrMalformedBody
	}
	e.TimestampNs = TimestampFromBE6(body[2:8])
	e.OrderRef = binary.BigEndian.Uint64(body[12:20])
	e.Shares = binary.BigEndian.Uint32(body[20:24])
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// OrderExecutedWithPrice is a MsgOrderExecutedWithPrice ('C') message:
// carries its own price, gated on the Printable flag.
type OrderExecutedWithPrice struct {
	TimestampNs uint64
	OrderRef    uint64
	Shares      uint32
	Printable   byte
	Price       float64
}

// Fill_Raw fills c from a MsgOrderExecutedWithPrice body (35 bytes).
func (c *OrderExecutedWithPrice) Fill_Raw(body []byte) error {
	if len(body) < 33 {
		return ErrMalformedBody
	}
	c.TimestampNs = TimestampFromBE6(body[2:8])
	c.OrderRef = binary.BigEndian.Uint64(body[12:20])
	c.Shares = binary.BigEndian.Uint32(body[20:24])
	c.Printable = body[28]
	c.Price = PriceFromRaw(binary.BigEndian.Uint32(body[29:33]))
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// Trade is a MsgTrade ('P') message: a non-cross trade, priced and
// sized directly from the message itself, never the order price cache.
type Trade struct {
	TimestampNs uint64
	Shares      uint32
	Price       float64
}

// Fill_Raw fills t from a MsgTrade body (43 bytes).
func (t *Trade) Fill_Raw(body []byte) error {
	if len(body) < 26 {
		return ErrMalformedBody
	}
	t.TimestampNs = TimestampFromBE6(body[2:8])
	t.Shares = binary.BigEndian.Uint32(body[14:18])
	t.Price = PriceFromRaw(binary.BigEndian.Uint32(body[22:26]))
	return nil
}
