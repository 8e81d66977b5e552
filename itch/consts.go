// Copyright (c) 2025 Neomantra Corp

// Package itch decodes NASDAQ TotalView-ITCH 5.0 binary market-data
// messages: a one-byte type header per message, framed by a fixed
// per-type body-length table (no length prefix exists on the wire).
package itch

///////////////////////////////////////////////////////////////////////////////

// Message type bytes, as announced by the NASDAQ TotalView-ITCH 5.0
// specification.  Only the subset this package decodes get doc comments
// describing their extracted fields; the rest are recognized solely so
// their body length can be skipped.
const (
	MsgSystemEvent            byte = 'S' // timestamp, event code
	MsgStockDirectory         byte = 'R' // stock-locate, symbol
	MsgStockTradingAction     byte = 'H'
	MsgRegSHO                 byte = 'Y'
	MsgMarketParticipantPos   byte = 'L'
	MsgMWCBDeclineLevel       byte = 'V'
	MsgMWCBStatus             byte = 'W'
	MsgIPOQuotingPeriod       byte = 'K'
	MsgLULDAuctionCollar      byte = 'J'
	MsgOperationalHalt        byte = 'h'
	MsgAddOrder               byte = 'A' // order ref, price
	MsgAddOrderMPID           byte = 'F' // same layout as A in the first 35 bytes
	MsgOrderExecuted          byte = 'E' // order ref, shares; price from cache
	MsgOrderExecutedWithPrice byte = 'C' // printable flag, price
	MsgOrderCancel            byte = 'X'
	MsgOrderDelete            byte = 'D'
	MsgOrderReplace           byte = 'U'
	MsgTrade                  byte = 'P' // shares, price, direct
	MsgCrossTrade             byte = 'Q'
	MsgBrokenTrade            byte = 'B'
	MsgNOII                   byte = 'I'
	MsgRPII                   byte = 'N'
)

// PrintableYes is the value of the Printable flag on a MsgOrderExecutedWithPrice
// ('C') message that marks the execution as contributing to displayed
// volume and VWAP.
const PrintableYes byte = 'Y'

// Event codes carried by a MsgSystemEvent ('S') message.
const (
	EventMarketOpen  byte = 'Q'
	EventMarketClose byte = 'M'
)

// sizeTable is the canonical ITCH 5.0 body-length table: bytes following
// the one-byte type header, per spec §6. A type absent from this table
// is unknown to this decoder and its body is never read — the next byte
// in the stream is taken as the next message's type.
var sizeTable = map[byte]int{
	MsgSystemEvent:            11,
	MsgStockDirectory:         38,
	MsgStockTradingAction:     24,
	MsgRegSHO:                 19,
	MsgMarketParticipantPos:   25,
	MsgMWCBDeclineLevel:       34,
	MsgMWCBStatus:             11,
	MsgIPOQuotingPeriod:       27,
	MsgLULDAuctionCollar:      34,
	MsgOperationalHalt:        20,
	MsgAddOrder:               35,
	MsgAddOrderMPID:           39,
	MsgOrderExecuted:          30,
	MsgOrderExecutedWithPrice: 35,
	MsgOrderCancel:            22,
	MsgOrderDelete:            18,
	MsgOrderReplace:           34,
	MsgTrade:                  43,
	MsgCrossTrade:             39,
	MsgBrokenTrade:            18,
	MsgNOII:                   49,
	MsgRPII:                   19,
}

// BodyLen returns the body length (not counting the 1-byte type header)
// for a known message type, and whether the type is known at all.
func BodyLen(msgType byte) (int, bool) {
	n, ok := sizeTable[msgType]
	return n, ok
}
