// Copyright (c) 2025 Neomantra Corp
//
// Builds raw ITCH message bytes for the end-to-end scenarios in
// run_test.go. Offsets mirror itch/messages.go exactly.

package driver_test

import (
	"encoding/binary"

	"github.com/neomantra/itch-vwap/itch"
)

func putBE6(dst []byte, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	copy(dst, buf[2:8])
}

func frame(msgType byte, body []byte) []byte {
	return append([]byte{msgType}, body...)
}

func systemEvent(ts uint64, eventCode byte) []byte {
	body := make([]byte, 11)
	putBE6(body[2:8], ts)
	body[8] = eventCode
	return frame(itch.MsgSystemEvent, body)
}

func stockDirectory(locate uint16, ticker string) []byte {
	body := make([]byte, 38)
	binary.BigEndian.PutUint16(body[0:2], locate)
	copy(body[10:18], ticker+"        "[:8-len(ticker)])
	return frame(itch.MsgStockDirectory, body)
}

func addOrder(orderRef uint64, price float64) []byte {
	body := make([]byte, 35)
	binary.BigEndian.PutUint64(body[4:12], orderRef)
	binary.BigEndian.PutUint32(body[27:31], uint32(price*itch.PriceScale+0.5))
	return frame(itch.MsgAddOrder, body)
}

func orderExecuted(locate uint16, ts uint64, orderRef uint64, shares uint32) []byte {
	body := make([]byte, 30)
	binary.BigEndian.PutUint16(body[0:2], locate)
	putBE6(body[2:8], ts)
	binary.BigEndian.PutUint64(body[12:20], orderRef)
	binary.BigEndian.PutUint32(body[20:24], shares)
	return frame(itch.MsgOrderExecuted, body)
}

func orderExecutedWithPrice(locate uint16, ts uint64, orderRef uint64, shares uint32, printable byte, price float64) []byte {
	body := make([]byte, 35)
	binary.BigEndian.PutUint16(body[0:2], locate)
	putBE6(body[2:8], ts)
	binary.BigEndian.PutUint64(body[12:20], orderRef)
	binary.BigEndian.PutUint32(body[20:24], shares)
	body[28] = printable
	binary.BigEndian.PutUint32(body[29:33], uint32(price*itch.PriceScale+0.5))
	return frame(itch.MsgOrderExecutedWithPrice, body)
}

func trade(locate uint16, ts uint64, shares uint32, price float64) []byte {
	body := make([]byte, 43)
	binary.BigEndian.PutUint16(body[0:2], locate)
	putBE6(body[2:8], ts)
	binary.BigEndian.PutUint32(body[14:18], shares)
	binary.BigEndian.PutUint32(body[22:26], uint32(price*itch.PriceScale+0.5))
	return frame(itch.MsgTrade, body)
}

func concat(frames ...[]byte) []byte {
	var out []byte
	for _, f := range frames {
		out = append(out, f...)
	}
	return out
}
