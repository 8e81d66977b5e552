// Copyright (c) 2025 Neomantra Corp

package itch_test

import (
	"bytes"
	"io"

	"github.com/neomantra/itch-vwap/itch"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FrameReader", func() {
	Context("known message types", func() {
		It("frames a single message and then hits io.EOF", func() {
			body := make([]byte, 38)
			stream := append([]byte{itch.MsgStockDirectory}, body...)

			fr := itch.NewFrameReader(bytes.NewReader(stream))
			Expect(fr.Next()).To(BeTrue())
			Expect(fr.Type()).To(Equal(itch.MsgStockDirectory))
			Expect(fr.Body()).To(HaveLen(38))

			Expect(fr.Next()).To(BeFalse())
			Expect(fr.Err()).To(Equal(io.EOF))
		})

		It("frames consecutive messages in stream order", func() {
			stream := append([]byte{itch.MsgSystemEvent}, make([]byte, 11)...)
			stream = append(stream, itch.MsgTrade)
			stream = append(stream, make([]byte, 43)...)

			fr := itch.NewFrameReader(bytes.NewReader(stream))
			Expect(fr.Next()).To(BeTrue())
			Expect(fr.Type()).To(Equal(itch.MsgSystemEvent))
			Expect(fr.Next()).To(BeTrue())
			Expect(fr.Type()).To(Equal(itch.MsgTrade))
			Expect(fr.Next()).To(BeFalse())
		})
	})

	Context("unknown message types", func() {
		It("skips an unknown type byte without consuming a body", func() {
			// '!' is not in the size table; the byte right after it is
			// re-interpreted as the next message's type header.
			stream := append([]byte{'!', itch.MsgSystemEvent}, make([]byte, 11)...)

			fr := itch.NewFrameReader(bytes.NewReader(stream))
			Expect(fr.Next()).To(BeTrue())
			Expect(fr.Type()).To(Equal(itch.MsgSystemEvent))
		})
	})

	Context("short reads", func() {
		It("fails on a truncated body of a known message type", func() {
			stream := append([]byte{itch.MsgTrade}, make([]byte, 10)...) // want 43, got 10

			fr := itch.NewFrameReader(bytes.NewReader(stream))
			Expect(fr.Next()).To(BeFalse())
			Expect(fr.Err()).To(HaveOccurred())
			Expect(fr.Err()).ToNot(Equal(io.EOF))
		})
	})

	Context("progress", func() {
		It("reports bytes read including header bytes", func() {
			stream := append([]byte{itch.MsgTrade}, make([]byte, 43)...)
			fr := itch.NewFrameReader(bytes.NewReader(stream))
			Expect(fr.Next()).To(BeTrue())
			Expect(fr.BytesRead()).To(Equal(uint64(44)))
		})
	})
})
