// Copyright (c) 2025 Neomantra Corp

package itch_test

import (
	"github.com/neomantra/itch-vwap/itch"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Helpers", func() {
	Context("conversion", func() {
		It("decodes a raw price at four decimal places", func() {
			Expect(itch.PriceFromRaw(1500000)).To(Equal(150.0))
			Expect(itch.PriceFromRaw(1)).To(Equal(0.0001))
		})
		It("zero-extends a 6-byte big-endian timestamp", func() {
			Expect(itch.TimestampFromBE6([]byte{0, 0, 0, 0, 0, 1})).To(Equal(uint64(1)))
			Expect(itch.TimestampFromBE6([]byte{0x03, 0x46, 0x30, 0xb8, 0xa0, 0x00})).To(Equal(uint64(3600) * 1_000_000_000))
		})
	})
	Context("modification", func() {
		It("trims trailing space padding off a symbol field", func() {
			Expect(itch.TrimSymbol([]byte("AAPL    "))).To(Equal("AAPL"))
		})
		It("does not malform an already-dense symbol", func() {
			Expect(itch.TrimSymbol([]byte("ABCDEFGH"))).To(Equal("ABCDEFGH"))
		})
	})
})
