// Copyright (c) 2025 Neomantra Corp

package vwap_test

import (
	"github.com/neomantra/itch-vwap/vwap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func dayWindow(granNs uint64) vwap.Window {
	return vwap.Window{StartNs: 0, EndNs: uint64(24 * 3600 * 1e9), GranNs: granNs}
}

var _ = Describe("Aggregator", func() {
	Context("window filtering", func() {
		It("drops executions before the window start", func() {
			w := vwap.Window{StartNs: uint64(1e9), EndNs: uint64(2e9), GranNs: uint64(1e9)}
			agg := vwap.NewAggregator(w)
			halt := agg.Observe(1, 0, 100.0, 10)
			Expect(halt).To(BeFalse())
			cells, ok := agg.Grid.Cells(1)
			Expect(ok).To(BeFalse())
			_ = cells
		})

		It("halts at the first timestamp reaching the window end", func() {
			w := vwap.Window{StartNs: 0, EndNs: uint64(2e9), GranNs: uint64(1e9)}
			agg := vwap.NewAggregator(w)
			halt := agg.Observe(1, uint64(2e9), 100.0, 10)
			Expect(halt).To(BeTrue())
			cells, ok := agg.Grid.Cells(1)
			Expect(ok).To(BeFalse())
			_ = cells
		})
	})

	Context("scenario A: single trade, hourly buckets", func() {
		It("repeats the running VWAP across all subsequent buckets", func() {
			agg := vwap.NewAggregator(dayWindow(uint64(3600 * 1e9)))
			agg.Observe(1, 0, 150.0, 100)
			cells, ok := agg.Grid.Cells(1)
			Expect(ok).To(BeTrue())
			Expect(cells).To(HaveLen(24))

			var runningValue float64
			var runningQty uint64
			for _, c := range cells {
				runningValue += c.ValueSum
				runningQty += c.QtySum
				Expect(runningValue / float64(runningQty)).To(Equal(150.0))
			}
		})
	})

	Context("scenario B: two trades in the same bucket", func() {
		It("computes the volume-weighted blend", func() {
			agg := vwap.NewAggregator(dayWindow(uint64(3600 * 1e9)))
			agg.Observe(1, 0, 150.0, 100)
			agg.Observe(1, uint64(1e9), 155.0, 200)

			cells, _ := agg.Grid.Cells(1)
			Expect(cells[0].ValueSum).To(Equal(100.0*150.0 + 200.0*155.0))
			Expect(cells[0].QtySum).To(Equal(uint64(300)))
			Expect(cells[0].VWAP()).To(BeNumerically("~", 153.3333, 0.001))
		})
	})

	Context("scenario C: two hours, disjoint buckets", func() {
		It("carries the running total forward into the next bucket", func() {
			agg := vwap.NewAggregator(dayWindow(uint64(3600 * 1e9)))
			agg.Observe(1, 0, 150.0, 100)
			agg.Observe(1, uint64(3600*1e9), 160.0, 100)

			cells, _ := agg.Grid.Cells(1)
			Expect(cells[0].VWAP()).To(Equal(150.0))

			var runningValue float64
			var runningQty uint64
			runningValue += cells[0].ValueSum
			runningQty += cells[0].QtySum
			runningValue += cells[1].ValueSum
			runningQty += cells[1].QtySum
			Expect(runningValue / float64(runningQty)).To(Equal(155.0))
		})
	})
})
