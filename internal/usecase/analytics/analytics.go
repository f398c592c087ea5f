// Package analytics computes book-level indicators and records them as time
// series over a simulation run. Everything reads the query surface only:
// spread and imbalance come from cached level aggregates, never from
// order-by-order traversal.
package analytics

import (
	"math"

	simulatorv1 "github.com/muhammadchandra19/microbook/internal/domain/simulator/v1"
)

// Spread returns best ask minus best bid. Unreported when either side is
// empty.
func Spread(book simulatorv1.BookView) (float64, bool) {
	bid, okBid := book.BestBid()
	ask, okAsk := book.BestAsk()
	if !okBid || !okAsk {
		return 0, false
	}
	return ask.Price - bid.Price, true
}

// Imbalance returns (bidVolume - askVolume) / (bidVolume + askVolume)
// across the top levels of each side, in [-1, 1]. Unreported on an empty
// book.
func Imbalance(book simulatorv1.BookView, levels int) (float64, bool) {
	depth := book.Depth(levels)

	var bids, asks int64
	for _, q := range depth.Bids {
		bids += q.Qty
	}
	for _, q := range depth.Asks {
		asks += q.Qty
	}

	total := bids + asks
	if total == 0 {
		return 0, false
	}
	return float64(bids-asks) / float64(total), true
}

// TimeSeries collects per-snapshot book indicators. Undefined points are
// stored as NaN so series stay aligned with T.
type TimeSeries struct {
	T         []int64
	Mid       []float64
	Spread    []float64
	Imbalance []float64
}

// Record samples the book at the given simulation time.
func (ts *TimeSeries) Record(now int64, book simulatorv1.BookView, imbalanceLevels int) {
	ts.T = append(ts.T, now)

	if mid, ok := book.Midprice(); ok {
		ts.Mid = append(ts.Mid, mid)
	} else {
		ts.Mid = append(ts.Mid, math.NaN())
	}

	if spr, ok := Spread(book); ok {
		ts.Spread = append(ts.Spread, spr)
	} else {
		ts.Spread = append(ts.Spread, math.NaN())
	}

	if imb, ok := Imbalance(book, imbalanceLevels); ok {
		ts.Imbalance = append(ts.Imbalance, imb)
	} else {
		ts.Imbalance = append(ts.Imbalance, math.NaN())
	}
}

// Len returns the number of recorded samples.
func (ts *TimeSeries) Len() int {
	return len(ts.T)
}
