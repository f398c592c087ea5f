package orderbookv1

// Fill represents a single execution between a resting (maker) order and an
// incoming (taker) order. Fills are produced once and never mutated.
//
// Price is always the maker's price: price improvement goes to the resting
// side. Sequence is drawn from the book's global counter, so the fill stream
// of a replayed command sequence is reproducible byte for byte.
type Fill struct {
	MakerID   uint64  `json:"makerID"`
	TakerID   uint64  `json:"takerID"`
	Price     float64 `json:"price"`
	Qty       int64   `json:"qty"`
	Sequence  uint64  `json:"sequence"`
	TakerSide Side    `json:"takerSide"`
}

// MakerSide returns the side of the resting order in this fill.
func (f Fill) MakerSide() Side {
	return f.TakerSide.Opposite()
}

// Quote is a (price, aggregate quantity) pair for one price level.
type Quote struct {
	Price float64 `json:"price"`
	Qty   int64   `json:"qty"`
}

// Depth is an ordered view of the top levels of both sides, best first.
type Depth struct {
	Bids []Quote `json:"bids"`
	Asks []Quote `json:"asks"`
}
