package orderbookv1

import "sort"

// Ladder holds one side's price levels sorted best-first: descending prices
// for bids, ascending for asks. There is at most one level per price.
//
// The slice stays sorted across its lifetime; a new level is placed with a
// binary-search locate plus positional insert instead of re-sorting the
// whole ladder. Iteration order is fully determined by price, never by map
// or hash order.
type Ladder struct {
	side   Side
	levels []*PriceLevel
}

// NewLadder creates an empty ladder for the given side.
func NewLadder(side Side) *Ladder {
	return &Ladder{
		side:   side,
		levels: make([]*PriceLevel, 0),
	}
}

// Side returns which side of the book this ladder holds.
func (l *Ladder) Side() Side {
	return l.side
}

// better reports whether price a has strictly higher priority than price b.
func (l *Ladder) better(a, b float64) bool {
	if l.side == SideBuy {
		return a > b
	}
	return a < b
}

// locate returns the index at which price sits, or would be inserted.
func (l *Ladder) locate(price float64) int {
	return sort.Search(len(l.levels), func(i int) bool {
		return !l.better(l.levels[i].Price, price)
	})
}

// Best returns the highest-priority level, if any.
func (l *Ladder) Best() (*PriceLevel, bool) {
	if len(l.levels) == 0 {
		return nil, false
	}
	return l.levels[0], true
}

// Find returns the level at exactly the given price, if present.
func (l *Ladder) Find(price float64) (*PriceLevel, bool) {
	i := l.locate(price)
	if i < len(l.levels) && l.levels[i].Price == price {
		return l.levels[i], true
	}
	return nil, false
}

// GetOrCreate returns the level at the given price, creating and inserting
// it in sorted position when absent.
func (l *Ladder) GetOrCreate(price float64) *PriceLevel {
	i := l.locate(price)
	if i < len(l.levels) && l.levels[i].Price == price {
		return l.levels[i]
	}

	level := NewPriceLevel(price)
	l.levels = append(l.levels, nil)
	copy(l.levels[i+1:], l.levels[i:])
	l.levels[i] = level

	return level
}

// RemoveLevel drops the level at the given price, typically once emptied.
func (l *Ladder) RemoveLevel(price float64) {
	i := l.locate(price)
	if i < len(l.levels) && l.levels[i].Price == price {
		l.levels = append(l.levels[:i], l.levels[i+1:]...)
	}
}

// Len returns the number of populated price levels.
func (l *Ladder) Len() int {
	return len(l.levels)
}

// Depth returns (price, cached aggregate) for the top n levels, best first.
// No order queue is traversed.
func (l *Ladder) Depth(n int) []Quote {
	if n > len(l.levels) {
		n = len(l.levels)
	}

	quotes := make([]Quote, 0, n)
	for _, level := range l.levels[:n] {
		quotes = append(quotes, Quote{Price: level.Price, Qty: level.TotalVolume})
	}
	return quotes
}

// TotalVolume returns the summed cached aggregates across all levels.
func (l *Ladder) TotalVolume() int64 {
	var total int64
	for _, level := range l.levels {
		total += level.TotalVolume
	}
	return total
}

// Levels returns the underlying best-first level sequence. Callers must not
// reorder it.
func (l *Ladder) Levels() []*PriceLevel {
	return l.levels
}
