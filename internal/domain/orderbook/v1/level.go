package orderbookv1

import (
	"errors"
	"fmt"
)

var (
	ErrNilOrder       = errors.New("order cannot be nil")
	ErrInvalidPrice   = errors.New("price must be positive")
	ErrInvalidQty     = errors.New("quantity must be positive")
	ErrInvalidSide    = errors.New("side must be buy or sell")
	ErrInvalidCommand = errors.New("unknown command type")
	ErrOrderNotFound  = errors.New("order not found")
)

// PriceLevel is the FIFO queue of resting orders at one price, plus a cached
// aggregate of their remaining quantity.
//
// TotalVolume is only ever touched by the methods that mutate the queue, so
// it cannot drift from the queue contents.
type PriceLevel struct {
	Price       float64  `json:"price"`
	Orders      []*Order `json:"orders"`
	TotalVolume int64    `json:"totalVolume"`
}

// NewPriceLevel creates an empty level at the specified price.
func NewPriceLevel(price float64) *PriceLevel {
	return &PriceLevel{
		Price:  price,
		Orders: make([]*Order, 0),
	}
}

// Append adds an order to the tail of the queue: a new arrival has the lowest
// time priority at this price.
func (l *PriceLevel) Append(order *Order) error {
	if order == nil {
		return ErrNilOrder
	}
	if order.Qty <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQty, order.Qty)
	}

	l.Orders = append(l.Orders, order)
	l.TotalVolume += order.Qty

	return nil
}

// Remove deletes an order from the queue and updates the aggregate.
func (l *PriceLevel) Remove(order *Order) error {
	if order == nil {
		return ErrNilOrder
	}

	for i, o := range l.Orders {
		if o == order {
			l.Orders = append(l.Orders[:i], l.Orders[i+1:]...)
			l.TotalVolume -= order.Qty
			return nil
		}
	}

	return ErrOrderNotFound
}

// Reduce shrinks an order's remaining quantity in place. The order keeps its
// queue position and sequence number.
func (l *PriceLevel) Reduce(order *Order, newQty int64) error {
	if order == nil {
		return ErrNilOrder
	}
	if newQty <= 0 || newQty > order.Qty {
		return fmt.Errorf("%w: got %d", ErrInvalidQty, newQty)
	}

	l.TotalVolume -= order.Qty - newQty
	order.Qty = newQty

	return nil
}

// Head returns the order with the highest time priority at this price, or
// nil if the level is empty.
func (l *PriceLevel) Head() *Order {
	if len(l.Orders) == 0 {
		return nil
	}
	return l.Orders[0]
}

// ConsumeHead executes qty against the head order, returning the maker and
// whether it was fully consumed and popped from the queue.
func (l *PriceLevel) ConsumeHead(qty int64) (maker *Order, done bool) {
	maker = l.Orders[0]

	maker.Qty -= qty
	l.TotalVolume -= qty

	if maker.Qty == 0 {
		l.Orders = l.Orders[1:]
		done = true
	}

	return maker, done
}

// IsEmpty checks if the level has no orders.
func (l *PriceLevel) IsEmpty() bool {
	return len(l.Orders) == 0
}

// OrderCount returns the number of orders at this level.
func (l *PriceLevel) OrderCount() int {
	return len(l.Orders)
}

// Validate checks the cached aggregate against the actual queue contents.
func (l *PriceLevel) Validate() error {
	if l.Price <= 0 {
		return fmt.Errorf("%w: level price %f", ErrInvalidPrice, l.Price)
	}

	var calculated int64
	for _, order := range l.Orders {
		if order == nil {
			return fmt.Errorf("nil order found in level")
		}
		if order.Qty < 0 {
			return fmt.Errorf("%w: order has qty %d", ErrInvalidQty, order.Qty)
		}
		calculated += order.Qty
	}

	if calculated != l.TotalVolume {
		return fmt.Errorf("volume mismatch: calculated %d, cached %d", calculated, l.TotalVolume)
	}

	return nil
}
