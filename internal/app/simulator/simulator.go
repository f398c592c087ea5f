// Package simulator runs a discrete-event simulation loop around the
// matching engine: a min-heap of (time, seq)-ordered events drives order
// flow, strategy ticks and snapshot recording against one book instance.
// The loop is the single writer the engine's concurrency model calls for.
package simulator

import (
	"container/heap"
	"errors"
	"math"

	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
	simulatorv1 "github.com/muhammadchandra19/microbook/internal/domain/simulator/v1"
	"github.com/muhammadchandra19/microbook/internal/usecase/analytics"
	"github.com/muhammadchandra19/microbook/internal/usecase/orderbook"
	"github.com/muhammadchandra19/microbook/internal/usecase/orderflow"
	"github.com/muhammadchandra19/microbook/internal/usecase/strategy"
	"github.com/muhammadchandra19/microbook/pkg/logger"
)

// ambientOwner marks events that belong to the synthetic flow rather than
// a hosted strategy.
const ambientOwner = -1

// Snapshot captures the book state at one snapshot event. Mid is NaN when
// either side is empty.
type Snapshot struct {
	Time  int64
	Mid   float64
	Depth orderbookv1.Depth
}

// Result aggregates everything a run produced.
type Result struct {
	Fills     []orderbookv1.Fill
	Snapshots []Snapshot

	// PnL holds each strategy's mark-to-market series, sampled on
	// snapshot events; PnLTimes carries the matching timestamps.
	PnL      map[string][]float64
	PnLTimes []int64

	// Metrics holds each strategy's execution counters.
	Metrics map[string]*strategy.ExecutionMetrics

	// Series is the book indicator time series.
	Series analytics.TimeSeries
}

// Simulator hosts one book, zero or more strategies and an event queue.
type Simulator struct {
	book       *orderbook.Orderbook
	strategies []simulatorv1.Strategy
	log        logger.Interface
	opts       *Options

	queue   eventQueue
	lastSeq uint64
	now     int64

	// orderID -> strategy index, for fill attribution
	owners map[uint64]int
}

// NewSimulator creates a simulator around the given book and strategies.
func NewSimulator(book *orderbook.Orderbook, strategies []simulatorv1.Strategy, log logger.Interface, opts *Options) *Simulator {
	if opts == nil {
		opts = DefaultOptions()
	}

	return &Simulator{
		book:       book,
		strategies: strategies,
		log:        log,
		opts:       opts,
		queue:      make(eventQueue, 0),
		owners:     make(map[uint64]int),
	}
}

// Book returns the simulated book's query surface.
func (s *Simulator) Book() simulatorv1.BookView {
	return s.book
}

// Now returns the current simulation time.
func (s *Simulator) Now() int64 {
	return s.now
}

// ScheduleCommand puts an ambient-flow command on the queue.
func (s *Simulator) ScheduleCommand(t int64, cmd orderbookv1.Command) {
	s.schedule(t, cmd, ambientOwner)
}

// ScheduleFlow puts a whole generated flow on the queue.
func (s *Simulator) ScheduleFlow(flow []orderflow.Scheduled) {
	for _, sc := range flow {
		s.ScheduleCommand(sc.Time, sc.Command)
	}
}

// ScheduleSnapshots schedules snapshot events across [start, end] at the
// configured interval. Snapshots double as strategy tick hooks.
func (s *Simulator) ScheduleSnapshots(start, end int64) {
	for t := start; t <= end; t += s.opts.SnapshotInterval {
		s.lastSeq++
		heap.Push(&s.queue, &simulatorv1.Event{
			Time:  t,
			Seq:   s.lastSeq,
			Type:  simulatorv1.EventSnapshot,
			Owner: ambientOwner,
		})
	}
}

func (s *Simulator) schedule(t int64, cmd orderbookv1.Command, owner int) {
	s.lastSeq++
	heap.Push(&s.queue, &simulatorv1.Event{
		Time:    t,
		Seq:     s.lastSeq,
		Type:    simulatorv1.Action{Time: t, Command: cmd}.Type(),
		Command: cmd,
		Owner:   owner,
	})
}

// Run processes events up to and including time `until` and returns the
// accumulated result. Replaying the same schedule yields an identical
// result: the queue order is fully determined by (Time, Seq) and the book
// itself is deterministic.
func (s *Simulator) Run(until int64) *Result {
	out := &Result{
		PnL:     make(map[string][]float64),
		Metrics: make(map[string]*strategy.ExecutionMetrics),
	}
	for _, st := range s.strategies {
		out.Metrics[st.Name()] = &strategy.ExecutionMetrics{}
	}

	for s.queue.Len() > 0 && s.queue[0].Time <= until {
		ev := heap.Pop(&s.queue).(*simulatorv1.Event)
		s.now = ev.Time

		switch ev.Type {
		case simulatorv1.EventSubmit, simulatorv1.EventCancel, simulatorv1.EventModify:
			s.applyCommand(ev, out)
		case simulatorv1.EventSnapshot:
			s.snapshot(out)
		}
	}

	return out
}

// applyCommand applies one book command and routes its consequences.
func (s *Simulator) applyCommand(ev *simulatorv1.Event, out *Result) {
	res, err := s.book.Apply(ev.Command)
	if err != nil {
		// Cancelling a quote that has already traded away is routine.
		if !errors.Is(err, orderbookv1.ErrOrderNotFound) {
			s.log.Error(err,
				logger.Field{Key: "time", Value: ev.Time},
				logger.Field{Key: "command", Value: ev.Command.Type},
			)
		}
		if ev.Command.Type == orderbookv1.CommandCancel {
			delete(s.owners, ev.Command.OrderID)
		}
		return
	}

	if ev.Owner != ambientOwner {
		st := s.strategies[ev.Owner]
		st.OnResult(ev.Command, res)

		if res.Status == orderbookv1.StatusResting || res.Status == orderbookv1.StatusPartiallyFilled {
			s.owners[res.OrderID] = ev.Owner
		}
	}
	if ev.Command.Type == orderbookv1.CommandCancel {
		delete(s.owners, ev.Command.OrderID)
	}

	if len(res.Fills) == 0 {
		return
	}

	out.Fills = append(out.Fills, res.Fills...)
	for _, m := range out.Metrics {
		m.RecordMarketVolume(res.Fills)
	}

	for _, fill := range res.Fills {
		s.attribute(out, fill, fill.MakerID, fill.MakerSide(), ev, res)
		s.attribute(out, fill, fill.TakerID, fill.TakerSide, ev, res)
	}
}

// attribute routes one side of a fill to the owning strategy, if any. The
// taker of an immediate fill is not in the owners map yet, so the event's
// own command result is consulted too.
func (s *Simulator) attribute(out *Result, fill orderbookv1.Fill, orderID uint64, side orderbookv1.Side, ev *simulatorv1.Event, res *orderbookv1.Result) {
	idx, ok := s.owners[orderID]
	if !ok {
		if ev.Owner == ambientOwner || orderID != res.OrderID {
			return
		}
		idx = ev.Owner
	}

	st := s.strategies[idx]
	st.OnFill(fill, side)
	if m := out.Metrics[st.Name()]; m != nil {
		m.OnFill(fill, side)
	}
}

// snapshot records analytics and lets strategies act.
func (s *Simulator) snapshot(out *Result) {
	out.Series.Record(s.now, s.book, s.opts.DepthLevels)

	mid := math.NaN()
	if m, ok := s.book.Midprice(); ok {
		mid = m
	}
	out.Snapshots = append(out.Snapshots, Snapshot{
		Time:  s.now,
		Mid:   mid,
		Depth: s.book.Depth(s.opts.DepthLevels),
	})

	for i, st := range s.strategies {
		for _, action := range st.OnTick(s.now, s.book) {
			t := action.Time
			if t < s.now {
				t = s.now
			}
			s.schedule(t, action.Command, i)
		}
	}

	out.PnLTimes = append(out.PnLTimes, s.now)
	for _, st := range s.strategies {
		if mtm, ok := st.MarkToMarket(s.book); ok {
			out.PnL[st.Name()] = append(out.PnL[st.Name()], mtm)
		} else {
			out.PnL[st.Name()] = append(out.PnL[st.Name()], math.NaN())
		}
	}
}
