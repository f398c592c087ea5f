package simulatorv1

import (
	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
)

// EventType represents the kind of event on the simulation clock.
type EventType string

const (
	// EventSubmit applies a new-order command to the book.
	EventSubmit EventType = "submit"
	// EventCancel applies a cancel command to the book.
	EventCancel EventType = "cancel"
	// EventModify applies a modify command to the book.
	EventModify EventType = "modify"
	// EventSnapshot records book state and drives strategy ticks.
	EventSnapshot EventType = "snapshot"
)

// Event is one entry on the simulator's priority queue. Events are ordered
// by (Time, Seq); Seq is assigned in scheduling order, which makes the
// whole run reproducible.
type Event struct {
	Time int64
	Seq  uint64
	Type EventType

	// Command carries the book command for non-snapshot events.
	Command orderbookv1.Command

	// Owner is the index of the strategy that issued the command, or -1
	// for ambient order flow.
	Owner int
}

// Action is a command a strategy wants applied at (or after) a given time.
type Action struct {
	Time    int64
	Command orderbookv1.Command
}

// Type maps the action's command onto the simulator event kind.
func (a Action) Type() EventType {
	switch a.Command.Type {
	case orderbookv1.CommandCancel:
		return EventCancel
	case orderbookv1.CommandModify:
		return EventModify
	default:
		return EventSubmit
	}
}
