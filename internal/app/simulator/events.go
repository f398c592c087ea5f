package simulator

import (
	simulatorv1 "github.com/muhammadchandra19/microbook/internal/domain/simulator/v1"
)

// eventQueue is a min-heap of events ordered by (Time, Seq). Seq breaks
// ties in scheduling order, which keeps runs reproducible.
type eventQueue []*simulatorv1.Event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].Time == q[j].Time {
		return q[i].Seq < q[j].Seq
	}
	return q[i].Time < q[j].Time
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(*simulatorv1.Event))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}
