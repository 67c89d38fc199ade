package input

// Queue is a FIFO of pending events. Backends push every event they observe
// during a tick; the frame loop pops at most one per frame, so bursts are
// spread over consecutive frames instead of being dropped. Consecutive
// wheel events are merged into one, and Close jumps ahead of everything
// pending so a closing window is not held up by a backlog.
//
// A Queue is not safe for concurrent use.
type Queue struct {
	buf  []Event
	head int
}

// Push appends e. None events are discarded.
func (q *Queue) Push(e Event) {
	switch e.Kind {
	case None:
		return
	case Close:
		if q.head > 0 {
			q.head--
			q.buf[q.head] = e
			return
		}
		q.buf = append(q.buf, Event{})
		copy(q.buf[1:], q.buf)
		q.buf[0] = e
		return
	case Wheel:
		if n := len(q.buf); n > q.head && q.buf[n-1].Kind == Wheel {
			q.buf[n-1].Wheel += e.Wheel
			return
		}
	}
	q.buf = append(q.buf, e)
}

// Poll removes and returns the oldest event. It never blocks: with nothing
// pending it returns an Event of kind None.
func (q *Queue) Poll() Event {
	if q.head >= len(q.buf) {
		return Event{}
	}
	e := q.buf[q.head]
	q.head++
	if q.head == len(q.buf) {
		q.buf = q.buf[:0]
		q.head = 0
	}
	return e
}

// Len returns the number of pending events.
func (q *Queue) Len() int { return len(q.buf) - q.head }

// Reset drops every pending event.
func (q *Queue) Reset() {
	q.buf = q.buf[:0]
	q.head = 0
}
