package bfs

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// ring is a bounded FIFO. Each vertex enters at most once per traversal,
// so a ring of the graph's capacity never overflows.
type ring struct {
	buf         []queueItem
	front, size int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]queueItem, capacity)}
}

func (q *ring) empty() bool { return q.size == 0 }

func (q *ring) push(it queueItem) error {
	if q.size == len(q.buf) {
		return errQueueFull
	}
	q.buf[(q.front+q.size)%len(q.buf)] = it
	q.size++

	return nil
}

// pop removes the oldest item; callers check empty first.
func (q *ring) pop() queueItem {
	it := q.buf[q.front]
	q.front = (q.front + 1) % len(q.buf)
	q.size--

	return it
}
