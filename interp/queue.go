package interp

const initialQueueSize = 8

// frameQueue is a growable ring of frames ordered by time. Popping from the
// front does not release capacity, so steady-state push/pop never allocates.
type frameQueue struct {
	ring  []*Frame
	head  int
	count int
}

func (q *frameQueue) len() int {
	return q.count
}

func (q *frameQueue) front() *Frame {
	if q.count == 0 {
		return nil
	}
	return q.ring[q.head]
}

func (q *frameQueue) back() *Frame {
	if q.count == 0 {
		return nil
	}
	return q.ring[(q.head+q.count-1)%len(q.ring)]
}

func (q *frameQueue) push(f *Frame) {
	if q.count == len(q.ring) {
		q.grow()
	}
	q.ring[(q.head+q.count)%len(q.ring)] = f
	q.count++
}

func (q *frameQueue) pop() *Frame {
	if q.count == 0 {
		return nil
	}
	f := q.ring[q.head]
	q.ring[q.head] = nil
	q.head = (q.head + 1) % len(q.ring)
	q.count--
	return f
}

func (q *frameQueue) grow() {
	size := len(q.ring) * 2
	if size == 0 {
		size = initialQueueSize
	}
	ring := make([]*Frame, size)
	for i := 0; i < q.count; i++ {
		ring[i] = q.ring[(q.head+i)%len(q.ring)]
	}
	q.ring = ring
	q.head = 0
}
