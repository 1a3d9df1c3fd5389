package pretty

// Queue is a single-ended FIFO. Rendering drains a snapshot copy front to
// back, so the caller's queue is never mutated by printing it. The zero
// value is an empty queue ready for use.
type Queue[T any] struct {
	items []T
}

// Push appends item at the back of the queue.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the front item. The second return is false when
// the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item, true
}

// Front returns the front item without removing it.
func (q Queue[T]) Front() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	return q.items[0], true
}

// Len returns the number of queued items.
func (q Queue[T]) Len() int {
	return len(q.items)
}

// queueValue lets render recognize any Queue instantiation.
type queueValue interface {
	queueValues() []any
}

// queueValues returns a front-to-back snapshot of the queue.
func (q Queue[T]) queueValues() []any {
	out := make([]any, len(q.items))
	for i, item := range q.items {
		out[i] = item
	}
	return out
}
