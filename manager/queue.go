// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manager

// queue is a FIFO of deferred events. It is not safe for concurrent
// use: the manager only touches it with its table lock held.
type queue[T any] struct {
	items []T
	head  int
}

// Send adds v to the end of the queue.
func (q *queue[T]) Send(v T) {
	q.items = append(q.items, v)
}

// Next removes and returns the first value of the queue,
// and whether there was one.
func (q *queue[T]) Next() (T, bool) {
	var zero T
	if q.head == len(q.items) {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return v, true
}

// Len returns the number of queued values.
func (q *queue[T]) Len() int {
	return len(q.items) - q.head
}

// Filter removes the values for which keep returns false, keeping the
// order of the others, and returns how many it removed.
func (q *queue[T]) Filter(keep func(v T) bool) int {
	kept := q.items[:0]
	for _, v := range q.items[q.head:] {
		if keep(v) {
			kept = append(kept, v)
		}
	}
	removed := q.Len() - len(kept)
	clear(q.items[len(kept):])
	q.items = kept
	q.head = 0
	return removed
}

// Clear removes all of the values.
func (q *queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}
