package utils

import (
	"sync/atomic"
)

// LockFreeCircularBuffer keeps the last size items. Writers and readers never block;
// a reader racing a writer may see a slot that is about to be replaced.
type LockFreeCircularBuffer[T any] struct {
	data []atomic.Pointer[T]
	head atomic.Int64
}

func NewLockFreeCircularBuffer[T any](size int) *LockFreeCircularBuffer[T] {
	if size < 1 {
		size = 1
	}
	return &LockFreeCircularBuffer[T]{
		data: make([]atomic.Pointer[T], size),
	}
}

func (cb *LockFreeCircularBuffer[T]) Add(item *T) {
	pos := cb.head.Add(1) - 1
	cb.data[pos%int64(len(cb.data))].Store(item)
}

// GetAll returns the retained items, oldest first.
func (cb *LockFreeCircularBuffer[T]) GetAll() []*T {
	head := cb.head.Load()
	size := int64(len(cb.data))
	count := min(head, size)

	result := make([]*T, 0, count)
	for pos := head - count; pos < head; pos++ {
		if item := cb.data[pos%size].Load(); item != nil {
			result = append(result, item)
		}
	}
	return result
}

func (cb *LockFreeCircularBuffer[T]) Len() int {
	return int(min(cb.head.Load(), int64(len(cb.data))))
}
