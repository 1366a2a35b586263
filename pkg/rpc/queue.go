package rpc

import "sync"

// Queue runs submitted jobs concurrently, each on its own goroutine, off the
// caller's goroutine. Jobs are not ordered with respect to each other.
type Queue struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewQueue returns an open queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Go schedules job and reports whether it was accepted. A closed queue
// accepts nothing.
func (q *Queue) Go(job func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.wg.Add(1)
	q.mu.Unlock()

	go func() {
		defer q.wg.Done()
		job()
	}()
	return true
}

// Close stops accepting jobs and waits for the in-flight ones to return.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.wg.Wait()
}
