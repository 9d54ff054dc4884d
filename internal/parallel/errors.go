package parallel

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrorCollector records the first non-nil error reported by concurrent
// tasks and counts every failure. The zero value is ready to use.
type ErrorCollector struct {
	mu    sync.Mutex
	err   error
	count atomic.Int64
}

// SetError records err if it is the first failure. Nil errors are ignored.
func (c *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	c.count.Add(1)
	c.mu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.mu.Unlock()
}

// Err returns the first recorded error, or nil.
func (c *ErrorCollector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Count returns the number of non-nil errors reported.
func (c *ErrorCollector) Count() int {
	return int(c.count.Load())
}

// TaskError identifies the task that failed.
type TaskError struct {
	ID  int
	Err error
}

func (e *TaskError) Error() string { return fmt.Sprintf("task %d: %v", e.ID, e.Err) }

func (e *TaskError) Unwrap() error { return e.Err }

// PanicError carries a value recovered from a panicking task.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }
