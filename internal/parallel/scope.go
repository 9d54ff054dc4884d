package parallel

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Scope spawns tasks and joins them. Unlike a bare errgroup it never cancels
// siblings: every task runs to completion, and a panicking task is reported
// as a *PanicError instead of crashing the process.
type Scope struct {
	g    errgroup.Group
	errs ErrorCollector
}

// NewScope returns a scope running at most limit tasks at a time.
// A limit <= 0 means no limit.
func NewScope(limit int) *Scope {
	s := &Scope{}
	if limit > 0 {
		s.g.SetLimit(limit)
	}
	return s
}

// Go starts fn as task id. If the scope is at its limit, Go blocks until a
// running task returns.
func (s *Scope) Go(id int, fn func() error) {
	s.g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &PanicError{Value: r, Stack: debug.Stack()}
			}
			if err != nil {
				err = &TaskError{ID: id, Err: err}
				s.errs.SetError(err)
			}
		}()
		return fn()
	})
}

// Wait blocks until every task has returned. It reports the first failure;
// when several tasks failed, the count of the others is appended.
func (s *Scope) Wait() error {
	_ = s.g.Wait()
	err := s.errs.Err()
	if n := s.errs.Count(); n > 1 {
		return fmt.Errorf("%w (and %d more failed tasks)", err, n-1)
	}
	return err
}

// Run opens a scope limited to limit concurrent tasks, lets body spawn into
// it, and returns only after all spawned tasks have finished.
func Run(limit int, body func(s *Scope)) error {
	s := NewScope(limit)
	body(s)
	return s.Wait()
}
