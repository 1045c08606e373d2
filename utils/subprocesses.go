package utils

import "golang.org/x/sync/errgroup"

// Subprocesses tracks goroutines owned by a component so Close can wait for
// them to return.
type Subprocesses struct {
	group errgroup.Group
}

func (s *Subprocesses) Go(f func() error) {
	s.group.Go(f)
}

// Wait blocks until every goroutine has returned and reports the first
// error among them.
func (s *Subprocesses) Wait() error {
	return s.group.Wait()
}
