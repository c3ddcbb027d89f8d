package scheduler

import "time"

// startClockLocked opens a new clock epoch and starts the 1s ticker
// goroutine for it.
func (s *Scheduler) startClockLocked() {
	s.stopClockLocked()
	s.clockGen++
	gen := s.clockGen
	stop := make(chan struct{})
	s.clockStop = stop
	go s.runClock(gen, stop)
}

// stopClockLocked cancels the active clock. Bumping the generation
// guarantees a tick already in flight cannot be processed afterwards.
func (s *Scheduler) stopClockLocked() {
	if s.clockStop != nil {
		close(s.clockStop)
		s.clockStop = nil
	}
	s.clockGen++
}

func (s *Scheduler) runClock(gen int, stop chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick(gen)
		}
	}
}

// scheduleSettleLocked arms the Completed -> Idle transition. The timer
// is tied to the scheduler lifetime: Stop and Close cancel it, and a
// late fire against a moved-on epoch or state is a no-op.
func (s *Scheduler) scheduleSettleLocked() {
	s.cancelSettleLocked()
	gen := s.clockGen
	s.settle = time.AfterFunc(settleDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.clockGen || s.state != Completed {
			return
		}
		s.state = Idle
	})
}

func (s *Scheduler) cancelSettleLocked() {
	if s.settle != nil {
		s.settle.Stop()
		s.settle = nil
	}
}
