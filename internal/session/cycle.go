package session

import (
	"time"

	"github.com/Faultbox/live2d-viewer/pkg/motion"
)

// cycle is the handle of a running auto-cycle goroutine.
type cycle struct {
	stop chan struct{}
	done chan struct{}
}

// StartAutoCycle plays an idle motion now and then a contextual motion on
// every tick: idle with the configured probability, motion otherwise.
// A running cycle is replaced, so at most one is active per session.
func (s *Session) StartAutoCycle() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return s.failLocked(err)
	}
	s.stopCycleLocked()

	interval := s.opts.AutoCycleInterval
	s.log.Addf("Auto animation started (every %s)", interval)
	_, _ = s.playContextualLocked(motion.ContextIdle)

	c := &cycle{stop: make(chan struct{}), done: make(chan struct{})}
	s.cycle = c
	go s.runCycle(c, interval)
	return nil
}

// StopAutoCycle stops the running cycle and waits for it to exit. It reports
// whether a cycle was running; the log line is written only in that case.
func (s *Session) StopAutoCycle() bool {
	s.mu.Lock()
	c := s.stopCycleLocked()
	if c != nil {
		s.log.Add("Auto animation stopped")
	}
	s.mu.Unlock()

	if c == nil {
		return false
	}
	<-c.done
	return true
}

// AutoCycling reports whether a cycle is running.
func (s *Session) AutoCycling() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycle != nil
}

// stopCycleLocked signals the running cycle, if any, and detaches it.
// The caller may wait on the returned handle after releasing s.mu.
func (s *Session) stopCycleLocked() *cycle {
	c := s.cycle
	if c == nil {
		return nil
	}
	close(c.stop)
	s.cycle = nil
	return c
}

func (s *Session) runCycle(c *cycle, interval time.Duration) {
	defer close(c.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.cycle != c {
				s.mu.Unlock()
				return
			}
			ctx := motion.CycleContext(s.selector.Source(), s.opts.IdleProbability)
			_, _ = s.playContextualLocked(ctx)
			s.mu.Unlock()
		}
	}
}
