package headless

import (
	"sort"
	"sync"

	"github.com/ziadkadry99/globe-explorer/internal/globe"
)

// Scheduler is a frame scheduler driven by explicit Step calls.
type Scheduler struct {
	mu      sync.Mutex
	next    globe.FrameHandle
	pending map[globe.FrameHandle]func()
	last    func()
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[globe.FrameHandle]func())}
}

// RequestFrame implements globe.FrameScheduler.
func (s *Scheduler) RequestFrame(fn func()) globe.FrameHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.pending[s.next] = fn
	s.last = fn
	return s.next
}

// CancelFrame implements globe.FrameScheduler.
func (s *Scheduler) CancelFrame(h globe.FrameHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, h)
}

// Pending returns the number of queued callbacks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Last returns the most recently requested callback, even if it has since
// run or been cancelled.
func (s *Scheduler) Last() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Step runs the callbacks queued before the call, in request order, and
// returns how many ran. Callbacks requested during the step wait for the
// next one.
func (s *Scheduler) Step() int {
	s.mu.Lock()
	handles := make([]globe.FrameHandle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	fns := make([]func(), 0, len(handles))
	for _, h := range handles {
		fns = append(fns, s.pending[h])
		delete(s.pending, h)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Run steps n times and returns the total number of callbacks run.
func (s *Scheduler) Run(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += s.Step()
	}
	return total
}
