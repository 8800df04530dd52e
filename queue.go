package lescan

import "sync"

// Queue is the upper dispatch context. The Scanner posts every sink
// invocation to it and never calls the sink inline, so one Queue serializes
// all upper-layer callbacks. Post must not block the caller.
type Queue interface {
	Post(f func())
}

// Loop is a Queue backed by a single goroutine. Posted work runs in FIFO
// order; the backlog is unbounded so Post returns immediately.
type Loop struct {
	mu     sync.Mutex
	cond   *sync.Cond
	work   []func()
	closed bool
	done   chan struct{}
}

// NewLoop starts the consumer goroutine and returns the running Loop.
func NewLoop() *Loop {
	l := &Loop{done: make(chan struct{})}
	l.cond = sync.NewCond(&l.mu)
	go l.run()
	return l
}

// Post queues f for execution. Work posted after Close is dropped with a
// warning.
func (l *Loop) Post(f func()) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		logger.Warn("dropping work posted to closed loop")
		return
	}
	l.work = append(l.work, f)
	l.cond.Signal()
	l.mu.Unlock()
}

// Close runs all work posted before the call, then stops the consumer
// goroutine and waits for it to exit.
func (l *Loop) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return nil
	}
	l.closed = true
	l.cond.Signal()
	l.mu.Unlock()
	<-l.done
	return nil
}

func (l *Loop) run() {
	defer close(l.done)
	l.mu.Lock()
	for {
		for len(l.work) == 0 && !l.closed {
			l.cond.Wait()
		}
		if len(l.work) == 0 {
			l.mu.Unlock()
			return
		}
		f := l.work[0]
		l.work[0] = nil
		l.work = l.work[1:]
		l.mu.Unlock()
		f()
		l.mu.Lock()
	}
}
