// Package worker provides a long-lived execution context: one goroutine
// draining a task queue.
package worker

import (
	"sync"
	"time"
)

// Task is a unit of work run on a Thread.
type Task func()

// Thread runs pushed tasks sequentially on its own goroutine.
type Thread struct {
	name string

	mu       sync.Mutex
	cond     *sync.Cond
	queue    []Task
	timers   map[*time.Timer]struct{}
	shutdown bool

	done chan struct{}
}

// NewThread starts a Thread.
func NewThread(name string) *Thread {
	t := &Thread{
		name:   name,
		timers: make(map[*time.Timer]struct{}),
		done:   make(chan struct{}),
	}
	t.cond = sync.NewCond(&t.mu)
	go t.loop()
	return t
}

// Name returns the thread name.
func (t *Thread) Name() string {
	return t.name
}

// Push queues task. It returns false once shutdown has started.
func (t *Thread) Push(task Task) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.shutdown {
		return false
	}
	t.queue = append(t.queue, task)
	t.cond.Signal()
	return true
}

// PushDelayed queues task after delay. Delayed tasks still pending at
// shutdown are dropped.
func (t *Thread) PushDelayed(delay time.Duration, task Task) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.shutdown {
		return false
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.timers, timer)
		if t.shutdown {
			return
		}
		t.queue = append(t.queue, task)
		t.cond.Signal()
	})
	t.timers[timer] = struct{}{}
	return true
}

// ShutdownAndJoin stops accepting tasks, runs what is already queued and
// waits for the goroutine to exit. Calling it twice is safe.
func (t *Thread) ShutdownAndJoin() {
	t.mu.Lock()
	if !t.shutdown {
		t.shutdown = true
		for timer := range t.timers {
			timer.Stop()
		}
		t.timers = nil
		t.cond.Broadcast()
	}
	t.mu.Unlock()
	<-t.done
}

func (t *Thread) loop() {
	defer close(t.done)
	for {
		t.mu.Lock()
		for len(t.queue) == 0 && !t.shutdown {
			t.cond.Wait()
		}
		if len(t.queue) == 0 {
			t.mu.Unlock()
			return
		}
		task := t.queue[0]
		t.queue[0] = nil
		t.queue = t.queue[1:]
		t.mu.Unlock()

		task()
	}
}
