package platform

import (
	"fmt"
	"time"

	"github.com/gammazero/toposort"

	"github.com/arthur-debert/platformfs/pkg/platform/core"
	"github.com/arthur-debert/platformfs/pkg/platform/worker"
)

// Thread names one of the platform's worker threads.
type Thread int

const (
	ThreadNetwork Thread = iota
	ThreadFile
	ThreadBackground

	threadCount = 3
)

func (t Thread) String() string {
	switch t {
	case ThreadNetwork:
		return "network"
	case ThreadFile:
		return "file"
	case ThreadBackground:
		return "background"
	default:
		return fmt.Sprintf("thread(%d)", int(t))
	}
}

// stopsBefore lists [a, b] pairs where a must be joined before b is shut
// down. Network work may still hand results to the file thread, and file work
// to the background thread.
var stopsBefore = []toposort.Edge{
	{ThreadNetwork, ThreadFile},
	{ThreadFile, ThreadBackground},
}

// shutdownOrder is Network, File, Background.
var shutdownOrder = mustShutdownOrder(stopsBefore)

func mustShutdownOrder(edges []toposort.Edge) []Thread {
	sorted, err := toposort.Toposort(edges)
	if err != nil {
		panic(fmt.Sprintf("worker shutdown order: %v", err))
	}
	order := make([]Thread, 0, len(sorted))
	for _, v := range sorted {
		order = append(order, v.(Thread))
	}
	if len(order) != threadCount {
		panic(fmt.Sprintf("worker shutdown order covers %d of %d threads", len(order), threadCount))
	}
	return order
}

// threadGroup holds the three workers. It exists only as a whole.
type threadGroup struct {
	workers [threadCount]*worker.Thread
}

// RunThreads starts the network, file and background threads. They must not
// be running already.
func (p *Platform) RunThreads() {
	p.threadsMu.Lock()
	defer p.threadsMu.Unlock()
	core.Check(p.threads == nil, "threads are not running")

	g := &threadGroup{}
	for i := range g.workers {
		g.workers[i] = worker.NewThread(Thread(i).String())
	}
	p.threads = g
	p.logger.Debug().Msg("Worker threads started")
}

// ShutdownThreads stops and joins the threads in the order network, file,
// background, then releases them. They must be running.
func (p *Platform) ShutdownThreads() {
	p.threadsMu.Lock()
	defer p.threadsMu.Unlock()
	core.Check(p.threads != nil, "threads are running")

	for _, t := range shutdownOrder {
		p.threads.workers[t].ShutdownAndJoin()
		p.logger.Debug().Stringer("thread", t).Msg("Worker thread joined")
	}
	p.threads = nil
}

// ThreadsRunning reports whether RunThreads has been called without a
// matching ShutdownThreads.
func (p *Platform) ThreadsRunning() bool {
	p.threadsMu.Lock()
	defer p.threadsMu.Unlock()
	return p.threads != nil
}

// RunTask queues task on thread. The threads must be running. It returns
// false if the thread is already shutting down.
func (p *Platform) RunTask(thread Thread, task worker.Task) bool {
	w := p.workerFor(thread)
	return w.Push(task)
}

// RunDelayedTask queues task on thread after delay.
func (p *Platform) RunDelayedTask(thread Thread, delay time.Duration, task worker.Task) bool {
	w := p.workerFor(thread)
	return w.PushDelayed(delay, task)
}

func (p *Platform) workerFor(thread Thread) *worker.Thread {
	p.threadsMu.Lock()
	defer p.threadsMu.Unlock()
	core.Check(p.threads != nil, "threads are running")
	core.Check(thread >= 0 && thread < threadCount, "known thread", thread)
	return p.threads.workers[thread]
}
