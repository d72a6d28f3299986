package worker

import (
	"runtime"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/parkour/oerror"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}

		run(f)
	}
}

// run executes a single job, reporting a panic to Sentry so that the worker survives it.
func run(f func()) {
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(oerror.New("worker job crashed: %v", err))
			hub.Flush(time.Second * 5)
		}
	}()
	f()
}

// Submit queues f to be run by a worker. To be used by a function that may be CPU intensive, such as running a
// session for many ticks.
func Submit(f func()) {
	workerQueue <- f
}

// Group runs a collection of jobs on the workers and waits for them to finish. A job that panics is reported and
// counts as finished.
type Group struct {
	wg sync.WaitGroup
}

// Go submits f as part of the group.
func (g *Group) Go(f func()) {
	g.wg.Add(1)
	Submit(func() {
		defer g.wg.Done()
		f()
	})
}

// Wait blocks until every job of the group has finished.
func (g *Group) Wait() {
	g.wg.Wait()
}
