// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cpupin

import "sync"

// Worker launches one goroutine pinned to a single nominated CPU and
// runs an arbitrary task on it. A Worker is single-use: construct one
// per pinned thread with New, Start it once, and Join it once.
type Worker struct {
	cpuID int

	wg      sync.WaitGroup
	startMu sync.Mutex
	started bool
	err     error
}

// New returns a Worker that will pin its task to cpuID once Started.
func New(cpuID int) *Worker {
	return &Worker{cpuID: cpuID}
}

// Start launches task on a new goroutine, locks that goroutine to its
// underlying OS thread, and pins the thread to the Worker's CPU id
// before task runs. Start returns immediately; task runs asynchronously.
//
// task may be any closure with its arguments already captured — the Go
// equivalent of the teacher's original templated thread-plus-argument
// wrapper, where the capturing closure itself carries the arguments
// instead of a variadic template parameter pack.
//
// Start may only be called once per Worker. A second call panics.
func (w *Worker) Start(task func()) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		panic("cpupin: Start called more than once on the same Worker")
	}
	w.started = true
	w.startMu.Unlock()

	ready := make(chan error, 1)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		err := w.pinCurrentThread()
		ready <- err
		if err != nil {
			return
		}
		task()
	}()
	w.err = <-ready
}

// Err reports the affinity error, if any, observed when the worker's
// thread was pinned. Safe to call only after Join returns, or after
// Start itself returns (affinity is set synchronously as part of the
// goroutine's startup handshake before Start returns).
func (w *Worker) Err() error {
	return w.err
}

// Join blocks until task (or the failed pin attempt) has completed.
func (w *Worker) Join() {
	w.wg.Wait()
}
