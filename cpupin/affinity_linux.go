// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package cpupin

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// pinCurrentThread locks the calling goroutine to its current OS
// thread and restricts that thread's scheduling to w.cpuID. Must be
// called from the goroutine that is to be pinned, before it does any
// other work: runtime.LockOSThread prevents the Go scheduler from
// migrating the goroutine to a different OS thread out from under the
// affinity mask that is about to be set.
func (w *Worker) pinCurrentThread() error {
	runtime.LockOSThread()

	var mask unix.CPUSet
	mask.Zero()
	mask.Set(w.cpuID)

	// pid 0 means "the calling thread" under sched_setaffinity(2); with
	// LockOSThread already in effect above, that is exactly the OS
	// thread this goroutine will keep for the rest of its life.
	if err := unix.SchedSetaffinity(0, &mask); err != nil {
		return fmt.Errorf("%w: cpu %d: %v", ErrAffinity, w.cpuID, err)
	}
	return nil
}
