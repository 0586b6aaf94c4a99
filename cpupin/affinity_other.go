// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package cpupin

import (
	"fmt"
	"runtime"
)

// pinCurrentThread locks the calling goroutine to its OS thread. CPU
// affinity itself is a Linux-only concept in this module (sched_setaffinity
// has no portable equivalent); on other platforms the thread is locked
// but not pinned to w.cpuID, and that is reported through ErrAffinity
// so callers notice rather than silently run unpinned.
func (w *Worker) pinCurrentThread() error {
	runtime.LockOSThread()
	return fmt.Errorf("%w: cpu affinity is not supported on this platform", ErrAffinity)
}
