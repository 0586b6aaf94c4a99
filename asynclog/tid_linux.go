// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package asynclog

import "golang.org/x/sys/unix"

// currentThreadID reports the calling OS thread's id. Producers are
// expected to live on a goroutine that has already locked itself to one
// OS thread (e.g. a cpupin.Worker task), so calling this once at
// NewProducer time and caching it is representative for the producer's
// entire lifetime.
func currentThreadID() int64 {
	return int64(unix.Gettid())
}
