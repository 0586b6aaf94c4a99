// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package asynclog

import "sync/atomic"

var producerSeq int64

// currentThreadID has no portable OS-thread-id equivalent outside
// Linux; it falls back to a process-unique sequence number so every
// Producer still gets a stable, distinct identifier for the "tid="
// formatted field.
func currentThreadID() int64 {
	return atomic.AddInt64(&producerSeq, 1)
}
