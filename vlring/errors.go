// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vlring

import "code.hybscloud.com/iox"

// ErrQueueFull reports that a frame's reservation would overwrite data
// the consumer has not yet read. It is iox.ErrWouldBlock under the
// hood, the same semantic-non-failure sentinel mpscseg uses for an
// empty queue: callers retry rather than treat it as a hard error.
var ErrQueueFull = iox.ErrWouldBlock

// IsQueueFull reports whether err is (or wraps) ErrQueueFull.
func IsQueueFull(err error) bool {
	return iox.IsWouldBlock(err)
}
