// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpscseg

import "code.hybscloud.com/iox"

// ErrNotReady indicates Dequeue found no published value: either the
// queue is genuinely empty, or the next slot has been claimed by a
// producer that has not yet finished its release store. The caller
// cannot distinguish the two cases and should treat both as "try again
// later" — this is an alias of [iox.ErrWouldBlock] for ecosystem
// consistency with the rest of the queue family.
var ErrNotReady = iox.ErrWouldBlock

// IsNotReady reports whether err is ErrNotReady (optionally wrapped).
func IsNotReady(err error) bool {
	return iox.IsWouldBlock(err)
}
