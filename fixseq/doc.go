// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixseq validates strict sequencing of a FIX-style message
// stream by the MsgSeqNum field (tag 34).
//
// Counter.IsValid extracts the decimal value between the "34=" tag and
// the next SOH (0x01) field terminator and reports whether it is
// exactly one past the last value seen. The counter always adopts the
// parsed value as its new baseline, valid or not, so it tracks the
// peer's actual sequence even across a detected gap — the caller
// decides what to do about a gap (resync, disconnect); this package
// only detects it.
package fixseq
