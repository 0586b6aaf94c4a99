// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fixseq

import (
	"bytes"
	"strconv"
)

// tag34 is the FIX tag-34 (MsgSeqNum) start keyword this package looks
// for; soh is the single-byte field terminator (SOH, 0x01) that ends
// every FIX field.
const (
	tag34 = "34="
	soh   = 0x01
)

// Counter validates strict, gapless sequencing of a single FIX-style
// session by its tag-34 MsgSeqNum field. The zero value starts at
// sequence 0, so the first message accepted must carry 34=1.
//
// Counter is not safe for concurrent use: a FIX session has exactly one
// logical sequence, read by whichever goroutine is draining that
// session's messages.
type Counter struct {
	current uint64
}

// Current returns the last sequence number IsValid observed, valid or
// not.
func (c *Counter) Current() uint64 {
	return c.current
}

// IsValid extracts the decimal value between "34=" and the next SOH
// byte in message and reports whether it is exactly one past the last
// value seen. current always adopts the parsed value as its new
// baseline, valid or not, so the counter tracks the peer's actual
// sequence even across a detected gap; the caller decides what to do
// about a gap (resync, disconnect).
//
// Returns ErrTagMissing if message carries no "34=" tag, or
// ErrMalformedNumber if the bytes between the tag and the terminating
// SOH do not form a valid unsigned decimal number. In both error cases
// current is left unchanged.
func (c *Counter) IsValid(message []byte) (bool, error) {
	idx := findTag34(message)
	if idx < 0 {
		return false, ErrTagMissing
	}
	start := idx + len(tag34)

	end := start
	for end < len(message) && message[end] != soh {
		end++
	}

	seq, err := strconv.ParseUint(string(message[start:end]), 10, 64)
	if err != nil {
		return false, ErrMalformedNumber
	}

	valid := seq == c.current+1
	c.current = seq
	return valid, nil
}

// findTag34 returns the index of the first "34=" in message that starts
// a field, or -1 if there is none.
// A raw bytes.Index match is not enough: tag 34 must start a field, so
// "34=" is only a real match at the very start of message or right
// after a SOH byte — otherwise it is matching inside some other tag
// number that merely ends in "34" (134, 234, 1034, ...).
func findTag34(message []byte) int {
	offset := 0
	for {
		rel := bytes.Index(message[offset:], []byte(tag34))
		if rel < 0 {
			return -1
		}
		idx := offset + rel
		if idx == 0 || message[idx-1] == soh {
			return idx
		}
		offset = idx + 1
	}
}
