// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vlring implements a single-producer/single-consumer,
// zero-copy, variable-length ring buffer over a fixed byte slice.
//
// Every frame is prefixed by an 8-byte FramedMessage header (see
// frame.go), and the space each frame occupies in the ring, header
// included, is always rounded up to a multiple of 8. The header's Length
// field records the frame's exact, unrounded size, so it is a multiple
// of 8 only when the body length makes it one. When a frame would straddle
// the end of the underlying buffer, the writer instead emits a padding
// frame filling the remainder of the buffer and places the real frame
// at offset 0 — the reader skips padding frames transparently.
//
// Both cursors are monotonically increasing byte counters; they are
// never reset to 0 on wraparound, only taken modulo the buffer's
// capacity when used to index into it. This avoids the ambiguity an
// absolute, wrap-to-0 cursor creates between "buffer empty" and
// "buffer full" once the write position has lapped the read position.
package vlring
