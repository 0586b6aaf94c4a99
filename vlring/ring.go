// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vlring

import (
	"fmt"

	"code.hybscloud.com/atomix"

	"github.com/richtraders/hft-transport/internal/atomicpad"
)

// VLRing is a single-producer/single-consumer, zero-copy,
// variable-length ring buffer. Writer and reader cursors live on
// separate cache lines since exactly one goroutine ever touches each.
//
// Both cursors are monotonically increasing absolute byte counters,
// only ever taken modulo capacity when used to index into buffer.
// Capacity is checked the same way SPSC's fixed-size ring checks
// fullness: by comparing the distance between the cursors against
// capacity, with the producer caching the consumer's position to avoid
// an atomic load on every reservation when there is obviously room.
//
// A frame's header reports its exact length (header plus body, not
// rounded), so ReadOne hands callers the body unpadded. Both cursors
// nonetheless only ever advance by that length rounded up to 8, which
// keeps every frame's starting offset 8-byte aligned without requiring
// every body to be pre-padded by the caller.
type VLRing struct {
	_          atomicpad.Pad
	writePos   atomix.Uint64 // producer-owned; consumer only ever reads it
	_          atomicpad.Pad
	cachedRead uint64 // producer's cached view of readPos
	_          atomicpad.Pad
	readPos    atomix.Uint64 // consumer-owned; producer only ever reads it
	_          atomicpad.Pad

	capacity uint64
	buffer   []byte

	// Producer-private reservation scratch, valid only between a
	// BeginWrite call and the matching Commit.
	pendingBase    uint64
	pendingAdvance uint64
}

// NewVLRing allocates a ring buffer of the given capacity in bytes.
// capacity must be a multiple of 8 and at least 16 so that a padding
// header always has room to land on an 8-byte boundary before the
// buffer's tail.
func NewVLRing(capacity int) *VLRing {
	if capacity < 16 || capacity%8 != 0 {
		panic(fmt.Sprintf("vlring: capacity must be a multiple of 8 and >= 16, got %d", capacity))
	}
	return &VLRing{
		capacity: uint64(capacity),
		buffer:   make([]byte, capacity),
	}
}

// Capacity returns the ring's total byte capacity.
func (r *VLRing) Capacity() int {
	return int(r.capacity)
}

// BeginWrite reserves space for a frame of exactly rawLen bytes
// (header plus body, unrounded) and returns the slice to fill with the
// frame's bytes — callers typically use Write, below, instead of
// calling BeginWrite directly. The physical reservation occupies
// align8(rawLen) bytes so the next frame still starts on an 8-byte
// boundary; the trailing pad bytes, if any, belong to no one and are
// never read. The reservation is not visible to the consumer until
// Commit is called. Only one reservation may be outstanding at a time.
func (r *VLRing) BeginWrite(rawLen uint32) ([]byte, error) {
	if rawLen < HeaderSize {
		rawLen = HeaderSize
	}
	aligned := uint64(atomicpad.AlignUp8(rawLen))
	if aligned > r.capacity {
		return nil, ErrQueueFull
	}

	base := r.writePos.LoadRelaxed()
	w := base % r.capacity
	remaining := r.capacity - w

	var offset, advance uint64
	wrapped := aligned > remaining
	if wrapped {
		if remaining < HeaderSize {
			// Unreachable: capacity and writePos advances are always
			// multiples of 8, so the tail gap is either 0 (handled by
			// the non-wrapped branch) or >= HeaderSize.
			return nil, ErrQueueFull
		}
		offset = 0
		advance = remaining + aligned
	} else {
		offset = w
		advance = aligned
	}

	if base+advance-r.cachedRead > r.capacity {
		r.cachedRead = r.readPos.LoadAcquire()
		if base+advance-r.cachedRead > r.capacity {
			return nil, ErrQueueFull
		}
	}

	if wrapped {
		encodePaddingHeader(r.buffer[w:w+remaining], uint32(remaining))
	}

	r.pendingBase = base
	r.pendingAdvance = advance
	return r.buffer[offset : offset+uint64(rawLen)], nil
}

// Commit publishes the reservation made by the preceding BeginWrite
// call, making it visible to the consumer.
func (r *VLRing) Commit() {
	r.writePos.StoreRelease(r.pendingBase + r.pendingAdvance)
}

// Write is the common-case convenience wrapper around
// BeginWrite/Commit: it encodes a header for typ/count and copies body
// into the reserved region in one call.
func (r *VLRing) Write(typ uint16, count uint16, body []byte) error {
	raw := uint32(HeaderSize + len(body))
	region, err := r.BeginWrite(raw)
	if err != nil {
		return err
	}
	encodeHeader(region, Header{Length: raw, Type: typ, Count: count})
	copy(region[HeaderSize:], body)
	r.Commit()
	return nil
}

// AlignedFrameLen returns the physical, 8-byte-aligned footprint a
// frame carrying a body of bodyLen bytes occupies in the ring.
func AlignedFrameLen(bodyLen int) uint32 {
	return atomicpad.AlignUp8(uint32(HeaderSize + bodyLen))
}

// ReadOne decodes and delivers the next frame to handler, advancing
// the read cursor past it. Padding frames are skipped transparently.
// It reports false when the ring has no unread frame.
func (r *VLRing) ReadOne(handler func(typ uint16, count uint16, body []byte)) bool {
	for {
		rd := r.readPos.LoadRelaxed()
		wr := r.writePos.LoadAcquire()
		if rd == wr {
			return false
		}
		off := rd % r.capacity
		hdr := decodeHeader(r.buffer[off : off+HeaderSize])
		advance := uint64(atomicpad.AlignUp8(hdr.Length))

		if hdr.Type == TypePadding {
			r.readPos.StoreRelease(rd + advance)
			continue
		}

		body := r.buffer[off+HeaderSize : off+uint64(hdr.Length)]
		handler(hdr.Type, hdr.Count, body)
		r.readPos.StoreRelease(rd + advance)
		return true
	}
}

// ReadAll drains every currently available frame through handler and
// returns how many were delivered (padding frames are not counted).
func (r *VLRing) ReadAll(handler func(typ uint16, count uint16, body []byte)) int {
	n := 0
	for r.ReadOne(handler) {
		n++
	}
	return n
}
