// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpscseg

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"

	"github.com/richtraders/hft-transport/internal/atomicpad"
)

// mpscSegSlot is one fixed-capacity element of a chunk. ready is the
// publication flag: 0 means the slot is unclaimed or its write is still
// in flight, 1 means data is safe for the consumer to read.
type mpscSegSlot[T any] struct {
	ready atomix.Uint64
	data  T
}

// chunk is a fixed-capacity segment of the unbounded queue. filled is the
// FAA claim counter producers race on; next links to the chunk a producer
// installs once this one is full; freeNext is free-list linkage used only
// while the chunk sits in the recycling stack (kept separate from next so
// a chunk can never be simultaneously "linked into the queue" and
// "linked into the free list").
//
// next and freeNext are sync/atomic.Pointer, not an integer disguising a
// pointer: a chunk a producer has installed but the consumer has not yet
// reached is reachable only through these fields, so they must be real
// GC roots or the collector is free to reclaim a chunk still in use.
type chunk[T any] struct {
	_        atomicpad.Pad
	filled   atomix.Uint64
	_        atomicpad.Pad
	next     atomic.Pointer[chunk[T]]
	_        atomicpad.Pad
	freeNext atomic.Pointer[chunk[T]]
	slots    []mpscSegSlot[T]
}

func newChunk[T any](size int) *chunk[T] {
	return &chunk[T]{slots: make([]mpscSegSlot[T], size)}
}

// reset clears a drained chunk's bookkeeping fields before it re-enters
// circulation via the free list. Individual slots are cleared by the
// consumer as it reads them in Dequeue, so only the chunk-level fields
// need resetting here.
func (c *chunk[T]) reset() {
	c.filled.StoreRelaxed(0)
	c.next.Store(nil)
	c.freeNext.Store(nil)
}
