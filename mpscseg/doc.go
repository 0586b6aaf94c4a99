// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpscseg provides an unbounded, multi-producer single-consumer
// segmented queue for fixed-shape records (log lines, book events).
//
// Unlike the bounded ring queues in the wider lfq family this queue never
// reports backpressure to producers on enqueue: it grows by linking new
// fixed-capacity chunks instead of wrapping or blocking. The trade-off is
// memory growth under a stalled consumer instead of dropped or rejected
// writes, which is the right default for a logging/event pipeline where
// losing a record silently is worse than using more heap.
//
// # Producer handles
//
// Producers call NewProducer once per goroutine (typically once per
// CPU-pinned thread at startup) and reuse the returned handle for every
// Enqueue. The handle carries a hazard-pointer slot the consumer consults
// before recycling a drained chunk — see the package-level correctness
// note on reclamation below.
//
//	p := q.NewProducer()
//	for ev := range events {
//	    p.Enqueue(&ev)
//	}
//
// # Publication
//
// A naive design that bumps a claim counter before the slot is written
// lets the consumer observe a claimed-but-unwritten slot. Every slot here
// carries a ready flag distinct from the claim counter: the producer
// writes the value, then stores the flag with release ordering; the
// consumer loads the flag with acquire ordering and stalls at that index
// until it is ready rather than skipping ahead.
//
// # Reclamation
//
// Fully-drained chunks are recycled onto a lock-free free list instead of
// being discarded, so steady-state enqueue does not allocate once the
// queue has warmed up. Chunks are linked with sync/atomic.Pointer, not a
// bare integer: an installed-but-not-yet-reached chunk is reachable only
// through the tail pointer, a hazard slot, or the consumer-private
// retired list, and none of those are GC roots if they merely store a
// pointer's numeric value.
//
// A drained chunk is only released back to the free list once two things
// are both true: the producer-shared tail pointer has moved past it, and
// no registered producer's hazard slot still references it. The first
// condition alone is not enough to recycle on — the consumer can finish
// draining a chunk's slots and advance past it before any producer has
// gotten around to CASing tail off of it, so tail lagging the consumer's
// own drain progress is normal, not a bug. A producer that read the old
// tail value and is still resolving the "my chunk is full, install/follow
// next" race holds that chunk's address in its hazard slot; the consumer
// defers release until tail has moved and every hazard has cleared.
package mpscseg
