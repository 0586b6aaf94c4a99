// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpscseg

import (
	"sync"
	"sync/atomic"

	"code.hybscloud.com/spin"

	"github.com/richtraders/hft-transport/internal/atomicpad"
)

// MPSCSeg is an unbounded multi-producer single-consumer queue built from
// a singly-linked chain of fixed-capacity chunks.
//
// Enqueue never blocks and never reports backpressure: a full chunk
// triggers cooperative allocation (or recycling) of the next one. Dequeue
// is for the single designated consumer goroutine only.
//
// tail and freeTop are sync/atomic.Pointer rather than a bare integer: a
// chunk a producer has linked in but the consumer has not yet reached is
// reachable only through one of these fields (or a hazard slot, or the
// consumer-private retired list), so every link in the chain must be a
// real, GC-scanned pointer. An atomix.Uintptr-typed link would compile
// and run, but the collector does not trace integers, and a chunk with
// no traced reference left can be collected out from under a producer
// still mid-dereference.
type MPSCSeg[T any] struct {
	_         atomicpad.Pad
	tail      atomic.Pointer[chunk[T]] // producer-shared
	_         atomicpad.Pad
	freeTop   atomic.Pointer[chunk[T]] // Treiber-stack free list of recycled chunks
	_         atomicpad.Pad
	chunkSize uint64

	// Consumer-private; never touched by a producer.
	headChunk *chunk[T]
	headIndex uint64
	retired   []*chunk[T]

	hazardsMu sync.Mutex
	hazards   []*hazardSlot[T]
}

// NewMPSCSeg creates an empty queue whose chunks hold chunkSize slots
// each. chunkSize has no power-of-2 requirement; pick it to amortize the
// chunk-rollover cost against per-chunk memory (64 is the teacher
// family's own default for comparable fixed-record queues).
func NewMPSCSeg[T any](chunkSize int) *MPSCSeg[T] {
	if chunkSize < 1 {
		panic("mpscseg: chunkSize must be >= 1")
	}
	dummy := newChunk[T](chunkSize)
	q := &MPSCSeg[T]{
		chunkSize: uint64(chunkSize),
		headChunk: dummy,
	}
	q.tail.Store(dummy)
	return q
}

// Producer is a non-owning handle a single producer goroutine uses to
// enqueue. Obtain one per producer goroutine with NewProducer and reuse
// it for the goroutine's lifetime; handles are cheap to create but are
// not meant to be created per-message.
type Producer[T any] struct {
	q      *MPSCSeg[T]
	hazard *hazardSlot[T]
}

// NewProducer registers a new producer handle with the queue. Safe to
// call concurrently with Enqueue from other already-registered handles;
// not safe to call concurrently with Dequeue/Close on a queue that has
// not finished construction (registration is expected at thread startup,
// off the hot path).
func (q *MPSCSeg[T]) NewProducer() *Producer[T] {
	hz := &hazardSlot[T]{}
	q.hazardsMu.Lock()
	q.hazards = append(q.hazards, hz)
	q.hazardsMu.Unlock()
	return &Producer[T]{q: q, hazard: hz}
}

// Enqueue adds an element to the queue. Safe to call concurrently from
// any number of Producer handles obtained from the same queue. Never
// blocks beyond brief CAS retries and never returns an error: the queue
// grows instead of reporting backpressure.
func (p *Producer[T]) Enqueue(v *T) error {
	q := p.q
	sw := spin.Wait{}
	for {
		tailPtr := q.tail.Load()

		// Publish the chunk we are about to dereference before touching
		// it, then re-validate: if tail already moved on, our hazard
		// announcement raced with nothing live and we simply retry.
		//
		// This does not by itself prove tailPtr stays live for as long as
		// we hold it: tail can advance past a chunk, and the consumer can
		// drain and recycle it, while this goroutine sits preempted
		// between the revalidation below and the dereference that
		// follows. What makes it safe is that recycle/drainRetired never
		// release a chunk that is still (or was ever, without us having
		// observed tail move past it first) the published tail, and only
		// release once every registered hazard slot has also cleared —
		// see the recycle doc comment.
		p.hazard.ptr.Store(tailPtr)
		if q.tail.Load() != tailPtr {
			continue
		}

		cur := tailPtr
		pos := cur.filled.AddAcqRel(1) - 1

		if pos < q.chunkSize {
			cur.slots[pos].data = *v
			cur.slots[pos].ready.StoreRelease(1)
			p.hazard.ptr.Store(nil)
			return nil
		}

		// Chunk is full. Cooperate to install (or adopt) the next one.
		next := cur.next.Load()
		if next == nil {
			nc := q.acquireChunk()
			if cur.next.CompareAndSwap(nil, nc) {
				next = nc
			} else {
				// Lost the install race; recycle our speculative
				// allocation instead of discarding it.
				q.releaseChunk(nc)
				next = cur.next.Load()
			}
		}
		q.tail.CompareAndSwap(tailPtr, next)
		p.hazard.ptr.Store(nil)
		sw.Once()
	}
}

// Dequeue removes and returns the next published value. Must only be
// called from the single designated consumer goroutine. Returns
// ErrNotReady if the next slot is empty or has been claimed but not yet
// published — the caller cannot tell the two cases apart and should
// retry rather than treat it as a failure.
func (q *MPSCSeg[T]) Dequeue() (T, error) {
	for {
		if q.headIndex < q.chunkSize {
			slot := &q.headChunk.slots[q.headIndex]
			if slot.ready.LoadAcquire() == 0 {
				var zero T
				return zero, ErrNotReady
			}
			v := slot.data
			var zero T
			slot.data = zero
			slot.ready.StoreRelaxed(0)
			q.headIndex++
			return v, nil
		}

		next := q.headChunk.next.Load()
		if next == nil {
			var zero T
			return zero, ErrNotReady
		}

		drained := q.headChunk
		q.headChunk = next
		q.headIndex = 0
		q.recycle(drained)
	}
}

// Empty reports whether a Dequeue would currently return ErrNotReady.
// Advisory only: producers may publish concurrently with this call.
func (q *MPSCSeg[T]) Empty() bool {
	if q.headIndex < q.chunkSize {
		return q.headChunk.slots[q.headIndex].ready.LoadAcquire() == 0
	}
	return q.headChunk.next.Load() == nil
}

// Close drains any remaining items and releases the queue's chunk chain.
// No producer may be active once Close is called; Go's garbage collector
// reclaims the chunk chain once the queue itself becomes unreachable, so
// Close's role is purely to discard backlog deterministically (e.g. in
// tests) rather than to free manually-managed memory.
func (q *MPSCSeg[T]) Close() {
	for {
		if _, err := q.Dequeue(); err != nil {
			return
		}
	}
}

// acquireChunk pops a recycled chunk off the free list, falling back to
// a fresh allocation when the list is empty. Called by producers racing
// to install the next chunk, so the pop must be a proper CAS loop.
func (q *MPSCSeg[T]) acquireChunk() *chunk[T] {
	for {
		top := q.freeTop.Load()
		if top == nil {
			return newChunk[T](int(q.chunkSize))
		}
		next := top.freeNext.Load()
		if q.freeTop.CompareAndSwap(top, next) {
			return top
		}
	}
}

// releaseChunk pushes a chunk onto the free list (Treiber stack). Called
// both by the consumer recycling a drained chunk and by a producer that
// lost the chunk-install race and wants its speculative allocation back
// in circulation instead of discarded. Callers must already know the
// chunk is not the published tail and carries no hazard reference — see
// recycle/drainRetired.
func (q *MPSCSeg[T]) releaseChunk(c *chunk[T]) {
	c.reset()
	for {
		top := q.freeTop.Load()
		c.freeNext.Store(top)
		if q.freeTop.CompareAndSwap(top, c) {
			return
		}
	}
}

// recycle queues a fully-drained chunk for release back to the free
// list. A chunk the consumer has drained is not necessarily safe to
// reuse yet: tail advances only when some producer notices its chunk is
// full and CASes tail forward, which can lag behind the consumer's own
// drain-and-advance by an arbitrary amount. A producer that already read
// the old tail value, published its hazard, and passed the revalidation
// check in Enqueue can still be scheduled out before dereferencing it —
// if this chunk were handed back out by acquireChunk and reset in the
// meantime, that producer would resume and corrupt whatever unrelated
// chunk now occupies the same memory.
//
// So a retired chunk is only a release candidate once tail has moved
// past it (no new producer can read its address off tail from that point
// on) *and* no currently-registered hazard slot still references it (any
// producer that read it before tail moved has since cleared its hazard).
// Both checks happen in drainRetired; recycle only enqueues.
func (q *MPSCSeg[T]) recycle(c *chunk[T]) {
	q.retired = append(q.retired, c)
	q.drainRetired()
}

// drainRetired retries every chunk on the consumer-private retired list,
// releasing any that have both fallen behind tail and cleared every
// hazard slot. Called after every chunk rollover; cheap in the common
// case where the retired list is empty or has a single entry.
func (q *MPSCSeg[T]) drainRetired() {
	if len(q.retired) == 0 {
		return
	}
	q.hazardsMu.Lock()
	hazards := q.hazards
	q.hazardsMu.Unlock()

	kept := q.retired[:0]
	for _, c := range q.retired {
		if q.tail.Load() == c {
			// Tail has not advanced past this chunk yet: a producer may
			// still legitimately read it off tail and publish a hazard
			// for it after this check runs. Leave it pending.
			kept = append(kept, c)
			continue
		}
		if hazardReferences(hazards, c) {
			kept = append(kept, c)
			continue
		}
		q.releaseChunk(c)
	}
	q.retired = kept
}

func hazardReferences[T any](hazards []*hazardSlot[T], c *chunk[T]) bool {
	for _, h := range hazards {
		if h.ptr.Load() == c {
			return true
		}
	}
	return false
}
