// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package depth

import "sync"

// MarketKind selects which subsequent-delta continuity rule applies.
type MarketKind uint8

const (
	Spot MarketKind = iota
	Futures
)

func (k MarketKind) String() string {
	if k == Futures {
		return "futures"
	}
	return "spot"
}

type stage uint8

const (
	stageInit stage = iota
	stageAwaitFirst
	stageStreaming
)

// entry is the per-(symbol, market kind) continuity state.
type entry struct {
	stage           stage
	kind            MarketKind
	snapshotID      uint64
	lastAcceptedEnd uint64 // prev_u: the u of the last accepted delta
}

// Key identifies one tracked order-book stream.
type Key struct {
	Symbol string
	Kind   MarketKind
}

// Delta is one depth-update message's continuity-relevant fields.
// StartID and EndID are the message's U and u; PrevEndID is the
// Futures-only "pu" field chaining it to the previous message.
type Delta struct {
	StartID   uint64
	EndID     uint64
	PrevEndID uint64
}

// Validator tracks continuity state for any number of (symbol, market
// kind) streams. The zero value is not usable; construct with New.
// Safe for concurrent use by multiple goroutines — in practice one per
// ingest connection, sharing a validator keyed by symbol.
type Validator struct {
	mu      sync.Mutex
	entries map[Key]*entry
}

// New returns a Validator with no tracked entries.
func New() *Validator {
	return &Validator{entries: make(map[Key]*entry)}
}

// AcceptSnapshot records a new baseline for key, discarding whatever
// state (if any) previously existed for it. The entry moves to
// AWAIT_FIRST: the next delta must be validated with
// ValidateFirstAfterSnapshot, not ValidateContinuousDepth.
func (v *Validator) AcceptSnapshot(key Key, snapshotUpdateID uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries[key] = &entry{
		stage:      stageAwaitFirst,
		kind:       key.Kind,
		snapshotID: snapshotUpdateID,
	}
}

// ValidateFirstAfterSnapshot validates the first delta received after
// a snapshot for key. It is valid iff U <= S <= u. On success the entry
// moves to STREAMING with last_accepted_end_id = u. Calling this for a
// key with no AWAIT_FIRST entry (no snapshot accepted, or already
// streaming) is a caller error and always reports invalid.
func (v *Validator) ValidateFirstAfterSnapshot(key Key, d Delta) (valid bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	e, ok := v.entries[key]
	if !ok || e.stage != stageAwaitFirst {
		return false
	}

	if !(d.StartID <= e.snapshotID && e.snapshotID <= d.EndID) {
		return false
	}

	e.stage = stageStreaming
	e.lastAcceptedEnd = d.EndID
	return true
}

// ValidateContinuousDepth validates a delta against a STREAMING entry's
// stored prev_u, per key's market kind:
//   - Futures: valid iff d.PrevEndID == stored prev_u.
//   - Spot: valid iff d.StartID == stored prev_u + 1.
//
// On success, prev_u advances to d.EndID. On failure the entry is
// dropped — the caller must fetch a fresh snapshot and resume via
// AcceptSnapshot — and this reports invalid. If key has no STREAMING
// entry this reports invalid and leaves an AWAIT_FIRST entry as it is.
func (v *Validator) ValidateContinuousDepth(key Key, d Delta) (valid bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	e, ok := v.entries[key]
	if !ok || e.stage != stageStreaming {
		return false
	}

	switch key.Kind {
	case Futures:
		valid = d.PrevEndID == e.lastAcceptedEnd
	default:
		valid = d.StartID == e.lastAcceptedEnd+1
	}

	if !valid {
		delete(v.entries, key)
		return false
	}

	e.lastAcceptedEnd = d.EndID
	return true
}

// Reset discards any tracked state for key, as if no snapshot had ever
// been accepted. Safe to call whether or not key is currently tracked.
func (v *Validator) Reset(key Key) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.entries, key)
}

// Tracking reports whether key currently has state (AWAIT_FIRST or
// STREAMING) and, if so, the last accepted end id.
func (v *Validator) Tracking(key Key) (lastAcceptedEnd uint64, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	e, tracked := v.entries[key]
	if !tracked {
		return 0, false
	}
	return e.lastAcceptedEnd, true
}
