// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package depth validates the continuity of an exchange order-book
// delta stream against a snapshot baseline, per (symbol, market kind).
//
// Each tracked entry moves through a small state machine: it starts
// unknown to the validator, accepts a snapshot, accepts the first
// delta that bridges the snapshot (U <= S <= u), then streams deltas
// whose continuity rule depends on market kind — Futures chains on the
// message's previous-update-id field, Spot requires a contiguous
// update-id run. A rejected streaming delta drops the entry, so the
// stream needs a fresh snapshot; a rejected first delta leaves the entry
// unchanged, still awaiting a delta that bridges the snapshot.
package depth
