// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package depth_test

import (
	"testing"

	"github.com/richtraders/hft-transport/depth"
)

func TestSpotScenario(t *testing.T) {
	v := depth.New()
	key := depth.Key{Symbol: "BTCUSDT", Kind: depth.Spot}

	v.AcceptSnapshot(key, 100)

	if !v.ValidateFirstAfterSnapshot(key, depth.Delta{StartID: 99, EndID: 101}) {
		t.Fatal("first delta (U=99,u=101,S=100): want accept")
	}
	if last, ok := v.Tracking(key); !ok || last != 101 {
		t.Fatalf("after first delta: got (%d,%v), want (101,true)", last, ok)
	}

	if !v.ValidateContinuousDepth(key, depth.Delta{StartID: 102, EndID: 105}) {
		t.Fatal("delta (U=102,u=105) after prev_u=101: want accept")
	}
	if last, ok := v.Tracking(key); !ok || last != 105 {
		t.Fatalf("after second delta: got (%d,%v), want (105,true)", last, ok)
	}

	if v.ValidateContinuousDepth(key, depth.Delta{StartID: 107, EndID: 110}) {
		t.Fatal("delta (U=107,u=110) after prev_u=105: want reject (gap)")
	}
	if _, ok := v.Tracking(key); ok {
		t.Fatal("after rejected delta: want entry dropped, forcing a fresh snapshot")
	}
}

func TestFuturesScenario(t *testing.T) {
	v := depth.New()
	key := depth.Key{Symbol: "BTCUSDT", Kind: depth.Futures}

	v.AcceptSnapshot(key, 50)
	if !v.ValidateFirstAfterSnapshot(key, depth.Delta{StartID: 48, EndID: 52}) {
		t.Fatal("first delta (U=48,u=52,S=50): want accept")
	}

	// Futures chains on PrevEndID matching the stored prev_u (52), not
	// on StartID contiguity.
	if !v.ValidateContinuousDepth(key, depth.Delta{StartID: 60, EndID: 70, PrevEndID: 52}) {
		t.Fatal("delta with PrevEndID==52: want accept")
	}
	if last, _ := v.Tracking(key); last != 70 {
		t.Fatalf("prev_u: got %d, want 70", last)
	}

	if v.ValidateContinuousDepth(key, depth.Delta{StartID: 71, EndID: 80, PrevEndID: 71}) {
		t.Fatal("delta with PrevEndID!=70: want reject")
	}
	if _, ok := v.Tracking(key); ok {
		t.Fatal("after rejected delta: want entry dropped")
	}
}

func TestFirstAfterSnapshotRejectsOutOfRange(t *testing.T) {
	v := depth.New()
	key := depth.Key{Symbol: "ETHUSDT", Kind: depth.Spot}
	v.AcceptSnapshot(key, 100)

	// u < S: snapshot id not covered by the delta's range.
	if v.ValidateFirstAfterSnapshot(key, depth.Delta{StartID: 90, EndID: 99}) {
		t.Fatal("delta not covering snapshot id: want reject")
	}
	// Rejection of the first delta leaves the entry in AWAIT_FIRST, not
	// dropped — state was never established to drop. No delta has been
	// accepted yet, so the reported last accepted end id is still 0.
	if last, ok := v.Tracking(key); !ok || last != 0 {
		t.Fatalf("after rejected first delta: got (%d,%v), want (0,true): entry stays in AWAIT_FIRST", last, ok)
	}
}

func TestContinuousDepthWithoutSnapshotRejects(t *testing.T) {
	v := depth.New()
	key := depth.Key{Symbol: "BTCUSDT", Kind: depth.Spot}
	if v.ValidateContinuousDepth(key, depth.Delta{StartID: 1, EndID: 2}) {
		t.Fatal("no snapshot ever accepted: want reject")
	}
}

func TestResetDiscardsState(t *testing.T) {
	v := depth.New()
	key := depth.Key{Symbol: "BTCUSDT", Kind: depth.Spot}
	v.AcceptSnapshot(key, 10)
	v.ValidateFirstAfterSnapshot(key, depth.Delta{StartID: 9, EndID: 11})

	v.Reset(key)
	if _, ok := v.Tracking(key); ok {
		t.Fatal("after Reset: want no tracked state")
	}
	if v.ValidateContinuousDepth(key, depth.Delta{StartID: 12, EndID: 13}) {
		t.Fatal("ValidateContinuousDepth after Reset: want reject, no snapshot baseline")
	}
}

func TestSymbolsAndKindsAreIndependent(t *testing.T) {
	v := depth.New()
	spot := depth.Key{Symbol: "BTCUSDT", Kind: depth.Spot}
	fut := depth.Key{Symbol: "BTCUSDT", Kind: depth.Futures}

	v.AcceptSnapshot(spot, 100)
	v.ValidateFirstAfterSnapshot(spot, depth.Delta{StartID: 99, EndID: 101})

	if _, ok := v.Tracking(fut); ok {
		t.Fatal("futures entry for the same symbol must be untouched by the spot snapshot")
	}
}
