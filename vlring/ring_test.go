// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vlring_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/richtraders/hft-transport/vlring"
)

func TestWriteReadFIFO(t *testing.T) {
	r := vlring.NewVLRing(256)

	msgs := [][]byte{
		[]byte("abc"),
		[]byte("a longer body that still fits"),
		[]byte(""),
		[]byte("xyz"),
	}
	for i, m := range msgs {
		if err := r.Write(vlring.TypeTrade, uint16(i), m); err != nil {
			t.Fatalf("Write(%d): %v", i, err)
		}
	}

	var got [][]byte
	n := r.ReadAll(func(typ uint16, count uint16, body []byte) {
		if typ != vlring.TypeTrade {
			t.Fatalf("type: got %d, want TypeTrade", typ)
		}
		cp := append([]byte(nil), body...)
		got = append(got, cp)
	})
	if n != len(msgs) {
		t.Fatalf("ReadAll: got %d frames, want %d", n, len(msgs))
	}
	for i, m := range msgs {
		if !bytes.Equal(got[i], m) {
			t.Fatalf("frame %d: got %q, want %q", i, got[i], m)
		}
	}
}

func TestFrameCountField(t *testing.T) {
	r := vlring.NewVLRing(64)
	if err := r.Write(vlring.TypeDepth, 7, []byte("xx")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var gotCount uint16
	r.ReadOne(func(typ uint16, count uint16, body []byte) {
		gotCount = count
	})
	if gotCount != 7 {
		t.Fatalf("count: got %d, want 7", gotCount)
	}
}

// TestWrapInsertsPaddingAndPreservesOrder exercises the exact wrap
// scenario from the spec: a 64-byte ring holding 24-byte frames (8-byte
// header plus 16-byte body each), where a frame cannot fit in the 16 bytes remaining
// before the tail and must wrap behind an explicit padding frame, once
// the reader has made enough room for it.
func TestWrapInsertsPaddingAndPreservesOrder(t *testing.T) {
	r := vlring.NewVLRing(64)
	body := bytes.Repeat([]byte{0xAB}, 16) // 16-byte body -> 24-byte frame

	for i := 0; i < 2; i++ {
		if err := r.Write(vlring.TypeTrade, uint16(i), body); err != nil {
			t.Fatalf("Write(%d): %v", i, err)
		}
	}
	// write_pos is now at 48. Consume the first frame to free the 24
	// bytes the wrapped write below needs.
	if !r.ReadOne(func(typ uint16, count uint16, got []byte) {
		if count != 0 {
			t.Fatalf("first frame: got count %d, want 0", count)
		}
	}) {
		t.Fatal("ReadOne: want a frame")
	}

	// A third 24-byte frame does not fit in the remaining 16 bytes
	// before the 64-byte tail and must wrap behind a padding frame.
	if err := r.Write(vlring.TypeTrade, 2, body); err != nil {
		t.Fatalf("Write(2): %v", err)
	}

	var seen []uint16
	n := r.ReadAll(func(typ uint16, count uint16, got []byte) {
		if !bytes.Equal(got, body) {
			t.Fatalf("frame %d body mismatch", count)
		}
		seen = append(seen, count)
	})
	if n != 2 {
		t.Fatalf("ReadAll: got %d frames, want 2", n)
	}
	want := []uint16{1, 2}
	for i, c := range seen {
		if c != want[i] {
			t.Fatalf("order: frame %d reports count %d, want %d", i, c, want[i])
		}
	}
}

func TestQueueFullWithNoConsumer(t *testing.T) {
	r := vlring.NewVLRing(32)
	body := bytes.Repeat([]byte{1}, 16) // 24-byte frame

	if err := r.Write(vlring.TypeTrade, 0, body); err != nil {
		t.Fatalf("Write(0): %v", err)
	}
	// Second 24-byte frame would need 48 bytes total against a 32-byte
	// ring with nothing consumed yet.
	err := r.Write(vlring.TypeTrade, 1, body)
	if !errors.Is(err, vlring.ErrQueueFull) {
		t.Fatalf("Write(1): got %v, want ErrQueueFull", err)
	}
}

func TestQueueFullClearsAfterConsume(t *testing.T) {
	r := vlring.NewVLRing(32)
	body := bytes.Repeat([]byte{1}, 16)

	if err := r.Write(vlring.TypeTrade, 0, body); err != nil {
		t.Fatalf("Write(0): %v", err)
	}
	if err := r.Write(vlring.TypeTrade, 1, body); !errors.Is(err, vlring.ErrQueueFull) {
		t.Fatalf("Write(1) before consume: got %v, want ErrQueueFull", err)
	}

	if !r.ReadOne(func(uint16, uint16, []byte) {}) {
		t.Fatal("ReadOne: want a frame")
	}

	if err := r.Write(vlring.TypeTrade, 1, body); err != nil {
		t.Fatalf("Write(1) after consume: %v", err)
	}
}

func TestUnalignedBodiesHaveAlignedFrameLen(t *testing.T) {
	r := vlring.NewVLRing(128)
	bodies := [][]byte{
		bytes.Repeat([]byte{1}, 1),
		bytes.Repeat([]byte{2}, 3),
		bytes.Repeat([]byte{3}, 7),
		bytes.Repeat([]byte{4}, 8),
	}
	for i, b := range bodies {
		if err := r.Write(vlring.TypeTrade, uint16(i), b); err != nil {
			t.Fatalf("Write(%d): %v", i, err)
		}
	}
	n := r.ReadAll(func(typ uint16, count uint16, body []byte) {
		if vlring.AlignedFrameLen(len(body))%8 != 0 {
			t.Fatalf("frame %d: aligned length not a multiple of 8", count)
		}
	})
	if n != len(bodies) {
		t.Fatalf("ReadAll: got %d, want %d", n, len(bodies))
	}
}

func TestReadOneOnEmptyRing(t *testing.T) {
	r := vlring.NewVLRing(64)
	if r.ReadOne(func(uint16, uint16, []byte) {}) {
		t.Fatal("ReadOne on empty ring: want false")
	}
}
