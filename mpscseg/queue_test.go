// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpscseg_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/richtraders/hft-transport/mpscseg"
)

func TestSPSCSanity(t *testing.T) {
	q := mpscseg.NewMPSCSeg[int](8)
	p := q.NewProducer()

	const n = 100_000
	go func() {
		for i := 0; i < n; i++ {
			v := i
			if err := p.Enqueue(&v); err != nil {
				t.Errorf("Enqueue(%d): %v", i, err)
			}
		}
	}()

	last := -1
	for count := 0; count < n; {
		v, err := q.Dequeue()
		if err != nil {
			continue
		}
		if v <= last {
			t.Fatalf("out of order: got %d after %d", v, last)
		}
		last = v
		count++
	}
}

func TestCountConservation(t *testing.T) {
	const producers = 8
	const perProducer = 2000
	const want = 7

	q := mpscseg.NewMPSCSeg[int](4)

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		p := q.NewProducer()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				v := want
				if err := p.Enqueue(&v); err != nil {
					t.Errorf("Enqueue: %v", err)
				}
			}
		}()
	}

	got := 0
	for got < producers*perProducer {
		v, err := q.Dequeue()
		if err != nil {
			continue
		}
		if v != want {
			t.Fatalf("Dequeue: got %d, want %d", v, want)
		}
		got++
	}
	wg.Wait()

	if _, err := q.Dequeue(); !errors.Is(err, mpscseg.ErrNotReady) {
		t.Fatalf("Dequeue on drained queue: got %v, want ErrNotReady", err)
	}
}

// TestConsumerMustNotSeeUnpublishedSlot runs four producers racing on a
// queue of 64-slot chunks while the test goroutine consumes, and checks
// that the consumer receives exactly producers*perProducer values while
// slots are being claimed and published concurrently. The deterministic
// half of this
// property (a claimed-but-not-yet-released slot must stall, not be
// skipped) is covered in the internal whitebox test
// TestInternalConsumerStallsOnClaimedSlot in this package.
func TestConsumerMustNotSeeUnpublishedSlot(t *testing.T) {
	q := mpscseg.NewMPSCSeg[int](64)
	const producers = 4
	const perProducer = 5000

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		p := q.NewProducer()
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				v := id*perProducer + j
				if err := p.Enqueue(&v); err != nil {
					t.Errorf("Enqueue: %v", err)
				}
			}
		}(i)
	}

	got := 0
	for got < producers*perProducer {
		if _, err := q.Dequeue(); err != nil {
			continue
		}
		got++
	}
	wg.Wait()
}

func TestEmptyQueue(t *testing.T) {
	q := mpscseg.NewMPSCSeg[int](4)
	if !q.Empty() {
		t.Fatal("Empty: want true on fresh queue")
	}
	v := 1
	p := q.NewProducer()
	_ = p.Enqueue(&v)
	if q.Empty() {
		t.Fatal("Empty: want false after Enqueue")
	}
}

func TestChunkRollover(t *testing.T) {
	q := mpscseg.NewMPSCSeg[int](2)
	p := q.NewProducer()

	for i := 0; i < 10; i++ {
		v := i
		if err := p.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	for i := 0; i < 10; i++ {
		v, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue(%d): %v", i, err)
		}
		if v != i {
			t.Fatalf("Dequeue(%d): got %d, want %d", i, v, i)
		}
	}
	if _, err := q.Dequeue(); !errors.Is(err, mpscseg.ErrNotReady) {
		t.Fatalf("Dequeue on drained queue: got %v, want ErrNotReady", err)
	}
}

func TestClose(t *testing.T) {
	q := mpscseg.NewMPSCSeg[int](4)
	p := q.NewProducer()
	for i := 0; i < 5; i++ {
		v := i
		_ = p.Enqueue(&v)
	}
	q.Close()
	if !q.Empty() {
		t.Fatal("Empty: want true after Close")
	}
}
