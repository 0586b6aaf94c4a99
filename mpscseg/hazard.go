// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpscseg

import (
	"sync/atomic"

	"github.com/richtraders/hft-transport/internal/atomicpad"
)

// hazardSlot announces that a producer may still be dereferencing the
// chunk whose address it holds. A nil value means the owning producer is
// between operations and holds no reference. Holding the chunk as a real
// *chunk[T] (not a uintptr) keeps it GC-reachable for as long as the
// hazard is published, on top of the reclaim-ordering guarantee the
// hazard protocol itself provides.
type hazardSlot[T any] struct {
	_   atomicpad.Pad
	ptr atomic.Pointer[chunk[T]]
	_   atomicpad.Pad
}
