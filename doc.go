// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hft is the root of an HFT client transport toolkit: the
// lock-free in-process plumbing that carries market data and log
// records between CPU-pinned threads.
//
// The root package holds no code of its own — every component is its
// own importable package, following the flat, single-purpose package
// layout this module's teacher (code.hybscloud.com/lfq) uses:
//
//	mpscseg  unbounded multi-producer/single-consumer segmented queue
//	vlring   variable-length SPSC ring buffer carrying framed messages
//	depth    order-book depth-update continuity validator
//	fixseq   FIX tag-34 sequence counter
//	asynclog non-blocking structured logger built on mpscseg
//	cpupin   CPU-pinned worker goroutines
package hft
