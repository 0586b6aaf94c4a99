// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asynclog is a non-blocking, multi-producer structured
// logger built on top of mpscseg: producers enqueue Records without
// touching I/O, and one dedicated consumer goroutine formats and fans
// each Record out to every configured Sink.
//
// A caller obtains one *Producer per long-lived goroutine (typically a
// CPU-pinned worker) via Logger.NewProducer and calls its Log method;
// Logger itself has no Log method. This mirrors mpscseg's own
// producer-handle pattern so the hot path never performs a lookup keyed
// by goroutine identity.
package asynclog
