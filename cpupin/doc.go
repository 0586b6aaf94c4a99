// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cpupin launches a goroutine locked to its own OS thread and
// pinned to a nominated CPU, for the hand-off threads that sit on
// either end of mpscseg and vlring.
//
// Go has no direct equivalent of pthread_create plus
// pthread_setaffinity_np: a goroutine migrates between OS threads by
// default. Worker.Start calls runtime.LockOSThread inside the spawned
// goroutine before setting affinity, so the pin actually sticks for the
// task's lifetime instead of being silently undone by the next
// scheduler preemption.
package cpupin
