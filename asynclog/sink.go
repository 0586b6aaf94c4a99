// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asynclog

import (
	"io"
	"sync"
)

// Sink is the capability a log destination exposes: write one already
// formatted line. No shared base class is needed — any type with this
// method can be added to a Logger.
type Sink interface {
	Write(formatted string) error
}

// ConsoleSink writes formatted lines to the io.Writer passed to
// NewConsoleSink (os.Stdout, for example); there is no default writer,
// so a ConsoleSink is built with NewConsoleSink. The mutex exists for callers that share one io.Writer
// across multiple sinks concurrently; the Logger's own consumer is
// always single-threaded, so it is never the source of contention on
// a ConsoleSink used only by that Logger.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleSink returns a ConsoleSink writing to w.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) Write(formatted string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, formatted+"\n")
	return err
}
