// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asynclog

import "fmt"

// SinkError wraps the error returned by a Sink's Write, naming which
// sink produced it. A SinkError is never returned to the Producer that
// enqueued the record — see Logger.ErrorCallback — because by the time
// a sink fails the record has already left its producer.
type SinkError struct {
	SinkIndex int
	Err       error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("asynclog: sink %d: %v", e.SinkIndex, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
