// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asynclog

// Level is a log severity, ordered so that Level comparison ("below
// the configured level") is a plain integer comparison.
type Level int32

const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	Fatal
)

// String returns the level's name as it appears in a formatted record,
// e.g. "INFO".
func (l Level) String() string {
	switch l {
	case Trace:
		return "TRACE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Record is one log event as it travels through the queue between a
// Producer and the consumer. The timestamp is sampled at enqueue time
// (see Producer.Log), not when the consumer eventually formats the
// record, so a backlogged consumer never distorts when the event
// actually happened.
type Record struct {
	Level         Level
	TimeUnixMilli int64
	ThreadID      int64
	File          string
	Line          int
	Func          string
	Text          string
}
