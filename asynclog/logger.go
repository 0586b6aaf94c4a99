// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asynclog

import (
	"runtime"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"github.com/agilira/go-timecache"

	"github.com/richtraders/hft-transport/mpscseg"
)

// Logger is a constructed value, never a package-level singleton — a
// caller that wants one process-wide logger builds it once in main and
// passes it down explicitly.
type Logger struct {
	queue *mpscseg.MPSCSeg[Record]
	clock *timecache.TimeCache

	level atomix.Uint32
	stop  atomix.Bool

	// wake is the Go idiom for the original's counting semaphore: a
	// 1-buffered channel coalesces any number of pending "queue became
	// non-empty" signals into a single wakeup, since the consumer
	// always drains the whole queue once woken rather than once per
	// enqueued record.
	wake chan struct{}
	done chan struct{}

	sinksMu sync.RWMutex
	sinks   []Sink

	// ErrorCallback, if set, is invoked by the consumer goroutine when
	// a sink's Write fails. The failing sink does not block the others.
	ErrorCallback func(*SinkError)
}

// New constructs a Logger at the given level with the given initial
// sinks (more may be added later with AddSink) and starts its consumer
// goroutine. Call Shutdown to stop it.
func New(level Level, sinks ...Sink) *Logger {
	l := &Logger{
		queue: mpscseg.NewMPSCSeg[Record](64),
		clock: timecache.NewWithResolution(time.Millisecond),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
		sinks: append([]Sink(nil), sinks...),
	}
	l.level.StoreRelaxed(uint32(level))
	go l.consume()
	return l
}

// Level returns the currently configured minimum level.
func (l *Logger) Level() Level {
	return Level(l.level.LoadRelaxed())
}

// SetLevel changes the minimum level records must meet to be enqueued.
// Safe to call concurrently with Producer.Log.
func (l *Logger) SetLevel(level Level) {
	l.level.StoreRelaxed(uint32(level))
}

// AddSink registers an additional sink. Safe to call concurrently with
// the consumer goroutine and with other AddSink calls.
func (l *Logger) AddSink(s Sink) {
	l.sinksMu.Lock()
	defer l.sinksMu.Unlock()
	l.sinks = append(l.sinks, s)
}

// Producer is a non-owning handle a single producer goroutine obtains
// once (typically at the start of a pinned worker's task) and reuses
// for every subsequent Log call.
type Producer struct {
	logger   *Logger
	handle   *mpscseg.Producer[Record]
	threadID int64
}

// NewProducer registers a new producer handle against the logger.
func (l *Logger) NewProducer() *Producer {
	return &Producer{
		logger:   l,
		handle:   l.queue.NewProducer(),
		threadID: currentThreadID(),
	}
}

// Log enqueues a record if level meets the logger's configured minimum.
// Below-threshold records are dropped before touching the queue at
// all. Never blocks on I/O.
func (p *Producer) Log(level Level, text string) {
	p.log(level, text, 2)
}

func (p *Producer) log(level Level, text string, skip int) {
	if level < p.logger.Level() {
		return
	}
	pc, file, line, ok := runtime.Caller(skip)
	funcName := "?"
	if !ok {
		file, line = "?", 0
	} else if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	rec := Record{
		Level:         level,
		TimeUnixMilli: p.logger.clock.CachedTime().UnixMilli(),
		ThreadID:      p.threadID,
		File:          file,
		Line:          line,
		Func:          funcName,
		Text:          text,
	}
	_ = p.handle.Enqueue(&rec)
	p.logger.signal()
}

func (p *Producer) Trace(text string) { p.log(Trace, text, 2) }
func (p *Producer) Debug(text string) { p.log(Debug, text, 2) }
func (p *Producer) Info(text string)  { p.log(Info, text, 2) }
func (p *Producer) Warn(text string)  { p.log(Warn, text, 2) }
func (p *Producer) Error(text string) { p.log(Error, text, 2) }
func (p *Producer) Fatal(text string) { p.log(Fatal, text, 2) }

// signal wakes the consumer if it is idle. Non-blocking: if a wakeup
// is already pending, this is a no-op, matching a counting semaphore
// collapsed to "at least one pending wakeup".
func (l *Logger) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// consume is the logger's single consumer goroutine: block on wake (or
// discover stop was requested), then drain every currently published
// record to every sink, repeat until stopped and drained.
func (l *Logger) consume() {
	defer close(l.done)
	for {
		l.drain()
		if l.stop.LoadAcquire() {
			// One more drain: a producer may have enqueued and signaled
			// between our last drain and observing the stop flag.
			l.drain()
			return
		}
		<-l.wake
	}
}

func (l *Logger) drain() {
	for {
		rec, err := l.queue.Dequeue()
		if err != nil {
			return
		}
		l.writeToSinks(rec)
	}
}

func (l *Logger) writeToSinks(rec Record) {
	formatted := Format(rec)
	l.sinksMu.RLock()
	sinks := l.sinks
	l.sinksMu.RUnlock()

	for i, s := range sinks {
		if err := s.Write(formatted); err != nil {
			if l.ErrorCallback != nil {
				l.ErrorCallback(&SinkError{SinkIndex: i, Err: err})
			}
		}
	}
}

// Shutdown requests the consumer stop, then blocks until it has drained
// every record enqueued before this call returns to its caller. No
// Producer may call Log concurrently with or after Shutdown.
func (l *Logger) Shutdown() {
	l.stop.StoreRelease(true)
	l.signal()
	<-l.done
}

