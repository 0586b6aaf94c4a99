// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asynclog

import (
	"fmt"
	"os"
	"sync"
)

// RotatingFileSink writes one record per line to a file and rotates it
// once its size exceeds maxSizeBytes: the current file is renamed to
// "<name>.1" (overwriting any previous backup) and a fresh file is
// opened in its place. Single-slot rotation only — there is never more
// than one backup.
type RotatingFileSink struct {
	mu           sync.Mutex
	path         string
	maxSizeBytes int64
	fileMode     os.FileMode

	file    *os.File
	written int64
}

// NewRotatingFileSink opens (creating if necessary) path for append and
// returns a sink that rotates once the file exceeds maxSizeBytes.
func NewRotatingFileSink(path string, maxSizeBytes int64) (*RotatingFileSink, error) {
	const defaultMode = 0o640
	f, size, err := openAppend(path, defaultMode)
	if err != nil {
		return nil, fmt.Errorf("asynclog: open %q: %w", path, err)
	}
	return &RotatingFileSink{
		path:         path,
		maxSizeBytes: maxSizeBytes,
		fileMode:     defaultMode,
		file:         f,
		written:      size,
	}, nil
}

func openAppend(path string, mode os.FileMode) (*os.File, int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

func (s *RotatingFileSink) Write(formatted string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := formatted + "\n"
	n, err := s.file.WriteString(line)
	s.written += int64(n)
	if err != nil {
		return fmt.Errorf("asynclog: write %q: %w", s.path, err)
	}

	if s.written > s.maxSizeBytes {
		if err := s.rotate(); err != nil {
			return err
		}
	}
	return nil
}

// rotate closes the current file, renames it to "<path>.1" (replacing
// any earlier backup), and reopens path fresh. Must be called with
// s.mu held.
func (s *RotatingFileSink) rotate() error {
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("asynclog: close %q before rotation: %w", s.path, err)
	}

	backup := s.path + ".1"
	if err := os.Rename(s.path, backup); err != nil {
		return fmt.Errorf("asynclog: rotate %q to %q: %w", s.path, backup, err)
	}

	f, _, err := openAppend(s.path, s.fileMode)
	if err != nil {
		return fmt.Errorf("asynclog: reopen %q after rotation: %w", s.path, err)
	}
	s.file = f
	s.written = 0
	return nil
}

// Close closes the underlying file. Not safe to call while the owning
// Logger's consumer may still write to this sink.
func (s *RotatingFileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
