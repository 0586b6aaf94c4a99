// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package asynclog

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Format renders r in a fixed textual layout:
//
//	[YYYY-MM-DDTHH:MM:SS.mmm][LEVEL][tid=<id>][file:line][func] <text>
func Format(r Record) string {
	ts := time.UnixMilli(r.TimeUnixMilli).UTC()

	var b strings.Builder
	b.Grow(64 + len(r.Text))
	b.WriteByte('[')
	b.WriteString(ts.Format("2006-01-02T15:04:05"))
	b.WriteByte('.')
	ms := ts.Nanosecond() / int(time.Millisecond)
	if ms < 100 {
		b.WriteByte('0')
	}
	if ms < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(ms))
	b.WriteString("][")
	b.WriteString(r.Level.String())
	b.WriteString("][tid=")
	b.WriteString(strconv.FormatInt(r.ThreadID, 10))
	b.WriteString("][")
	b.WriteString(filepath.Base(r.File))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(r.Line))
	b.WriteString("][")
	b.WriteString(r.Func)
	b.WriteString("] ")
	b.WriteString(r.Text)
	return b.String()
}
