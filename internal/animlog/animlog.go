// Package animlog keeps the short, most-recent-first animation log shown in
// the viewer panel.
package animlog

import (
	"fmt"
	"time"
)

// Capacity is the maximum number of retained entries.
const Capacity = 10

// TimeLayout formats entry timestamps.
const TimeLayout = "15:04:05"

// Entry is one timestamped log line.
type Entry struct {
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
}

// String renders the entry as "[hh:mm:ss] message".
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Time.Format(TimeLayout), e.Message)
}

// Append returns a new log with message prepended at now, truncated to
// Capacity entries. The input slice is not modified.
func Append(log []Entry, message string, now time.Time) []Entry {
	n := len(log) + 1
	if n > Capacity {
		n = Capacity
	}
	out := make([]Entry, n)
	out[0] = Entry{Time: now, Message: message}
	copy(out[1:], log)
	return out
}

// Log is a bounded animation log with a pluggable clock and an optional sink
// that receives every rendered line.
type Log struct {
	entries []Entry
	now     func() time.Time
	sink    func(line string)
}

// Option configures a Log.
type Option func(*Log)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithSink mirrors each appended line to fn.
func WithSink(fn func(line string)) Option {
	return func(l *Log) { l.sink = fn }
}

// New creates an empty log.
func New(opts ...Option) *Log {
	l := &Log{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends a message.
func (l *Log) Add(message string) Entry {
	l.entries = Append(l.entries, message, l.now())
	if l.sink != nil {
		l.sink(l.entries[0].String())
	}
	return l.entries[0]
}

// Addf appends a formatted message.
func (l *Log) Addf(format string, args ...any) Entry {
	return l.Add(fmt.Sprintf(format, args...))
}

// Entries returns a copy of the entries, most recent first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Lines returns the rendered entries, most recent first.
func (l *Log) Lines() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.String()
	}
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	return len(l.entries)
}
