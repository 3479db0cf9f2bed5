package domain

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Segment represents one timestamped span of transcribed speech
type Segment struct {
	Start   float64 // offset in seconds from the session start
	End     float64
	Text    string
	Speaker string // carried through, never interpreted
}

// Session struct - Core domain entity
// Holds the per-session aggregation state: buffered transcript segments,
// the last flush timestamp and the last notification timestamp.
// The embedded mutex serializes all request processing for one session id;
// callers must hold it across the whole webhook pipeline.
type Session struct {
	sync.Mutex

	ID                   string
	Buffer               []Segment
	LastFlushTime        time.Time
	LastNotificationTime time.Time
	LastActivityTime     time.Time // for TTL eviction; guarded by the store's lock, not this mutex
}

// NewSession creates a zero-valued session for the given id.
// Zero timestamps mean the first buffered request flushes immediately and
// the first positive intent is never blocked by the cooldown.
func NewSession(id string) *Session {
	return &Session{
		ID:     id,
		Buffer: make([]Segment, 0),
	}
}

// AppendSegments buffers the given segments in arrival order.
// Segments with empty text are silently discarded; ordering by start time
// is enforced at flush time, not on insert.
func (s *Session) AppendSegments(segments []Segment) int {
	appended := 0
	for _, seg := range segments {
		if strings.TrimSpace(seg.Text) == "" {
			continue
		}
		s.Buffer = append(s.Buffer, seg)
		appended++
	}
	return appended
}

// ShouldFlush reports whether the aggregation window has elapsed and there
// is buffered text to process.
func (s *Session) ShouldFlush(now time.Time, interval time.Duration) bool {
	return now.Sub(s.LastFlushTime) >= interval && len(s.Buffer) > 0
}

// Flush combines the buffered segments into one text block, ordered by
// ascending start offset regardless of arrival order, then clears the
// buffer and records the flush time. Texts are joined with single spaces.
func (s *Session) Flush(now time.Time) string {
	sort.SliceStable(s.Buffer, func(i, j int) bool {
		return s.Buffer[i].Start < s.Buffer[j].Start
	})

	texts := make([]string, 0, len(s.Buffer))
	for _, seg := range s.Buffer {
		texts = append(texts, seg.Text)
	}

	s.Buffer = s.Buffer[:0]
	s.LastFlushTime = now

	return strings.Join(texts, " ")
}

// CanNotify reports whether the notification cooldown has elapsed.
func (s *Session) CanNotify(now time.Time, cooldown time.Duration) bool {
	return now.Sub(s.LastNotificationTime) >= cooldown
}

// MarkNotified records that a notification is being dispatched.
// Only called on the branch where intent is confirmed positive and the
// cooldown gate passed.
func (s *Session) MarkNotified(now time.Time) {
	s.LastNotificationTime = now
}

// IsIdleSince reports whether the session has seen no activity for at
// least ttl. Used by the store for eviction.
func (s *Session) IsIdleSince(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastActivityTime) >= ttl
}
