package domain

import (
	"testing"
	"time"
)

const (
	testInterval = 30 * time.Second
	testCooldown = 60 * time.Second
)

// TestAppendSegmentsDropsEmptyText tests that segments with empty or blank
// text never enter the buffer
func TestAppendSegmentsDropsEmptyText(t *testing.T) {
	session := NewSession("s1")

	appended := session.AppendSegments([]Segment{
		{Start: 0, End: 2, Text: "what about Tesla stock", Speaker: "A"},
		{Start: 2, End: 3, Text: "", Speaker: "B"},
		{Start: 3, End: 4, Text: "   ", Speaker: "B"},
		{Start: 4, End: 5, Text: "is it worth buying", Speaker: "A"},
	})

	if appended != 2 {
		t.Errorf("expected 2 segments appended, got %d", appended)
	}

	if len(session.Buffer) != 2 {
		t.Errorf("expected buffer length 2, got %d", len(session.Buffer))
	}
}

// TestFlushOrdersByStartTime tests that a flush joins texts in ascending
// start order regardless of arrival order
func TestFlushOrdersByStartTime(t *testing.T) {
	session := NewSession("s1")

	session.AppendSegments([]Segment{
		{Start: 4, End: 6, Text: "worth buying", Speaker: "B"},
		{Start: 0, End: 2, Text: "what about", Speaker: "A"},
		{Start: 2, End: 4, Text: "Tesla stock", Speaker: "A"},
	})

	combined := session.Flush(time.Now())

	want := "what about Tesla stock worth buying"
	if combined != want {
		t.Errorf("expected combined text %q, got %q", want, combined)
	}

	if len(session.Buffer) != 0 {
		t.Errorf("expected buffer to be cleared after flush, got length %d", len(session.Buffer))
	}
}

// TestFlushKeepsDuplicateSegments tests that duplicate deliveries are not
// deduplicated; both copies appear in the combined text
func TestFlushKeepsDuplicateSegments(t *testing.T) {
	session := NewSession("s1")

	seg := Segment{Start: 0, End: 2, Text: "buy apple", Speaker: "A"}
	session.AppendSegments([]Segment{seg})
	session.AppendSegments([]Segment{seg})

	combined := session.Flush(time.Now())

	if combined != "buy apple buy apple" {
		t.Errorf("expected duplicates preserved, got %q", combined)
	}
}

// TestShouldFlushRequiresElapsedWindowAndNonEmptyBuffer tests the flush predicate
func TestShouldFlushRequiresElapsedWindowAndNonEmptyBuffer(t *testing.T) {
	session := NewSession("s1")
	now := time.Now()

	// Empty buffer never flushes, even with the window elapsed
	if session.ShouldFlush(now, testInterval) {
		t.Error("expected no flush with an empty buffer")
	}

	session.AppendSegments([]Segment{{Start: 0, End: 1, Text: "hello", Speaker: "A"}})

	// Zero-valued LastFlushTime means the first buffered request flushes
	if !session.ShouldFlush(now, testInterval) {
		t.Error("expected flush for a fresh session with buffered text")
	}

	session.Flush(now)
	session.AppendSegments([]Segment{{Start: 1, End: 2, Text: "again", Speaker: "A"}})

	if session.ShouldFlush(now.Add(29*time.Second), testInterval) {
		t.Error("expected no flush before the aggregation window elapsed")
	}

	if !session.ShouldFlush(now.Add(30*time.Second), testInterval) {
		t.Error("expected flush once the aggregation window elapsed")
	}
}

// TestBufferPreservedWhenNoFlush tests that skipping a flush leaves the buffer intact
func TestBufferPreservedWhenNoFlush(t *testing.T) {
	session := NewSession("s1")
	now := time.Now()

	session.Flush(now)
	session.AppendSegments([]Segment{{Start: 0, End: 1, Text: "partial", Speaker: "A"}})

	if session.ShouldFlush(now.Add(10*time.Second), testInterval) {
		t.Fatal("expected no flush inside the window")
	}

	if len(session.Buffer) != 1 {
		t.Errorf("expected buffer preserved across non-flushing requests, got length %d", len(session.Buffer))
	}
}

// TestCanNotifyCooldown tests the notification cooldown predicate
func TestCanNotifyCooldown(t *testing.T) {
	session := NewSession("s1")
	now := time.Now()

	// Zero-valued LastNotificationTime never blocks
	if !session.CanNotify(now, testCooldown) {
		t.Error("expected fresh session to pass the notification gate")
	}

	session.MarkNotified(now)

	if session.CanNotify(now.Add(59*time.Second), testCooldown) {
		t.Error("expected gate closed inside the cooldown window")
	}

	if !session.CanNotify(now.Add(60*time.Second), testCooldown) {
		t.Error("expected gate open once the cooldown elapsed")
	}
}

// TestIsIdleSince tests the TTL predicate used for eviction
func TestIsIdleSince(t *testing.T) {
	session := NewSession("s1")
	now := time.Now()
	session.LastActivityTime = now

	if session.IsIdleSince(now.Add(29*time.Minute), 30*time.Minute) {
		t.Error("expected session to be live before the TTL elapsed")
	}

	if !session.IsIdleSince(now.Add(30*time.Minute), 30*time.Minute) {
		t.Error("expected session to be idle once the TTL elapsed")
	}
}
