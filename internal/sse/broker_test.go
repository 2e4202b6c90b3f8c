package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublishDelivery(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(Event{Type: "assets.created", Data: map[string]string{"name": "a.png"}})

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: assets.created") {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, `"name":"a.png"`) {
			t.Errorf("missing data in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestPublishRecordEvent_SummaryThrottle(t *testing.T) {
	b := NewBroker(500 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// First record event should trigger portfolio.updated; the second,
	// inside the throttle window, should not.
	b.PublishRecordEvent("skills", "created", "id-1")
	b.PublishRecordEvent("skills", "updated", "id-2")

	time.Sleep(50 * time.Millisecond)
	summaryCount := 0
	recordCount := 0
loop:
	for {
		select {
		case msg := <-ch:
			s := string(msg)
			if strings.Contains(s, "portfolio.updated") {
				summaryCount++
			} else {
				recordCount++
			}
		default:
			break loop
		}
	}

	if recordCount != 2 {
		t.Errorf("record events = %d, want 2", recordCount)
	}
	if summaryCount != 1 {
		t.Errorf("summary events = %d, want 1 (throttled)", summaryCount)
	}
}

func TestRecordEventNamesCollection(t *testing.T) {
	b := NewBroker(time.Hour) // suppress the summary for a clean read
	defer b.Close()

	// A first event consumes the initial summary allowance.
	b.PublishRecordEvent("projects", "created", "warmup")
	time.Sleep(20 * time.Millisecond)

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)
	b.PublishRecordEvent("projects", "archived", "id-9")

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: projects.archived") {
			t.Errorf("event = %q", s)
		}
		if !strings.Contains(s, `"id":"id-9"`) {
			t.Errorf("payload = %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}
}

func TestServeHTTPStreamsEvents(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(w, req)
		close(done)
	}()

	// Wait for the subscription to land, then publish and disconnect.
	deadline := time.After(time.Second)
	for b.ClientCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("client never subscribed")
		case <-time.After(5 * time.Millisecond):
		}
	}
	b.Publish(Event{Type: "ping", Data: map[string]string{}})
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "event: ping") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	b := NewBroker(time.Second)
	ch := b.Subscribe()
	b.Close()
	b.Close()

	if _, ok := <-ch; ok {
		t.Error("subscriber channel should be closed")
	}
	if got := b.Subscribe(); got == nil {
		t.Error("Subscribe after Close should return a closed channel, not nil")
	}
}
