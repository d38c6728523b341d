package event

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/AgentricAI/agentricai/internal/logging"
)

func TestBus_Subscribe(t *testing.T) {
	bus := NewBus()

	called := false
	id := bus.Subscribe(TypeAuthorized, func(e Event) {
		called = true
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}
	if bus.SubscriptionCount() != 1 {
		t.Errorf("Expected 1 subscription, got %d", bus.SubscriptionCount())
	}
	if called {
		t.Error("Handler should not be called until an event is published")
	}
}

func TestBus_Publish(t *testing.T) {
	bus := NewBus()

	var received Event
	bus.Subscribe(TypeInstructionAccepted, func(e Event) {
		received = e
	})

	bus.Publish(NewInstructionAcceptedEvent("AgentricAI_001", "deploy"))

	if received == nil {
		t.Fatal("Handler should have received the event")
	}
	accepted, ok := received.(InstructionAcceptedEvent)
	if !ok {
		t.Fatalf("received %T, want InstructionAcceptedEvent", received)
	}
	if accepted.Task != "deploy" || accepted.AgentID != "AgentricAI_001" {
		t.Errorf("unexpected payload: %+v", accepted)
	}
	if accepted.Timestamp().IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestBus_PublishNoMatchingHandlers(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(TypeInstructionRejected, func(e Event) {
		t.Error("Handler should not be called for non-matching event type")
	})

	bus.Publish(NewAuthorizedEvent("AgentricAI_001"))
}

func TestBus_SubscribeAllOrdering(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.SubscribeAll(func(e Event) { order = append(order, "wildcard") })
	bus.Subscribe(TypeAuthorized, func(e Event) { order = append(order, "specific-1") })
	bus.Subscribe(TypeAuthorized, func(e Event) { order = append(order, "specific-2") })

	bus.Publish(NewAuthorizedEvent("AgentricAI_001"))

	want := []string{"specific-1", "specific-2", "wildcard"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	id := bus.Subscribe(TypeAuthorized, func(e Event) { calls++ })
	keep := bus.Subscribe(TypeAuthorized, func(e Event) { calls += 10 })

	if !bus.Unsubscribe(id) {
		t.Fatal("Unsubscribe should return true for a known ID")
	}
	if bus.Unsubscribe(id) {
		t.Error("Unsubscribe should return false for an already removed ID")
	}

	bus.Publish(NewAuthorizedEvent("AgentricAI_001"))
	if calls != 10 {
		t.Errorf("calls = %d, want 10 (only %s should fire)", calls, keep)
	}
}

func TestBus_HandlerPanicRecovered(t *testing.T) {
	bus := NewBus()
	var buf bytes.Buffer
	bus.SetLogger(logging.NewLoggerWithWriter(&buf, logging.LevelError))

	reached := false
	bus.Subscribe(TypeInstructionRejected, func(e Event) { panic("boom") })
	bus.Subscribe(TypeInstructionRejected, func(e Event) { reached = true })

	bus.Publish(NewInstructionRejectedEvent("AgentricAI_001"))

	if !reached {
		t.Error("handler after a panicking handler should still run")
	}
	if !strings.Contains(buf.String(), "event handler panicked") {
		t.Errorf("expected panic to be logged, got %q", buf.String())
	}
}

func TestBus_Clear(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(TypeAuthorized, func(e Event) {})
	bus.SubscribeAll(func(e Event) {})

	bus.Clear()

	if bus.SubscriptionCount() != 0 {
		t.Errorf("SubscriptionCount() = %d after Clear, want 0", bus.SubscriptionCount())
	}
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	count := 0
	bus.SubscribeAll(func(e Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(NewInstructionRejectedEvent("AgentricAI_001"))
		}()
	}
	wg.Wait()

	if count != 50 {
		t.Errorf("count = %d, want 50", count)
	}
}

func TestEventTypes(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewAuthorizedEvent("a"), TypeAuthorized},
		{NewAuthorizationRejectedEvent("a", false), TypeAuthorizationRejected},
		{NewInstructionAcceptedEvent("a", "t"), TypeInstructionAccepted},
		{NewInstructionRejectedEvent("a"), TypeInstructionRejected},
	}

	for _, tt := range tests {
		if got := tt.event.EventType(); got != tt.want {
			t.Errorf("%T.EventType() = %q, want %q", tt.event, got, tt.want)
		}
	}
}
