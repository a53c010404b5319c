package events

import (
	"testing"
	"time"
)

func TestNewChangeMessage(t *testing.T) {
	msg := NewChangeMessage("transactions", "add", "t1")

	if msg.Collection != "transactions" {
		t.Errorf("Collection = %q, want transactions", msg.Collection)
	}
	if msg.Op != "add" {
		t.Errorf("Op = %q, want add", msg.Op)
	}
	if msg.EntityID != "t1" {
		t.Errorf("EntityID = %q, want t1", msg.EntityID)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestChangeMessage_JSON(t *testing.T) {
	timestamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	msg := &ChangeMessage{
		Collection: "goals",
		Op:         "update",
		EntityID:   "g2",
		Timestamp:  timestamp,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := ChangeMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("ChangeMessageFromJSON() error = %v", err)
	}

	if parsed.Collection != msg.Collection {
		t.Errorf("Parsed Collection = %q, want %q", parsed.Collection, msg.Collection)
	}
	if parsed.Op != msg.Op {
		t.Errorf("Parsed Op = %q, want %q", parsed.Op, msg.Op)
	}
	if parsed.EntityID != msg.EntityID {
		t.Errorf("Parsed EntityID = %q, want %q", parsed.EntityID, msg.EntityID)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestChangeMessage_InvalidJSON(t *testing.T) {
	if _, err := ChangeMessageFromJSON([]byte(`{"collection": 12}`)); err == nil {
		t.Error("ChangeMessageFromJSON() should fail with invalid JSON")
	}
}
