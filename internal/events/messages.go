package events

import (
	"encoding/json"
	"time"
)

// ChangeMessage announces a local collection mutation to downstream
// consumers. It carries only identifiers, consumers fetch the full
// entity from the backend if they need it.
type ChangeMessage struct {
	Collection string    `json:"collection"`
	Op         string    `json:"op"`
	EntityID   string    `json:"entity_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewChangeMessage creates a change message stamped with the current time.
func NewChangeMessage(collection, op, entityID string) *ChangeMessage {
	return &ChangeMessage{
		Collection: collection,
		Op:         op,
		EntityID:   entityID,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChangeMessageFromJSON creates a message from JSON bytes
func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
