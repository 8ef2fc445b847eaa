package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "chat.completed").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewChatCompletedEvent is emitted after a dialogue turn produced an answer.
func NewChatCompletedEvent(userId int64, turnId string, usedKnowledge bool) Event {
	return BaseEvent{
		Type: "chat.completed",
		Data: map[string]interface{}{
			"user_id":        userId,
			"turn_id":        turnId,
			"used_knowledge": usedKnowledge,
		},
		OccurredAt: time.Now(),
	}
}

// NewKnowledgeUpdatedEvent is emitted when the knowledge base changes.
func NewKnowledgeUpdatedEvent(documentId, action string) Event {
	return BaseEvent{
		Type: "knowledge.updated",
		Data: map[string]interface{}{
			"document_id": documentId,
			"action":      action, // "added" | "updated" | "deleted"
		},
		OccurredAt: time.Now(),
	}
}
