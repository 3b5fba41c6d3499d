package queue

import (
	"encoding/json"
	"time"
)

// Subjects for assist events consumed by the ops and onboarding pipelines.
const (
	SubjectSahayata      = "assist.sahayata"
	SubjectFormCompleted = "assist.form.completed"
)

// MessageQueue defines the interface for a message queue adapter.
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Close() error
}

// SahayataEvent is published on every emergency turn so dispatch can follow up.
type SahayataEvent struct {
	SessionID  string    `json:"session_id"`
	DriverID   string    `json:"driver_id,omitempty"`
	Transcript string    `json:"transcript"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FormCompletedEvent carries the collected onboarding values.
type FormCompletedEvent struct {
	SessionID   string            `json:"session_id"`
	FormID      string            `json:"form_id"`
	Values      map[string]string `json:"values"`
	CompletedAt time.Time         `json:"completed_at"`
}

// PublishJSON marshals v and publishes it on subject.
func PublishJSON(mq MessageQueue, subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return mq.Publish(subject, data)
}
