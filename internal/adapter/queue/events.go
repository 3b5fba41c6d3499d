package queue

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// StartEventLogger subscribes to the assist subjects and logs every event,
// giving operators a live trail of Sahayata requests and completed
// onboarding forms on this instance.
func StartEventLogger(mq MessageQueue, log *zap.Logger) error {
	err := mq.Subscribe(SubjectSahayata, func(data []byte) error {
		var event SahayataEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to decode sahayata event: %w", err)
		}
		log.Warn("Sahayata requested",
			zap.String("session_id", event.SessionID),
			zap.String("driver_id", event.DriverID),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", SubjectSahayata, err)
	}

	err = mq.Subscribe(SubjectFormCompleted, func(data []byte) error {
		var event FormCompletedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to decode form completed event: %w", err)
		}
		log.Info("Onboarding form completed",
			zap.String("session_id", event.SessionID),
			zap.String("form_id", event.FormID),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", SubjectFormCompleted, err)
	}
	return nil
}
