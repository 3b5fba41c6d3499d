package domain

import (
	"time"
)

type FormStage string

const (
	FormStageName       FormStage = "name"
	FormStageVehicleReg FormStage = "vehicle_registration"
	FormStagePhone      FormStage = "phone"
	FormStageCompleted  FormStage = "completed"
)

// Form is single-field slot filling over the fixed sequence
// name → vehicle_registration → phone. Stages only advance forward;
// a completed form accepts no further writes.
type Form struct {
	FormID       string            `json:"form_id"`
	CurrentField FormStage         `json:"current_field"`
	Values       map[string]string `json:"values"`
	Completed    bool              `json:"completed"`
}

func NewForm(formID string) *Form {
	return &Form{
		FormID:       formID,
		CurrentField: FormStageName,
		Values:       make(map[string]string),
	}
}

type Session struct {
	ID         string     `json:"id"`
	FormState  *Form      `json:"form_state,omitempty"`
	LastIntent IntentName `json:"last_intent,omitempty"`
	Locale     string     `json:"locale"`
	LastSeenAt time.Time  `json:"last_seen_at"`
}

const DefaultLocale = "hi-IN"

func NewSession(id string) *Session {
	return &Session{
		ID:         id,
		Locale:     DefaultLocale,
		LastSeenAt: time.Now(),
	}
}
