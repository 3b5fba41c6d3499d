package domain

type ActionType string

const (
	ActionShowCard       ActionType = "show_card"
	ActionStartForm      ActionType = "start_form"
	ActionFormNext       ActionType = "form_next"
	ActionFormCompleted  ActionType = "form_completed"
	ActionSahayataPrompt ActionType = "sahayata_prompt"
	ActionCompare        ActionType = "compare"
)

// TurnRequest is one utterance plus routing hints. Transcript may be empty;
// an empty transcript flows through the classifier and lands in small_talk.
type TurnRequest struct {
	Transcript string `json:"transcript"`
	SessionID  string `json:"session_id,omitempty"`
	DriverID   string `json:"driver_id,omitempty"`
}

type Card struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type Action struct {
	Type      ActionType        `json:"type"`
	NextField FormStage         `json:"next_field,omitempty"`
	Values    map[string]string `json:"values,omitempty"`
}

// TurnResponse is the envelope returned for every turn. It is always
// well-formed; bad user input never produces an error.
type TurnResponse struct {
	SessionID    string         `json:"session_id"`
	Intent       IntentName     `json:"intent"`
	Entities     map[string]any `json:"entities"`
	ResponseText string         `json:"responseText"`
	Card         *Card          `json:"card,omitempty"`
	Action       *Action        `json:"action,omitempty"`
}
