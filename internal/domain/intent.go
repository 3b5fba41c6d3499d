package domain

type IntentName string

const (
	IntentSahayata        IntentName = "sahayata"
	IntentStartForm       IntentName = "start_form"
	IntentQueryEarnings   IntentName = "query_earnings"
	IntentComparePeriod   IntentName = "compare_period"
	IntentFormFieldAnswer IntentName = "form_field_answer"
	IntentSmallTalk       IntentName = "small_talk"
)

type DateRange string

const (
	DateRangeToday     DateRange = "today"
	DateRangeYesterday DateRange = "yesterday"
	DateRangeLastWeek  DateRange = "last_week"
)

// Intent is the classifier output for one utterance.
type Intent struct {
	Name     IntentName     `json:"name"`
	Entities map[string]any `json:"entities,omitempty"`
}
