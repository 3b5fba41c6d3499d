package nlu

import (
	"regexp"
	"strings"

	"github.com/saathi-labs/saarthi/internal/domain"
)

// Classifier is a rule-based intent matcher over a closed demo vocabulary.
// Rules are evaluated in fixed priority order and the first match wins;
// the ordering is load-bearing because keyword sets overlap (a help request
// that mentions a number must still route to sahayata).
type Classifier struct {
	rules []rule
}

type rule struct {
	intent   domain.IntentName
	match    func(text string) bool
	entities func(raw, text string) map[string]any
}

var vehicleRegRe = regexp.MustCompile(`[a-z]{2}\s?[0-9]{1,2}\s?[a-z]{1,2}\s?[0-9]{1,4}`)

var (
	helpKeywords     = []string{"help", "sahayata", "emergency", "madad"}
	formKeywords     = []string{"form", "onboard", "onboarding", "form bhar"}
	earningsKeywords = []string{"earn", "kamai", "kitni", "net ka", "net kamai", "after expenses", "baad"}
	afterExpKeywords = []string{"after expenses", "baad", "net"}
	compareKeywords  = []string{"compare", "behtar", "pichle", "better"}
)

func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{
				intent: domain.IntentSahayata,
				match:  containsAny(helpKeywords),
			},
			{
				intent: domain.IntentStartForm,
				match:  containsAny(formKeywords),
			},
			{
				intent: domain.IntentQueryEarnings,
				match:  containsAny(earningsKeywords),
				entities: func(raw, text string) map[string]any {
					return map[string]any{
						"date_range":     ExtractDateRange(text),
						"after_expenses": containsAny(afterExpKeywords)(text),
					}
				},
			},
			{
				intent: domain.IntentComparePeriod,
				match:  containsAny(compareKeywords),
				entities: func(raw, text string) map[string]any {
					return map[string]any{"date_range": ExtractDateRange(text)}
				},
			},
			{
				intent: domain.IntentFormFieldAnswer,
				match: func(text string) bool {
					return vehicleRegRe.MatchString(text) || digitRunRe.MatchString(text)
				},
				entities: func(raw, text string) map[string]any {
					return map[string]any{"text": raw}
				},
			},
		},
	}
}

// Classify maps one utterance to an intent plus extracted entities.
// Pure and deterministic; unmatched input falls back to small_talk.
func (c *Classifier) Classify(utterance string) domain.Intent {
	text := strings.ToLower(utterance)
	for _, r := range c.rules {
		if !r.match(text) {
			continue
		}
		intent := domain.Intent{Name: r.intent}
		if r.entities != nil {
			intent.Entities = r.entities(utterance, text)
		}
		return intent
	}
	return domain.Intent{Name: domain.IntentSmallTalk}
}

func containsAny(keywords []string) func(string) bool {
	return func(text string) bool {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}
