package dialog

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/saathi-labs/saarthi/internal/adapter/queue"
	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/nlu"
	"github.com/saathi-labs/saarthi/internal/observability/telemetry"
	"github.com/saathi-labs/saarthi/internal/ports"
)

const DefaultFormID = "driver_onboarding"

// Service orchestrates one conversation turn: classify the utterance,
// consult and mutate the session under its lock, call the earnings lookup
// when needed, and build the response envelope. Bad user input is never an
// error; every turn yields a well-formed envelope.
type Service struct {
	classifier      *nlu.Classifier
	sessions        ports.SessionStore
	earnings        ports.EarningsService
	mq              queue.MessageQueue
	defaultDriverID string
	log             *zap.Logger
	tracer          trace.Tracer
}

func NewService(
	sessions ports.SessionStore,
	earnings ports.EarningsService,
	mq queue.MessageQueue,
	defaultDriverID string,
	log *zap.Logger,
) ports.DialogService {
	return &Service{
		classifier:      nlu.NewClassifier(),
		sessions:        sessions,
		earnings:        earnings,
		mq:              mq,
		defaultDriverID: defaultDriverID,
		log:             log,
		tracer:          otel.Tracer("saarthi/dialog"),
	}
}

func (s *Service) ProcessTurn(ctx context.Context, req domain.TurnRequest) (*domain.TurnResponse, error) {
	ctx, span := s.tracer.Start(ctx, "dialog.turn")
	defer span.End()
	start := time.Now()

	// Known ids are locked before the read; a freshly minted id cannot be
	// contended, so locking it after GetOrCreate is safe.
	if req.SessionID != "" {
		unlock := s.sessions.Lock(req.SessionID)
		defer unlock()
	}
	id, sess, err := s.sessions.GetOrCreate(ctx, req.SessionID)
	if err != nil {
		telemetry.DialogTurnsTotal.WithLabelValues("unknown", "error").Inc()
		return nil, fmt.Errorf("session store: %w", err)
	}
	if id != req.SessionID {
		unlock := s.sessions.Lock(id)
		defer unlock()
	}

	intent := s.classifier.Classify(req.Transcript)
	span.SetAttributes(attribute.String("dialog.intent", string(intent.Name)))

	resp, err := s.dispatch(ctx, req, sess, intent)
	if err != nil {
		telemetry.DialogTurnsTotal.WithLabelValues(string(intent.Name), "error").Inc()
		return nil, err
	}
	resp.SessionID = id
	if resp.Entities == nil {
		resp.Entities = map[string]any{}
	}

	sess.LastIntent = resp.Intent
	if err := s.sessions.Save(ctx, sess); err != nil {
		telemetry.DialogTurnsTotal.WithLabelValues(string(resp.Intent), "error").Inc()
		return nil, fmt.Errorf("session store: %w", err)
	}

	telemetry.DialogTurnsTotal.WithLabelValues(string(resp.Intent), "ok").Inc()
	telemetry.DialogTurnLatency.Observe(time.Since(start).Seconds())
	s.log.Debug("Dialog turn processed",
		zap.String("session_id", id),
		zap.String("intent", string(resp.Intent)),
	)
	return resp, nil
}

// StartForm is the externally triggered twin of the start_form intent: a
// fresh session bound to the named form, answering with the first prompt.
func (s *Service) StartForm(ctx context.Context, formID, driverID string) (*domain.TurnResponse, error) {
	if formID == "" {
		formID = DefaultFormID
	}

	id, sess, err := s.sessions.GetOrCreate(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	unlock := s.sessions.Lock(id)
	defer unlock()

	sess.FormState = domain.NewForm(formID)
	sess.LastIntent = domain.IntentStartForm
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	return &domain.TurnResponse{
		SessionID:    id,
		Intent:       domain.IntentStartForm,
		Entities:     map[string]any{},
		ResponseText: replyAskName,
		Action:       &domain.Action{Type: domain.ActionStartForm},
	}, nil
}

// dispatch executes the intent's effect against the session state.
func (s *Service) dispatch(ctx context.Context, req domain.TurnRequest, sess *domain.Session, intent domain.Intent) (*domain.TurnResponse, error) {
	// The classifier is session-blind, so a plain-text slot answer like a
	// name classifies as small_talk. An active form captures those turns;
	// keyword intents (sahayata first) still pass through.
	if formCapturing(sess) &&
		(intent.Name == domain.IntentSmallTalk || intent.Name == domain.IntentFormFieldAnswer) {
		return s.handleFormAnswer(sess, req.Transcript), nil
	}

	switch intent.Name {
	case domain.IntentSahayata:
		return s.handleSahayata(req, sess), nil
	case domain.IntentStartForm:
		return s.handleStartForm(sess), nil
	case domain.IntentQueryEarnings:
		return s.handleQueryEarnings(ctx, req, intent)
	case domain.IntentComparePeriod:
		return &domain.TurnResponse{
			Intent:       domain.IntentComparePeriod,
			Entities:     intent.Entities,
			ResponseText: replyCompare,
			Action:       &domain.Action{Type: domain.ActionCompare},
		}, nil
	case domain.IntentFormFieldAnswer:
		return s.handleFormAnswer(sess, req.Transcript), nil
	default:
		return &domain.TurnResponse{
			Intent:       domain.IntentSmallTalk,
			ResponseText: replySmallTalk,
		}, nil
	}
}

func (s *Service) handleSahayata(req domain.TurnRequest, sess *domain.Session) *domain.TurnResponse {
	s.publishEvent(queue.SubjectSahayata, queue.SahayataEvent{
		SessionID:  sess.ID,
		DriverID:   req.DriverID,
		Transcript: req.Transcript,
		OccurredAt: time.Now(),
	})

	return &domain.TurnResponse{
		Intent:       domain.IntentSahayata,
		ResponseText: replySahayata,
		Action:       &domain.Action{Type: domain.ActionSahayataPrompt},
	}
}

func (s *Service) handleStartForm(sess *domain.Session) *domain.TurnResponse {
	sess.FormState = domain.NewForm(DefaultFormID)
	return &domain.TurnResponse{
		Intent:       domain.IntentStartForm,
		ResponseText: replyAskName,
		Action:       &domain.Action{Type: domain.ActionStartForm},
	}
}

func (s *Service) handleQueryEarnings(ctx context.Context, req domain.TurnRequest, intent domain.Intent) (*domain.TurnResponse, error) {
	driverID := req.DriverID
	if driverID == "" {
		driverID = s.defaultDriverID
	}
	dateRange := domain.DateRangeToday
	if dr, ok := intent.Entities["date_range"].(domain.DateRange); ok {
		dateRange = dr
	}

	breakdown, err := s.earnings.Summarize(ctx, driverID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("earnings lookup: %w", err)
	}
	if breakdown == nil {
		return &domain.TurnResponse{
			Intent:       domain.IntentQueryEarnings,
			Entities:     intent.Entities,
			ResponseText: fmt.Sprintf(replyEarningsNotFoundFmt, driverID),
		}, nil
	}

	label := dateRangeLabels[string(dateRange)]
	text := fmt.Sprintf(replyEarningsFmt,
		label, breakdown.Gross, breakdown.Expenses, breakdown.Penalty, breakdown.Rewards, breakdown.Net)
	if breakdown.Reason != "" {
		text += " Note: " + breakdown.Reason + "."
	}

	return &domain.TurnResponse{
		Intent:       domain.IntentQueryEarnings,
		Entities:     intent.Entities,
		ResponseText: text,
		Card: &domain.Card{
			Title: cardTitleEarnings,
			Bullets: []string{
				fmt.Sprintf("Gross: ₹%.0f", breakdown.Gross),
				fmt.Sprintf("Kharcha: ₹%.0f", breakdown.Expenses),
				fmt.Sprintf("Penalty: ₹%.0f", breakdown.Penalty),
				fmt.Sprintf("Reward: ₹%.0f", breakdown.Rewards),
			},
		},
		Action: &domain.Action{Type: domain.ActionShowCard},
	}, nil
}

func (s *Service) handleFormAnswer(sess *domain.Session, transcript string) *domain.TurnResponse {
	if sess.FormState == nil {
		return &domain.TurnResponse{
			Intent:       domain.IntentFormFieldAnswer,
			ResponseText: replyNoFormActive,
		}
	}

	effect := AdvanceForm(sess.FormState, transcript)
	if effect.Action != nil && effect.Action.Type == domain.ActionFormCompleted {
		telemetry.FormsCompletedTotal.Inc()
		s.publishEvent(queue.SubjectFormCompleted, queue.FormCompletedEvent{
			SessionID:   sess.ID,
			FormID:      sess.FormState.FormID,
			Values:      sess.FormState.Values,
			CompletedAt: time.Now(),
		})
	}

	return &domain.TurnResponse{
		Intent:       domain.IntentFormFieldAnswer,
		Entities:     map[string]any{"text": transcript},
		ResponseText: effect.Prompt,
		Action:       effect.Action,
	}
}

// publishEvent pushes an assist event to the ops pipeline. Publish failures
// never reach the driver.
func (s *Service) publishEvent(subject string, event any) {
	if s.mq == nil {
		return
	}
	if err := queue.PublishJSON(s.mq, subject, event); err != nil {
		s.log.Error("Failed to publish assist event",
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
}

func formCapturing(sess *domain.Session) bool {
	return sess.FormState != nil && !sess.FormState.Completed
}
