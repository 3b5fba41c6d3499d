package dialog

import (
	"context"
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	"github.com/saathi-labs/saarthi/internal/adapter/queue"
	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/mocks"
	"github.com/saathi-labs/saarthi/internal/ports"
)

const testDriverID = "driver-demo-001"

func demoEarnings() *mocks.MockEarningsService {
	return &mocks.MockEarningsService{
		SummarizeFunc: func(ctx context.Context, driverID string, dateRange domain.DateRange) (*domain.EarningsBreakdown, error) {
			if driverID != testDriverID {
				return nil, nil
			}
			return &domain.EarningsBreakdown{
				DriverID: driverID,
				Gross:    1000,
				Expenses: 200,
				Penalty:  50,
				Rewards:  20,
				Net:      770,
			}, nil
		},
	}
}

func newTestService(store *mocks.MockSessionStore, mq *mocks.MockMessageQueue) ports.DialogService {
	return NewService(store, demoEarnings(), mq, testDriverID, zap.NewNop())
}

func turn(t *testing.T, svc ports.DialogService, sessionID, transcript string) *domain.TurnResponse {
	t.Helper()
	resp, err := svc.ProcessTurn(context.Background(), domain.TurnRequest{
		Transcript: transcript,
		SessionID:  sessionID,
	})
	if err != nil {
		t.Fatalf("ProcessTurn(%q) failed: %v", transcript, err)
	}
	return resp
}

func TestProcessTurn_Sahayata(t *testing.T) {
	store := mocks.NewMockSessionStore()
	mq := mocks.NewMockMessageQueue()
	svc := newTestService(store, mq)

	resp := turn(t, svc, "", "madad chahiye, gaadi kharab ho gayi 1234")

	if resp.Intent != domain.IntentSahayata {
		t.Fatalf("intent = %s, want sahayata", resp.Intent)
	}
	if resp.Action == nil || resp.Action.Type != domain.ActionSahayataPrompt {
		t.Errorf("action = %+v, want sahayata_prompt", resp.Action)
	}
	if resp.SessionID == "" {
		t.Error("expected a minted session id")
	}
	if got := len(mq.Published[queue.SubjectSahayata]); got != 1 {
		t.Fatalf("published %d sahayata events, want 1", got)
	}
	var event queue.SahayataEvent
	if err := json.Unmarshal(mq.Published[queue.SubjectSahayata][0], &event); err != nil {
		t.Fatalf("bad event payload: %v", err)
	}
	if event.Transcript != "madad chahiye, gaadi kharab ho gayi 1234" {
		t.Errorf("event transcript = %q", event.Transcript)
	}
}

func TestProcessTurn_UnknownSessionIDGetsFreshSession(t *testing.T) {
	store := mocks.NewMockSessionStore()
	svc := newTestService(store, mocks.NewMockMessageQueue())

	resp := turn(t, svc, "stale-or-forged-id", "namaste")

	if resp.SessionID == "" || resp.SessionID == "stale-or-forged-id" {
		t.Fatalf("session_id = %q, want a freshly minted one", resp.SessionID)
	}
	if _, adopted := store.Sessions["stale-or-forged-id"]; adopted {
		t.Error("caller-supplied unknown id must not be adopted")
	}
	if store.Sessions[resp.SessionID] == nil {
		t.Error("expected the fresh session to be persisted under the minted id")
	}
}

func TestProcessTurn_SahayataWinsDuringActiveForm(t *testing.T) {
	store := mocks.NewMockSessionStore()
	svc := newTestService(store, mocks.NewMockMessageQueue())

	first := turn(t, svc, "", "form bharna hai")
	resp := turn(t, svc, first.SessionID, "emergency! help")

	if resp.Intent != domain.IntentSahayata {
		t.Fatalf("intent = %s, want sahayata even mid-form", resp.Intent)
	}
	sess := store.Sessions[first.SessionID]
	if sess.FormState == nil || sess.FormState.CurrentField != domain.FormStageName {
		t.Errorf("form state disturbed by emergency turn: %+v", sess.FormState)
	}
}

func TestProcessTurn_QueryEarnings(t *testing.T) {
	store := mocks.NewMockSessionStore()
	svc := newTestService(store, mocks.NewMockMessageQueue())

	resp := turn(t, svc, "", "Aaj ka net kamai kitni hai")

	if resp.Intent != domain.IntentQueryEarnings {
		t.Fatalf("intent = %s, want query_earnings", resp.Intent)
	}
	if resp.Entities["date_range"] != domain.DateRangeToday {
		t.Errorf("date_range = %v, want today", resp.Entities["date_range"])
	}
	if resp.Entities["after_expenses"] != true {
		t.Errorf("after_expenses = %v, want true", resp.Entities["after_expenses"])
	}
	if resp.Card == nil {
		t.Fatal("expected a card")
	}
	if len(resp.Card.Bullets) != 4 {
		t.Errorf("card has %d bullets, want 4", len(resp.Card.Bullets))
	}
	if resp.Action == nil || resp.Action.Type != domain.ActionShowCard {
		t.Errorf("action = %+v, want show_card", resp.Action)
	}
	sess := store.Sessions[resp.SessionID]
	if sess.LastIntent != domain.IntentQueryEarnings {
		t.Errorf("last_intent = %s, want query_earnings", sess.LastIntent)
	}
}

func TestProcessTurn_QueryEarningsUnknownDriver(t *testing.T) {
	store := mocks.NewMockSessionStore()
	svc := newTestService(store, mocks.NewMockMessageQueue())

	resp, err := svc.ProcessTurn(context.Background(), domain.TurnRequest{
		Transcript: "kamai batao",
		DriverID:   "ghost-driver",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.Intent != domain.IntentQueryEarnings {
		t.Fatalf("intent = %s, want query_earnings", resp.Intent)
	}
	if resp.Card != nil {
		t.Errorf("expected no card for unknown driver, got %+v", resp.Card)
	}
	if resp.Action != nil {
		t.Errorf("expected no action for unknown driver, got %+v", resp.Action)
	}
	if resp.ResponseText == "" {
		t.Error("expected apologetic text")
	}
}

func TestProcessTurn_ComparePeriod(t *testing.T) {
	svc := newTestService(mocks.NewMockSessionStore(), mocks.NewMockMessageQueue())

	resp := turn(t, svc, "", "is this week better than pichle hafta")

	if resp.Intent != domain.IntentComparePeriod {
		t.Fatalf("intent = %s, want compare_period", resp.Intent)
	}
	if resp.Action == nil || resp.Action.Type != domain.ActionCompare {
		t.Errorf("action = %+v, want compare", resp.Action)
	}
	if resp.Entities["date_range"] != domain.DateRangeLastWeek {
		t.Errorf("date_range = %v, want last_week", resp.Entities["date_range"])
	}
}

func TestProcessTurn_FormFlowEndToEnd(t *testing.T) {
	store := mocks.NewMockSessionStore()
	mq := mocks.NewMockMessageQueue()
	svc := newTestService(store, mq)

	start := turn(t, svc, "", "form bharna hai")
	if start.Intent != domain.IntentStartForm {
		t.Fatalf("intent = %s, want start_form", start.Intent)
	}
	if start.Action == nil || start.Action.Type != domain.ActionStartForm {
		t.Fatalf("action = %+v, want start_form", start.Action)
	}
	sid := start.SessionID
	if store.Sessions[sid].FormState.CurrentField != domain.FormStageName {
		t.Fatalf("current field = %s, want name", store.Sessions[sid].FormState.CurrentField)
	}

	name := turn(t, svc, sid, "Ramesh Kumar")
	if name.Intent != domain.IntentFormFieldAnswer {
		t.Fatalf("name turn intent = %s, want form_field_answer", name.Intent)
	}
	if name.Action == nil || name.Action.Type != domain.ActionFormNext ||
		name.Action.NextField != domain.FormStageVehicleReg {
		t.Fatalf("name turn action = %+v, want form_next/vehicle_registration", name.Action)
	}

	vehicle := turn(t, svc, sid, "MH12AB1234")
	if vehicle.Action == nil || vehicle.Action.NextField != domain.FormStagePhone {
		t.Fatalf("vehicle turn action = %+v, want form_next/phone", vehicle.Action)
	}

	phone := turn(t, svc, sid, "call me at 98765 43210")
	if phone.Action == nil || phone.Action.Type != domain.ActionFormCompleted {
		t.Fatalf("phone turn action = %+v, want form_completed", phone.Action)
	}
	want := map[string]string{
		"name":                 "Ramesh Kumar",
		"vehicle_registration": "MH12AB1234",
		"phone":                "9876543210",
	}
	for k, v := range want {
		if phone.Action.Values[k] != v {
			t.Errorf("values[%s] = %q, want %q", k, phone.Action.Values[k], v)
		}
	}

	sess := store.Sessions[sid]
	if !sess.FormState.Completed || sess.FormState.CurrentField != domain.FormStageCompleted {
		t.Errorf("form not terminal: %+v", sess.FormState)
	}

	if got := len(mq.Published[queue.SubjectFormCompleted]); got != 1 {
		t.Fatalf("published %d form.completed events, want 1", got)
	}
	var event queue.FormCompletedEvent
	json.Unmarshal(mq.Published[queue.SubjectFormCompleted][0], &event)
	if event.Values["phone"] != "9876543210" {
		t.Errorf("event phone = %q, want 9876543210", event.Values["phone"])
	}
}

func TestProcessTurn_CompletedFormRejectsWrites(t *testing.T) {
	store := mocks.NewMockSessionStore()
	svc := newTestService(store, mocks.NewMockMessageQueue())

	start := turn(t, svc, "", "form bharna hai")
	sid := start.SessionID
	turn(t, svc, sid, "Ramesh Kumar")
	turn(t, svc, sid, "MH12AB1234")
	turn(t, svc, sid, "9876543210")

	resp := turn(t, svc, sid, "0000")

	if resp.Action != nil {
		t.Errorf("expected no action on a completed form, got %+v", resp.Action)
	}
	if got := store.Sessions[sid].FormState.Values["phone"]; got != "9876543210" {
		t.Errorf("completed value overwritten: phone = %q", got)
	}
}

func TestProcessTurn_FormAnswerWithoutForm(t *testing.T) {
	svc := newTestService(mocks.NewMockSessionStore(), mocks.NewMockMessageQueue())

	resp := turn(t, svc, "", "MH12AB1234")

	if resp.Intent != domain.IntentFormFieldAnswer {
		t.Fatalf("intent = %s, want form_field_answer", resp.Intent)
	}
	if resp.Action != nil {
		t.Errorf("expected no action, got %+v", resp.Action)
	}
	if resp.ResponseText != replyNoFormActive {
		t.Errorf("text = %q, want no-form guidance", resp.ResponseText)
	}
}

func TestProcessTurn_SmallTalkFallback(t *testing.T) {
	svc := newTestService(mocks.NewMockSessionStore(), mocks.NewMockMessageQueue())

	resp := turn(t, svc, "", "namaste bhai")

	if resp.Intent != domain.IntentSmallTalk {
		t.Fatalf("intent = %s, want small_talk", resp.Intent)
	}
	if resp.Action != nil || resp.Card != nil {
		t.Error("small_talk must carry no directive and no card")
	}
	if len(resp.Entities) != 0 {
		t.Errorf("entities = %v, want empty", resp.Entities)
	}
}

func TestProcessTurn_EmptyTranscript(t *testing.T) {
	svc := newTestService(mocks.NewMockSessionStore(), mocks.NewMockMessageQueue())

	resp := turn(t, svc, "", "")

	if resp.Intent != domain.IntentSmallTalk {
		t.Fatalf("intent = %s, want small_talk for empty transcript", resp.Intent)
	}
}

func TestProcessTurn_DefaultDriverID(t *testing.T) {
	var seenDriver string
	earningsSvc := &mocks.MockEarningsService{
		SummarizeFunc: func(ctx context.Context, driverID string, dateRange domain.DateRange) (*domain.EarningsBreakdown, error) {
			seenDriver = driverID
			return nil, nil
		},
	}
	svc := NewService(mocks.NewMockSessionStore(), earningsSvc, mocks.NewMockMessageQueue(), testDriverID, zap.NewNop())

	if _, err := svc.ProcessTurn(context.Background(), domain.TurnRequest{Transcript: "kamai kitni hai"}); err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}

	if seenDriver != testDriverID {
		t.Errorf("driver id = %q, want default %q", seenDriver, testDriverID)
	}
}

func TestStartForm_ExternallyTriggered(t *testing.T) {
	store := mocks.NewMockSessionStore()
	svc := newTestService(store, mocks.NewMockMessageQueue())

	resp, err := svc.StartForm(context.Background(), "driver_onboarding", "")
	if err != nil {
		t.Fatalf("StartForm failed: %v", err)
	}

	if resp.SessionID == "" {
		t.Fatal("expected a fresh session id")
	}
	if resp.Action == nil || resp.Action.Type != domain.ActionStartForm {
		t.Errorf("action = %+v, want start_form", resp.Action)
	}
	sess := store.Sessions[resp.SessionID]
	if sess.FormState == nil || sess.FormState.FormID != "driver_onboarding" {
		t.Fatalf("form not bound: %+v", sess.FormState)
	}
	if sess.FormState.CurrentField != domain.FormStageName {
		t.Errorf("current field = %s, want name", sess.FormState.CurrentField)
	}

	// Same slot-filling semantics as the classified intent from here on.
	name := turn(t, svc, resp.SessionID, "Sunita Devi")
	if name.Action == nil || name.Action.NextField != domain.FormStageVehicleReg {
		t.Errorf("follow-up turn action = %+v, want form_next/vehicle_registration", name.Action)
	}
}
