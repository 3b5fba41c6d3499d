package dialog

import (
	"fmt"

	"github.com/saathi-labs/saarthi/internal/domain"
	"github.com/saathi-labs/saarthi/internal/nlu"
)

// FormEffect is the outcome of feeding one answer to a form.
type FormEffect struct {
	Prompt   string
	Action   *domain.Action
	Advanced bool
}

// AdvanceForm applies one slot answer to the form and returns the next
// prompt. Stages only move forward through name → vehicle_registration →
// phone → completed; a completed form rejects the write untouched.
func AdvanceForm(form *domain.Form, input string) FormEffect {
	if form.Completed {
		return FormEffect{Prompt: replyFormAlreadyCompleted}
	}

	switch form.CurrentField {
	case domain.FormStageName:
		form.Values["name"] = input
		form.CurrentField = domain.FormStageVehicleReg
		return FormEffect{
			Prompt:   replyAskVehicleReg,
			Action:   &domain.Action{Type: domain.ActionFormNext, NextField: domain.FormStageVehicleReg},
			Advanced: true,
		}

	case domain.FormStageVehicleReg:
		form.Values["vehicle_registration"] = input
		form.CurrentField = domain.FormStagePhone
		return FormEffect{
			Prompt:   replyAskPhone,
			Action:   &domain.Action{Type: domain.ActionFormNext, NextField: domain.FormStagePhone},
			Advanced: true,
		}

	case domain.FormStagePhone:
		phone := nlu.ExtractDigits(input)
		if phone == "" {
			phone = input
		}
		form.Values["phone"] = phone
		form.CurrentField = domain.FormStageCompleted
		form.Completed = true
		return FormEffect{
			Prompt: fmt.Sprintf(replyFormCompletedFmt,
				form.Values["name"], form.Values["vehicle_registration"], form.Values["phone"]),
			Action:   &domain.Action{Type: domain.ActionFormCompleted, Values: form.Values},
			Advanced: true,
		}

	default:
		// Not reachable through normal slot filling.
		return FormEffect{Prompt: replyFieldNotUnderstood}
	}
}
