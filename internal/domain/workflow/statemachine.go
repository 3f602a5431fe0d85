package workflow

import (
	"strings"

	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
)

// Action is a workflow action applied to a merchant record
type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionRevert  Action = "revert"
)

// ParseAction validates an action literal from the transport layer
func ParseAction(raw string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(raw))) {
	case ActionSubmit:
		return ActionSubmit, nil
	case ActionApprove:
		return ActionApprove, nil
	case ActionReject:
		return ActionReject, nil
	case ActionRevert:
		return ActionRevert, nil
	default:
		return "", domainerrors.BadRequest("unknown action: " + raw)
	}
}

// IsCheckerAction reports whether the action requires a checker distinct from the maker
func (a Action) IsCheckerAction() bool {
	return a == ActionApprove || a == ActionReject || a == ActionRevert
}

// RequiresReason reports whether the action must carry a non-empty reason
func (a Action) RequiresReason() bool {
	return a == ActionReject || a == ActionRevert
}

// Transition computes the next registration status for an action. It is a pure
// function over the aggregate: no side effects, so the full transition table is
// unit-testable in isolation. All status writes in the system go through it.
//
//	draft    --submit-->  review   (all four steps complete, by the maker)
//	reverted --submit-->  review   (same guard; reason cleared by the caller)
//	review   --approve--> approved (checker != maker)
//	review   --reject-->  rejected (checker != maker, reason required)
//	review   --revert-->  reverted (checker != maker, reason required)
//
// Any other (status, action) pair fails with a TransitionError.
func Transition(agg *entities.MerchantAggregate, action Action, actor *entities.Actor, reason string) (entities.RegistrationStatus, error) {
	record := agg.Record
	current := record.RegistrationStatus

	switch action {
	case ActionSubmit:
		if !current.IsEditable() {
			return "", domainerrors.NewTransitionError(string(current), string(action))
		}
		if actor.ID != record.MakerID {
			return "", domainerrors.ErrForbidden
		}
		if missing := MissingSteps(agg); len(missing) > 0 {
			return "", domainerrors.NewValidationError(missing...)
		}
		return entities.RegistrationStatusReview, nil

	case ActionApprove, ActionReject, ActionRevert:
		if current != entities.RegistrationStatusReview {
			return "", domainerrors.NewTransitionError(string(current), string(action))
		}
		if actor.ID == record.MakerID {
			return "", domainerrors.ErrForbidden
		}
		if action.RequiresReason() && strings.TrimSpace(reason) == "" {
			return "", domainerrors.BadRequest("a reason is required to " + string(action))
		}
		switch action {
		case ActionApprove:
			return entities.RegistrationStatusApproved, nil
		case ActionReject:
			return entities.RegistrationStatusRejected, nil
		default:
			return entities.RegistrationStatusReverted, nil
		}

	default:
		return "", domainerrors.NewTransitionError(string(current), string(action))
	}
}
