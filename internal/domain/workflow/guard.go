package workflow

import (
	"merchant-portal.backend/internal/domain/entities"
)

// CanAct is the maker-checker predicate, evaluated per record. Checker actions
// require the review capability and an actor distinct from the record's maker;
// submit requires edit capability and the maker themselves. This is the last
// line of defense: batch callers must evaluate it for every record rather than
// once per batch.
func CanAct(actor *entities.Actor, record *entities.MerchantRecord, action Action) bool {
	if actor == nil || record == nil {
		return false
	}
	if action.IsCheckerAction() {
		if !actor.Can(entities.PermissionMerchantReview) {
			return false
		}
		return actor.ID != record.MakerID
	}
	if action == ActionSubmit {
		return actor.Can(entities.PermissionMerchantEdit) && actor.ID == record.MakerID
	}
	return false
}

// SkipReason explains why CanAct rejected an actor for an action. It mirrors
// CanAct so batch results can report a precise per-record exclusion reason.
func SkipReason(actor *entities.Actor, record *entities.MerchantRecord, action Action) string {
	if action.IsCheckerAction() {
		if !actor.Can(entities.PermissionMerchantReview) {
			return "actor lacks review permission"
		}
		if actor.ID == record.MakerID {
			return "record was authored by the acting user"
		}
	}
	return ""
}
