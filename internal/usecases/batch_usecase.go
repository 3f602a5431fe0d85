package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/domain/repositories"
	"merchant-portal.backend/internal/domain/workflow"
	"merchant-portal.backend/internal/metrics"
	"merchant-portal.backend/pkg/logger"
)

// BatchItemOutcome classifies the result of one record within a batch action
type BatchItemOutcome string

const (
	BatchItemSucceeded BatchItemOutcome = "succeeded"
	BatchItemSkipped   BatchItemOutcome = "skipped"
	BatchItemFailed    BatchItemOutcome = "failed"
)

// BatchItemResult is the per-record report of a batch action. Reason explains
// a skip, Error carries a failure message; Status is the record's status after
// the item was processed (the new one on success, the observed one otherwise).
type BatchItemResult struct {
	ID      uuid.UUID                   `json:"id"`
	Outcome BatchItemOutcome            `json:"outcome"`
	Reason  string                      `json:"reason,omitempty"`
	Error   string                      `json:"error,omitempty"`
	Status  entities.RegistrationStatus `json:"status,omitempty"`
}

// BatchUsecase applies one checker action to many records. Records are
// processed independently: a skip or failure never rolls back the records
// already transitioned, and the guard is re-evaluated per record against a
// fresh read so a checker can never slip their own submission through.
type BatchUsecase struct {
	merchantRepo repositories.MerchantRecordRepository
	uow          repositories.UnitOfWork
	audit        repositories.AuditEmitter
}

// NewBatchUsecase creates a new batch usecase
func NewBatchUsecase(
	merchantRepo repositories.MerchantRecordRepository,
	uow repositories.UnitOfWork,
	audit repositories.AuditEmitter,
) *BatchUsecase {
	return &BatchUsecase{
		merchantRepo: merchantRepo,
		uow:          uow,
		audit:        audit,
	}
}

// Execute runs one checker action over the given record ids, in order.
// Request-level validation (unknown action, missing reason) fails the whole
// call before any record is touched; everything after that is per-record.
func (u *BatchUsecase) Execute(ctx context.Context, actor *entities.Actor, action workflow.Action, ids []uuid.UUID, reason string) ([]BatchItemResult, error) {
	if !action.IsCheckerAction() {
		return nil, domainerrors.BadRequest("batch actions support approve, reject and revert only")
	}
	if action.RequiresReason() && strings.TrimSpace(reason) == "" {
		return nil, domainerrors.BadRequest("a reason is required to " + string(action))
	}
	if len(ids) == 0 {
		return nil, domainerrors.BadRequest("no record ids given")
	}

	results := make([]BatchItemResult, 0, len(ids))
	for _, id := range ids {
		result := u.executeOne(ctx, actor, action, id, reason)
		metrics.BatchItemsTotal.WithLabelValues(string(action), string(result.Outcome)).Inc()
		results = append(results, result)
	}
	return results, nil
}

func (u *BatchUsecase) executeOne(ctx context.Context, actor *entities.Actor, action workflow.Action, id uuid.UUID, reason string) BatchItemResult {
	record, err := u.merchantRepo.GetRecord(ctx, id)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return u.skipped(ctx, actor, action, id, "record not found", "")
	}
	if err != nil {
		return u.failed(ctx, actor, action, id, err, "")
	}

	if !workflow.CanAct(actor, record, action) {
		return u.skipped(ctx, actor, action, id,
			workflow.SkipReason(actor, record, action), record.RegistrationStatus)
	}

	agg := &entities.MerchantAggregate{Record: record}
	next, err := workflow.Transition(agg, action, actor, reason)
	if errors.Is(err, domainerrors.ErrInvalidTransition) || errors.Is(err, domainerrors.ErrForbidden) {
		// a record another checker already decided is an exclusion, not an error
		return u.skipped(ctx, actor, action, id, err.Error(), record.RegistrationStatus)
	}
	if err != nil {
		return u.failed(ctx, actor, action, id, err, record.RegistrationStatus)
	}

	statusReason := null.String{}
	if action.RequiresReason() {
		statusReason = null.StringFrom(reason)
	}
	checkedBy := uuid.NullUUID{UUID: actor.ID, Valid: true}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.merchantRepo.UpdateStatusGuarded(txCtx, id,
			record.RegistrationStatus, next, statusReason, checkedBy)
	})
	if errors.Is(err, domainerrors.ErrConcurrencyConflict) {
		return u.skipped(ctx, actor, action, id, "status changed since the batch was read", record.RegistrationStatus)
	}
	if err != nil {
		return u.failed(ctx, actor, action, id, err, record.RegistrationStatus)
	}

	after := *record
	after.RegistrationStatus = next
	after.RegistrationStatusReason = statusReason
	after.CheckedByID = checkedBy

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:     string(action),
		Outcome:    entities.AuditOutcomeSuccess,
		ActorID:    actor.ID,
		EntityName: merchantEntityName,
		EntityID:   id.String(),
		Before:     snapshotJSON(record),
		After:      snapshotJSON(&after),
	})

	return BatchItemResult{ID: id, Outcome: BatchItemSucceeded, Status: next}
}

func (u *BatchUsecase) skipped(ctx context.Context, actor *entities.Actor, action workflow.Action, id uuid.UUID, reason string, status entities.RegistrationStatus) BatchItemResult {
	logger.Info(ctx, "batch item skipped",
		zap.String("action", string(action)),
		zap.String("record_id", id.String()),
		zap.String("reason", reason),
	)
	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:      string(action),
		Outcome:     entities.AuditOutcomeFailure,
		ActorID:     actor.ID,
		EntityName:  merchantEntityName,
		EntityID:    id.String(),
		Description: null.StringFrom("skipped: " + reason),
	})
	return BatchItemResult{ID: id, Outcome: BatchItemSkipped, Reason: reason, Status: status}
}

func (u *BatchUsecase) failed(ctx context.Context, actor *entities.Actor, action workflow.Action, id uuid.UUID, err error, status entities.RegistrationStatus) BatchItemResult {
	logger.Warn(ctx, "batch item failed",
		zap.String("action", string(action)),
		zap.String("record_id", id.String()),
		zap.Error(err),
	)
	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:      string(action),
		Outcome:     entities.AuditOutcomeFailure,
		ActorID:     actor.ID,
		EntityName:  merchantEntityName,
		EntityID:    id.String(),
		Description: null.StringFrom("failed: " + err.Error()),
	})
	return BatchItemResult{ID: id, Outcome: BatchItemFailed, Error: err.Error(), Status: status}
}
