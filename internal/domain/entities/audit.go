package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AuditOutcome marks whether the audited operation succeeded
type AuditOutcome string

const (
	AuditOutcomeSuccess AuditOutcome = "success"
	AuditOutcomeFailure AuditOutcome = "failure"
)

// AuditEvent captures one state-changing operation for the audit trail.
// Before and After hold JSON snapshots of the mutated entity.
type AuditEvent struct {
	ID          uuid.UUID    `json:"id"`
	Action      string       `json:"action"`
	Outcome     AuditOutcome `json:"outcome"`
	ActorID     uuid.UUID    `json:"actorId"`
	EntityName  string       `json:"entityName"`
	EntityID    string       `json:"entityId"`
	Description null.String  `json:"description,omitempty"`
	Before      null.String  `json:"before,omitempty"`
	After       null.String  `json:"after,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}
