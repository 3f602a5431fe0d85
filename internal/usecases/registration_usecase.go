package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/domain/repositories"
	"merchant-portal.backend/internal/domain/workflow"
	"merchant-portal.backend/internal/metrics"
	"merchant-portal.backend/pkg/utils"
)

const merchantEntityName = "merchant_record"

// RegistrationUsecase drives the maker side of the registration workflow:
// the draft wizard and submission for review. Every save returns the full
// aggregate so the wizard can resume from any step.
type RegistrationUsecase struct {
	merchantRepo repositories.MerchantRecordRepository
	uow          repositories.UnitOfWork
	audit        repositories.AuditEmitter
}

// NewRegistrationUsecase creates a new registration usecase
func NewRegistrationUsecase(
	merchantRepo repositories.MerchantRecordRepository,
	uow repositories.UnitOfWork,
	audit repositories.AuditEmitter,
) *RegistrationUsecase {
	return &RegistrationUsecase{
		merchantRepo: merchantRepo,
		uow:          uow,
		audit:        audit,
	}
}

// CreateDraft opens a new registration owned by the acting maker
func (u *RegistrationUsecase) CreateDraft(ctx context.Context, actor *entities.Actor, dfspID uuid.NullUUID) (*entities.MerchantAggregate, error) {
	record := &entities.MerchantRecord{
		MakerID: actor.ID,
		DFSPID:  dfspID,
	}
	if err := u.merchantRepo.CreateRecord(ctx, record); err != nil {
		return nil, err
	}

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:     "create_draft",
		Outcome:    entities.AuditOutcomeSuccess,
		ActorID:    actor.ID,
		EntityName: merchantEntityName,
		EntityID:   record.ID.String(),
		After:      snapshotJSON(record),
	})

	return u.merchantRepo.GetAggregate(ctx, record.ID)
}

// loadEditable fetches the record and verifies the actor may edit it: only
// the maker, and only while the record is in draft or reverted status.
func (u *RegistrationUsecase) loadEditable(ctx context.Context, actor *entities.Actor, merchantID uuid.UUID) (*entities.MerchantRecord, error) {
	record, err := u.merchantRepo.GetRecord(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if record.MakerID != actor.ID {
		return nil, domainerrors.ErrForbidden
	}
	if !record.RegistrationStatus.IsEditable() {
		return nil, domainerrors.NewTransitionError(string(record.RegistrationStatus), "edit")
	}
	return record, nil
}

// SaveBusinessInfo saves the step-1 wizard data, including the optional license
func (u *RegistrationUsecase) SaveBusinessInfo(ctx context.Context, actor *entities.Actor, merchantID uuid.UUID, input *entities.BusinessInfoInput) (*entities.MerchantAggregate, error) {
	if _, err := u.loadEditable(ctx, actor, merchantID); err != nil {
		return nil, err
	}

	info := &entities.BusinessInfo{
		MerchantID:   merchantID,
		BusinessName: input.BusinessName,
		Currency:     input.Currency,
	}
	if input.RegisteredName != "" {
		info.RegisteredName.SetValid(input.RegisteredName)
	}
	if input.MerchantCategory != "" {
		info.MerchantCategory.SetValid(input.MerchantCategory)
	}
	if input.WebsiteURL != "" {
		info.WebsiteURL.SetValid(input.WebsiteURL)
	}
	if input.EmployeeCount > 0 {
		info.EmployeeCount.SetValid(input.EmployeeCount)
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.merchantRepo.UpsertBusinessInfo(txCtx, info); err != nil {
			return err
		}
		if input.LicenseNumber != "" {
			license := &entities.BusinessLicense{
				MerchantID:    merchantID,
				LicenseNumber: input.LicenseNumber,
			}
			if input.LicenseDocument != "" {
				license.DocumentURL.SetValid(input.LicenseDocument)
			}
			return u.merchantRepo.UpsertLicense(txCtx, license)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:     "save_business_info",
		Outcome:    entities.AuditOutcomeSuccess,
		ActorID:    actor.ID,
		EntityName: merchantEntityName,
		EntityID:   merchantID.String(),
		After:      snapshotJSON(info),
	})

	return u.merchantRepo.GetAggregate(ctx, merchantID)
}

// SaveLocation saves the step-2 wizard data
func (u *RegistrationUsecase) SaveLocation(ctx context.Context, actor *entities.Actor, merchantID uuid.UUID, input *entities.LocationInfoInput) (*entities.MerchantAggregate, error) {
	if _, err := u.loadEditable(ctx, actor, merchantID); err != nil {
		return nil, err
	}

	location := &entities.LocationInfo{
		MerchantID:   merchantID,
		LocationType: input.LocationType,
		Address:      input.Address,
		City:         input.City,
		Country:      input.Country,
	}
	if input.District != "" {
		location.District.SetValid(input.District)
	}
	if input.PostalCode != "" {
		location.PostalCode.SetValid(input.PostalCode)
	}
	if input.Latitude != "" {
		location.Latitude.SetValid(input.Latitude)
	}
	if input.Longitude != "" {
		location.Longitude.SetValid(input.Longitude)
	}

	if err := u.merchantRepo.UpsertLocation(ctx, location); err != nil {
		return nil, err
	}

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:     "save_location",
		Outcome:    entities.AuditOutcomeSuccess,
		ActorID:    actor.ID,
		EntityName: merchantEntityName,
		EntityID:   merchantID.String(),
		After:      snapshotJSON(location),
	})

	return u.merchantRepo.GetAggregate(ctx, merchantID)
}

// SaveOwner saves the step-3 wizard data
func (u *RegistrationUsecase) SaveOwner(ctx context.Context, actor *entities.Actor, merchantID uuid.UUID, input *entities.BusinessOwnerInput) (*entities.MerchantAggregate, error) {
	if _, err := u.loadEditable(ctx, actor, merchantID); err != nil {
		return nil, err
	}

	owner := &entities.BusinessOwner{
		MerchantID:           merchantID,
		Name:                 input.Name,
		IdentificationType:   input.IdentificationType,
		IdentificationNumber: input.IdentificationNumber,
		PhoneNumber:          input.PhoneNumber,
	}
	if input.Email != "" {
		owner.Email.SetValid(input.Email)
	}
	if input.Address != "" {
		owner.Address.SetValid(input.Address)
	}

	if err := u.merchantRepo.UpsertOwner(ctx, owner); err != nil {
		return nil, err
	}

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:     "save_owner",
		Outcome:    entities.AuditOutcomeSuccess,
		ActorID:    actor.ID,
		EntityName: merchantEntityName,
		EntityID:   merchantID.String(),
		After:      snapshotJSON(owner),
	})

	return u.merchantRepo.GetAggregate(ctx, merchantID)
}

// SaveContact saves the step-4 wizard data
func (u *RegistrationUsecase) SaveContact(ctx context.Context, actor *entities.Actor, merchantID uuid.UUID, input *entities.ContactPersonInput) (*entities.MerchantAggregate, error) {
	if _, err := u.loadEditable(ctx, actor, merchantID); err != nil {
		return nil, err
	}

	contact := &entities.ContactPerson{
		MerchantID:  merchantID,
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
	}
	if input.Email != "" {
		contact.Email.SetValid(input.Email)
	}

	if err := u.merchantRepo.UpsertContact(ctx, contact); err != nil {
		return nil, err
	}

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:     "save_contact",
		Outcome:    entities.AuditOutcomeSuccess,
		ActorID:    actor.ID,
		EntityName: merchantEntityName,
		EntityID:   merchantID.String(),
		After:      snapshotJSON(contact),
	})

	return u.merchantRepo.GetAggregate(ctx, merchantID)
}

// Submit moves a complete draft into review. The transition is computed by
// the workflow state machine and persisted with an optimistic status guard,
// clearing any reason left over from a previous revert.
func (u *RegistrationUsecase) Submit(ctx context.Context, actor *entities.Actor, merchantID uuid.UUID) (*entities.MerchantRecord, error) {
	agg, err := u.merchantRepo.GetAggregate(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	before := *agg.Record

	next, err := workflow.Transition(agg, workflow.ActionSubmit, actor, "")
	if err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(workflow.ActionSubmit), "rejected").Inc()
		emitAudit(ctx, u.audit, &entities.AuditEvent{
			Action:      string(workflow.ActionSubmit),
			Outcome:     entities.AuditOutcomeFailure,
			ActorID:     actor.ID,
			EntityName:  merchantEntityName,
			EntityID:    merchantID.String(),
			Description: null.StringFrom(err.Error()),
		})
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		return u.merchantRepo.UpdateStatusGuarded(txCtx, merchantID,
			before.RegistrationStatus, next, null.String{}, uuid.NullUUID{})
	})
	if err != nil {
		metrics.TransitionsTotal.WithLabelValues(string(workflow.ActionSubmit), "failed").Inc()
		return nil, err
	}

	metrics.TransitionsTotal.WithLabelValues(string(workflow.ActionSubmit), "applied").Inc()

	record, err := u.merchantRepo.GetRecord(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	emitAudit(ctx, u.audit, &entities.AuditEvent{
		Action:     string(workflow.ActionSubmit),
		Outcome:    entities.AuditOutcomeSuccess,
		ActorID:    actor.ID,
		EntityName: merchantEntityName,
		EntityID:   merchantID.String(),
		Before:     snapshotJSON(&before),
		After:      snapshotJSON(record),
	})

	return record, nil
}

// GetMerchant returns the full aggregate for one registration
func (u *RegistrationUsecase) GetMerchant(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantAggregate, error) {
	return u.merchantRepo.GetAggregate(ctx, merchantID)
}

// ListMerchants returns records optionally filtered by status
func (u *RegistrationUsecase) ListMerchants(ctx context.Context, status *entities.RegistrationStatus, p utils.PaginationParams) ([]*entities.MerchantRecord, int64, error) {
	return u.merchantRepo.List(ctx, status, p)
}
