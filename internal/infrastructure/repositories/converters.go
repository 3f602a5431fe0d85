package repositories

import (
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"merchant-portal.backend/internal/domain/entities"
	"merchant-portal.backend/internal/infrastructure/models"
)

func nullUUIDToPtr(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	id := n.UUID
	return &id
}

func ptrToNullUUID(p *uuid.UUID) uuid.NullUUID {
	if p == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *p, Valid: true}
}

func recordToModel(e *entities.MerchantRecord) *models.MerchantRecord {
	return &models.MerchantRecord{
		ID:                       e.ID,
		DFSPID:                   nullUUIDToPtr(e.DFSPID),
		RegistrationStatus:       string(e.RegistrationStatus),
		RegistrationStatusReason: e.RegistrationStatusReason.Ptr(),
		MakerID:                  e.MakerID,
		CheckedByID:              nullUUIDToPtr(e.CheckedByID),
		CreatedAt:                e.CreatedAt,
		UpdatedAt:                e.UpdatedAt,
	}
}

func recordToEntity(m *models.MerchantRecord) *entities.MerchantRecord {
	return &entities.MerchantRecord{
		ID:                       m.ID,
		DFSPID:                   ptrToNullUUID(m.DFSPID),
		RegistrationStatus:       entities.RegistrationStatus(m.RegistrationStatus),
		RegistrationStatusReason: null.StringFromPtr(m.RegistrationStatusReason),
		MakerID:                  m.MakerID,
		CheckedByID:              ptrToNullUUID(m.CheckedByID),
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

func businessInfoToModel(e *entities.BusinessInfo) *models.BusinessInfo {
	return &models.BusinessInfo{
		ID:               e.ID,
		MerchantID:       e.MerchantID,
		BusinessName:     e.BusinessName,
		RegisteredName:   e.RegisteredName.Ptr(),
		MerchantCategory: e.MerchantCategory.Ptr(),
		Currency:         e.Currency,
		WebsiteURL:       e.WebsiteURL.Ptr(),
		EmployeeCount:    e.EmployeeCount.Ptr(),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func businessInfoToEntity(m *models.BusinessInfo) *entities.BusinessInfo {
	return &entities.BusinessInfo{
		ID:               m.ID,
		MerchantID:       m.MerchantID,
		BusinessName:     m.BusinessName,
		RegisteredName:   null.StringFromPtr(m.RegisteredName),
		MerchantCategory: null.StringFromPtr(m.MerchantCategory),
		Currency:         m.Currency,
		WebsiteURL:       null.StringFromPtr(m.WebsiteURL),
		EmployeeCount:    null.Int64FromPtr(m.EmployeeCount),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func licenseToModel(e *entities.BusinessLicense) *models.BusinessLicense {
	return &models.BusinessLicense{
		ID:            e.ID,
		MerchantID:    e.MerchantID,
		LicenseNumber: e.LicenseNumber,
		DocumentURL:   e.DocumentURL.Ptr(),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func licenseToEntity(m *models.BusinessLicense) *entities.BusinessLicense {
	return &entities.BusinessLicense{
		ID:            m.ID,
		MerchantID:    m.MerchantID,
		LicenseNumber: m.LicenseNumber,
		DocumentURL:   null.StringFromPtr(m.DocumentURL),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func locationToModel(e *entities.LocationInfo) *models.LocationInfo {
	return &models.LocationInfo{
		ID:           e.ID,
		MerchantID:   e.MerchantID,
		LocationType: e.LocationType,
		Address:      e.Address,
		City:         e.City,
		District:     e.District.Ptr(),
		Country:      e.Country,
		PostalCode:   e.PostalCode.Ptr(),
		Latitude:     e.Latitude.Ptr(),
		Longitude:    e.Longitude.Ptr(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func locationToEntity(m *models.LocationInfo) *entities.LocationInfo {
	return &entities.LocationInfo{
		ID:           m.ID,
		MerchantID:   m.MerchantID,
		LocationType: m.LocationType,
		Address:      m.Address,
		City:         m.City,
		District:     null.StringFromPtr(m.District),
		Country:      m.Country,
		PostalCode:   null.StringFromPtr(m.PostalCode),
		Latitude:     null.StringFromPtr(m.Latitude),
		Longitude:    null.StringFromPtr(m.Longitude),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ownerToModel(e *entities.BusinessOwner) *models.BusinessOwner {
	return &models.BusinessOwner{
		ID:                   e.ID,
		MerchantID:           e.MerchantID,
		Name:                 e.Name,
		IdentificationType:   e.IdentificationType,
		IdentificationNumber: e.IdentificationNumber,
		PhoneNumber:          e.PhoneNumber,
		Email:                e.Email.Ptr(),
		Address:              e.Address.Ptr(),
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func ownerToEntity(m *models.BusinessOwner) *entities.BusinessOwner {
	return &entities.BusinessOwner{
		ID:                   m.ID,
		MerchantID:           m.MerchantID,
		Name:                 m.Name,
		IdentificationType:   m.IdentificationType,
		IdentificationNumber: m.IdentificationNumber,
		PhoneNumber:          m.PhoneNumber,
		Email:                null.StringFromPtr(m.Email),
		Address:              null.StringFromPtr(m.Address),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func contactToModel(e *entities.ContactPerson) *models.ContactPerson {
	return &models.ContactPerson{
		ID:          e.ID,
		MerchantID:  e.MerchantID,
		Name:        e.Name,
		PhoneNumber: e.PhoneNumber,
		Email:       e.Email.Ptr(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func contactToEntity(m *models.ContactPerson) *entities.ContactPerson {
	return &entities.ContactPerson{
		ID:          m.ID,
		MerchantID:  m.MerchantID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		Email:       null.StringFromPtr(m.Email),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func userToModel(e *entities.User) *models.User {
	return &models.User{
		ID:           e.ID,
		Email:        e.Email,
		Name:         e.Name,
		Role:         string(e.Role),
		DFSPID:       nullUUIDToPtr(e.DFSPID),
		PasswordHash: e.PasswordHash,
		IsActive:     e.IsActive,
		LastLoginAt:  e.LastLoginAt.Ptr(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		Role:         entities.Role(m.Role),
		DFSPID:       ptrToNullUUID(m.DFSPID),
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		LastLoginAt:  null.TimeFromPtr(m.LastLoginAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func dfspToModel(e *entities.DFSP) *models.DFSP {
	return &models.DFSP{
		ID:          e.ID,
		Name:        e.Name,
		FspID:       e.FspID,
		LogoURL:     e.LogoURL.Ptr(),
		IsActive:    e.IsActive,
		ActivatedAt: e.ActivatedAt.Ptr(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func dfspToEntity(m *models.DFSP) *entities.DFSP {
	return &entities.DFSP{
		ID:          m.ID,
		Name:        m.Name,
		FspID:       m.FspID,
		LogoURL:     null.StringFromPtr(m.LogoURL),
		IsActive:    m.IsActive,
		ActivatedAt: null.TimeFromPtr(m.ActivatedAt),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func auditEventToModel(e *entities.AuditEvent) *models.AuditLog {
	return &models.AuditLog{
		ID:          e.ID,
		Action:      e.Action,
		Outcome:     string(e.Outcome),
		ActorID:     e.ActorID,
		EntityName:  e.EntityName,
		EntityID:    e.EntityID,
		Description: e.Description.Ptr(),
		Before:      e.Before.Ptr(),
		After:       e.After.Ptr(),
		CreatedAt:   e.CreatedAt,
	}
}

func auditEventToEntity(m *models.AuditLog) *entities.AuditEvent {
	return &entities.AuditEvent{
		ID:          m.ID,
		Action:      m.Action,
		Outcome:     entities.AuditOutcome(m.Outcome),
		ActorID:     m.ActorID,
		EntityName:  m.EntityName,
		EntityID:    m.EntityID,
		Description: null.StringFromPtr(m.Description),
		Before:      null.StringFromPtr(m.Before),
		After:       null.StringFromPtr(m.After),
		CreatedAt:   m.CreatedAt,
	}
}
