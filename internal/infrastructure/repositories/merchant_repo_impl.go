package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"merchant-portal.backend/internal/domain/entities"
	domainerrors "merchant-portal.backend/internal/domain/errors"
	"merchant-portal.backend/internal/infrastructure/models"
	"merchant-portal.backend/pkg/utils"
)

// MerchantRecordRepositoryImpl implements merchant record persistence
type MerchantRecordRepositoryImpl struct {
	db *gorm.DB
}

// NewMerchantRecordRepository creates a new merchant record repository
func NewMerchantRecordRepository(db *gorm.DB) *MerchantRecordRepositoryImpl {
	return &MerchantRecordRepositoryImpl{db: db}
}

// CreateRecord inserts a new record in draft status and mints its id
func (r *MerchantRecordRepositoryImpl) CreateRecord(ctx context.Context, record *entities.MerchantRecord) error {
	if record.ID == uuid.Nil {
		record.ID = utils.GenerateUUIDv7()
	}
	record.RegistrationStatus = entities.RegistrationStatusDraft
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt

	model := recordToModel(record)
	if err := GetDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	return nil
}

// GetRecord gets a record by id
func (r *MerchantRecordRepositoryImpl) GetRecord(ctx context.Context, id uuid.UUID) (*entities.MerchantRecord, error) {
	var model models.MerchantRecord
	err := GetDB(ctx, r.db).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return recordToEntity(&model), nil
}

// GetAggregate loads the record together with all registration sub-entities
func (r *MerchantRecordRepositoryImpl) GetAggregate(ctx context.Context, id uuid.UUID) (*entities.MerchantAggregate, error) {
	record, err := r.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	db := GetDB(ctx, r.db)
	agg := &entities.MerchantAggregate{
		Record:    record,
		Locations: []*entities.LocationInfo{},
		Owners:    []*entities.BusinessOwner{},
		Contacts:  []*entities.ContactPerson{},
	}

	var info models.BusinessInfo
	if err := db.Where("merchant_id = ?", id).First(&info).Error; err == nil {
		agg.BusinessInfo = businessInfoToEntity(&info)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var license models.BusinessLicense
	if err := db.Where("merchant_id = ?", id).First(&license).Error; err == nil {
		agg.License = licenseToEntity(&license)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var locations []models.LocationInfo
	if err := db.Where("merchant_id = ?", id).Order("created_at asc").Find(&locations).Error; err != nil {
		return nil, err
	}
	for i := range locations {
		agg.Locations = append(agg.Locations, locationToEntity(&locations[i]))
	}

	var owners []models.BusinessOwner
	if err := db.Where("merchant_id = ?", id).Order("created_at asc").Find(&owners).Error; err != nil {
		return nil, err
	}
	for i := range owners {
		agg.Owners = append(agg.Owners, ownerToEntity(&owners[i]))
	}

	var contacts []models.ContactPerson
	if err := db.Where("merchant_id = ?", id).Order("created_at asc").Find(&contacts).Error; err != nil {
		return nil, err
	}
	for i := range contacts {
		agg.Contacts = append(agg.Contacts, contactToEntity(&contacts[i]))
	}

	return agg, nil
}

// List returns records filtered by status, newest first
func (r *MerchantRecordRepositoryImpl) List(ctx context.Context, status *entities.RegistrationStatus, p utils.PaginationParams) ([]*entities.MerchantRecord, int64, error) {
	db := GetDB(ctx, r.db).Model(&models.MerchantRecord{})
	if status != nil {
		db = db.Where("registration_status = ?", string(*status))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at desc")
	if p.Limit > 0 {
		query = query.Offset(p.CalculateOffset()).Limit(p.Limit)
	}

	var rows []models.MerchantRecord
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	records := make([]*entities.MerchantRecord, 0, len(rows))
	for i := range rows {
		records = append(records, recordToEntity(&rows[i]))
	}
	return records, total, nil
}

// UpsertBusinessInfo creates or patches the single business info row
func (r *MerchantRecordRepositoryImpl) UpsertBusinessInfo(ctx context.Context, info *entities.BusinessInfo) error {
	db := GetDB(ctx, r.db)

	var existing models.BusinessInfo
	err := db.Where("merchant_id = ?", info.MerchantID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		info.ID = utils.GenerateUUIDv7()
		info.CreatedAt = time.Now()
		info.UpdatedAt = info.CreatedAt
		return db.Create(businessInfoToModel(info)).Error
	}
	if err != nil {
		return err
	}

	info.ID = existing.ID
	info.CreatedAt = existing.CreatedAt
	info.UpdatedAt = time.Now()
	return db.Model(&models.BusinessInfo{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
		"business_name":     info.BusinessName,
		"registered_name":   info.RegisteredName.Ptr(),
		"merchant_category": info.MerchantCategory.Ptr(),
		"currency":          info.Currency,
		"website_url":       info.WebsiteURL.Ptr(),
		"employee_count":    info.EmployeeCount.Ptr(),
		"updated_at":        info.UpdatedAt,
	}).Error
}

// UpsertLicense creates or patches the single license row
func (r *MerchantRecordRepositoryImpl) UpsertLicense(ctx context.Context, license *entities.BusinessLicense) error {
	db := GetDB(ctx, r.db)

	var existing models.BusinessLicense
	err := db.Where("merchant_id = ?", license.MerchantID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		license.ID = utils.GenerateUUIDv7()
		license.CreatedAt = time.Now()
		license.UpdatedAt = license.CreatedAt
		return db.Create(licenseToModel(license)).Error
	}
	if err != nil {
		return err
	}

	license.ID = existing.ID
	license.UpdatedAt = time.Now()
	return db.Model(&models.BusinessLicense{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
		"license_number": license.LicenseNumber,
		"document_url":   license.DocumentURL.Ptr(),
		"updated_at":     license.UpdatedAt,
	}).Error
}

// UpsertLocation creates or patches the primary (first) location
func (r *MerchantRecordRepositoryImpl) UpsertLocation(ctx context.Context, location *entities.LocationInfo) error {
	db := GetDB(ctx, r.db)

	var existing models.LocationInfo
	err := db.Where("merchant_id = ?", location.MerchantID).Order("created_at asc").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		location.ID = utils.GenerateUUIDv7()
		location.CreatedAt = time.Now()
		location.UpdatedAt = location.CreatedAt
		return db.Create(locationToModel(location)).Error
	}
	if err != nil {
		return err
	}

	location.ID = existing.ID
	location.UpdatedAt = time.Now()
	return db.Model(&models.LocationInfo{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
		"location_type": location.LocationType,
		"address":       location.Address,
		"city":          location.City,
		"district":      location.District.Ptr(),
		"country":       location.Country,
		"postal_code":   location.PostalCode.Ptr(),
		"latitude":      location.Latitude.Ptr(),
		"longitude":     location.Longitude.Ptr(),
		"updated_at":    location.UpdatedAt,
	}).Error
}

// UpsertOwner creates or patches the primary (first) business owner
func (r *MerchantRecordRepositoryImpl) UpsertOwner(ctx context.Context, owner *entities.BusinessOwner) error {
	db := GetDB(ctx, r.db)

	var existing models.BusinessOwner
	err := db.Where("merchant_id = ?", owner.MerchantID).Order("created_at asc").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		owner.ID = utils.GenerateUUIDv7()
		owner.CreatedAt = time.Now()
		owner.UpdatedAt = owner.CreatedAt
		return db.Create(ownerToModel(owner)).Error
	}
	if err != nil {
		return err
	}

	owner.ID = existing.ID
	owner.UpdatedAt = time.Now()
	return db.Model(&models.BusinessOwner{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
		"name":                  owner.Name,
		"identification_type":   owner.IdentificationType,
		"identification_number": owner.IdentificationNumber,
		"phone_number":          owner.PhoneNumber,
		"email":                 owner.Email.Ptr(),
		"address":               owner.Address.Ptr(),
		"updated_at":            owner.UpdatedAt,
	}).Error
}

// UpsertContact creates or patches the primary (first) contact person
func (r *MerchantRecordRepositoryImpl) UpsertContact(ctx context.Context, contact *entities.ContactPerson) error {
	db := GetDB(ctx, r.db)

	var existing models.ContactPerson
	err := db.Where("merchant_id = ?", contact.MerchantID).Order("created_at asc").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		contact.ID = utils.GenerateUUIDv7()
		contact.CreatedAt = time.Now()
		contact.UpdatedAt = contact.CreatedAt
		return db.Create(contactToModel(contact)).Error
	}
	if err != nil {
		return err
	}

	contact.ID = existing.ID
	contact.UpdatedAt = time.Now()
	return db.Model(&models.ContactPerson{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
		"name":         contact.Name,
		"phone_number": contact.PhoneNumber,
		"email":        contact.Email.Ptr(),
		"updated_at":   contact.UpdatedAt,
	}).Error
}

// UpdateStatusGuarded applies a transition with an optimistic guard on the
// previously observed status. Status fields are never written anywhere else.
func (r *MerchantRecordRepositoryImpl) UpdateStatusGuarded(
	ctx context.Context,
	id uuid.UUID,
	expected, next entities.RegistrationStatus,
	reason null.String,
	checkedBy uuid.NullUUID,
) error {
	db := GetDB(ctx, r.db)

	var checkedByPtr *uuid.UUID
	if checkedBy.Valid {
		checkedByPtr = &checkedBy.UUID
	}

	result := db.Model(&models.MerchantRecord{}).
		Where("id = ? AND registration_status = ?", id, string(expected)).
		Updates(map[string]interface{}{
			"registration_status":        string(next),
			"registration_status_reason": reason.Ptr(),
			"checked_by_id":              checkedByPtr,
			"updated_at":                 time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.MerchantRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrConcurrencyConflict
	}
	return nil
}

// CountInReviewBefore counts records waiting in review since before the cutoff
func (r *MerchantRecordRepositoryImpl) CountInReviewBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&models.MerchantRecord{}).
		Where("registration_status = ? AND updated_at < ?", string(entities.RegistrationStatusReview), cutoff).
		Count(&count).Error
	return count, err
}
