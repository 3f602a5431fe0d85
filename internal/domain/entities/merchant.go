package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RegistrationStatus represents the review lifecycle status of a merchant record
type RegistrationStatus string

const (
	RegistrationStatusDraft    RegistrationStatus = "draft"
	RegistrationStatusReview   RegistrationStatus = "review"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
	RegistrationStatusReverted RegistrationStatus = "reverted"
)

// IsTerminal reports whether no further transitions are possible
func (s RegistrationStatus) IsTerminal() bool {
	return s == RegistrationStatusApproved || s == RegistrationStatusRejected
}

// IsEditable reports whether the maker may still modify the draft
func (s RegistrationStatus) IsEditable() bool {
	return s == RegistrationStatusDraft || s == RegistrationStatusReverted
}

// MerchantRecord is the root entity of a merchant registration.
// RegistrationStatusReason is non-null iff the status is rejected or reverted;
// CheckedByID is the checker who moved the record out of review.
type MerchantRecord struct {
	ID                       uuid.UUID          `json:"id"`
	DFSPID                   uuid.NullUUID      `json:"dfspId,omitempty"`
	RegistrationStatus       RegistrationStatus `json:"registrationStatus"`
	RegistrationStatusReason null.String        `json:"registrationStatusReason,omitempty"`
	MakerID                  uuid.UUID          `json:"makerId"`
	CheckedByID              uuid.NullUUID      `json:"checkedById,omitempty"`
	CreatedAt                time.Time          `json:"createdAt"`
	UpdatedAt                time.Time          `json:"updatedAt"`
}

// BusinessInfo holds the step-1 data of the registration wizard
type BusinessInfo struct {
	ID               uuid.UUID   `json:"id"`
	MerchantID       uuid.UUID   `json:"merchantId"`
	BusinessName     string      `json:"businessName"`
	RegisteredName   null.String `json:"registeredName,omitempty"`
	MerchantCategory null.String `json:"merchantCategory,omitempty"`
	Currency         string      `json:"currency"`
	WebsiteURL       null.String `json:"websiteUrl,omitempty"`
	EmployeeCount    null.Int64  `json:"employeeCount,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// BusinessLicense is an optional attachment to the step-1 data
type BusinessLicense struct {
	ID            uuid.UUID   `json:"id"`
	MerchantID    uuid.UUID   `json:"merchantId"`
	LicenseNumber string      `json:"licenseNumber"`
	DocumentURL   null.String `json:"documentUrl,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// LocationInfo holds the step-2 data; the first location is the primary one
type LocationInfo struct {
	ID           uuid.UUID   `json:"id"`
	MerchantID   uuid.UUID   `json:"merchantId"`
	LocationType string      `json:"locationType"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	District     null.String `json:"district,omitempty"`
	Country      string      `json:"country"`
	PostalCode   null.String `json:"postalCode,omitempty"`
	Latitude     null.String `json:"latitude,omitempty"`
	Longitude    null.String `json:"longitude,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// BusinessOwner holds the step-3 data
type BusinessOwner struct {
	ID                   uuid.UUID   `json:"id"`
	MerchantID           uuid.UUID   `json:"merchantId"`
	Name                 string      `json:"name"`
	IdentificationType   string      `json:"identificationType"`
	IdentificationNumber string      `json:"identificationNumber"`
	PhoneNumber          string      `json:"phoneNumber"`
	Email                null.String `json:"email,omitempty"`
	Address              null.String `json:"address,omitempty"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

// ContactPerson holds the step-4 data
type ContactPerson struct {
	ID          uuid.UUID   `json:"id"`
	MerchantID  uuid.UUID   `json:"merchantId"`
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phoneNumber"`
	Email       null.String `json:"email,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// MerchantAggregate is the full view of a record and its sub-entities,
// returned by every draft save so the wizard can resume from any step
type MerchantAggregate struct {
	Record       *MerchantRecord  `json:"record"`
	BusinessInfo *BusinessInfo    `json:"businessInfo,omitempty"`
	License      *BusinessLicense `json:"license,omitempty"`
	Locations    []*LocationInfo  `json:"locations"`
	Owners       []*BusinessOwner `json:"owners"`
	Contacts     []*ContactPerson `json:"contacts"`
}

// PrimaryLocation returns the first saved location, if any
func (a *MerchantAggregate) PrimaryLocation() *LocationInfo {
	if len(a.Locations) == 0 {
		return nil
	}
	return a.Locations[0]
}

// BusinessInfoInput is the validated step-1 payload
type BusinessInfoInput struct {
	BusinessName     string `json:"businessName" binding:"required,min=2,max=255"`
	RegisteredName   string `json:"registeredName,omitempty"`
	MerchantCategory string `json:"merchantCategory,omitempty"`
	Currency         string `json:"currency" binding:"required,len=3"`
	WebsiteURL       string `json:"websiteUrl,omitempty"`
	EmployeeCount    int64  `json:"employeeCount,omitempty"`
	LicenseNumber    string `json:"licenseNumber,omitempty"`
	LicenseDocument  string `json:"licenseDocument,omitempty"`
}

// LocationInfoInput is the validated step-2 payload
type LocationInfoInput struct {
	LocationType string `json:"locationType" binding:"required"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required"`
	District     string `json:"district,omitempty"`
	Country      string `json:"country" binding:"required"`
	PostalCode   string `json:"postalCode,omitempty"`
	Latitude     string `json:"latitude,omitempty"`
	Longitude    string `json:"longitude,omitempty"`
}

// BusinessOwnerInput is the validated step-3 payload
type BusinessOwnerInput struct {
	Name                 string `json:"name" binding:"required,min=2,max=255"`
	IdentificationType   string `json:"identificationType" binding:"required"`
	IdentificationNumber string `json:"identificationNumber" binding:"required"`
	PhoneNumber          string `json:"phoneNumber" binding:"required"`
	Email                string `json:"email,omitempty"`
	Address              string `json:"address,omitempty"`
}

// ContactPersonInput is the validated step-4 payload
type ContactPersonInput struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Email       string `json:"email,omitempty"`
}
