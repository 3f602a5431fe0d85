package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"
	"merchant-portal.backend/internal/domain/entities"
	"merchant-portal.backend/pkg/utils"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock MerchantRecordRepository
type MockMerchantRecordRepository struct {
	mock.Mock
}

func (m *MockMerchantRecordRepository) CreateRecord(ctx context.Context, record *entities.MerchantRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMerchantRecordRepository) GetRecord(ctx context.Context, id uuid.UUID) (*entities.MerchantRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MerchantRecord), args.Error(1)
}

func (m *MockMerchantRecordRepository) GetAggregate(ctx context.Context, id uuid.UUID) (*entities.MerchantAggregate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MerchantAggregate), args.Error(1)
}

func (m *MockMerchantRecordRepository) List(ctx context.Context, status *entities.RegistrationStatus, p utils.PaginationParams) ([]*entities.MerchantRecord, int64, error) {
	args := m.Called(ctx, status, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.MerchantRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockMerchantRecordRepository) UpsertBusinessInfo(ctx context.Context, info *entities.BusinessInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockMerchantRecordRepository) UpsertLicense(ctx context.Context, license *entities.BusinessLicense) error {
	args := m.Called(ctx, license)
	return args.Error(0)
}

func (m *MockMerchantRecordRepository) UpsertLocation(ctx context.Context, location *entities.LocationInfo) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockMerchantRecordRepository) UpsertOwner(ctx context.Context, owner *entities.BusinessOwner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockMerchantRecordRepository) UpsertContact(ctx context.Context, contact *entities.ContactPerson) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockMerchantRecordRepository) UpdateStatusGuarded(ctx context.Context, id uuid.UUID, expected, next entities.RegistrationStatus, reason null.String, checkedBy uuid.NullUUID) error {
	args := m.Called(ctx, id, expected, next, reason, checkedBy)
	return args.Error(0)
}

func (m *MockMerchantRecordRepository) CountInReviewBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, p utils.PaginationParams) ([]*entities.User, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

// Mock DFSPRepository
type MockDFSPRepository struct {
	mock.Mock
}

func (m *MockDFSPRepository) Create(ctx context.Context, dfsp *entities.DFSP) error {
	args := m.Called(ctx, dfsp)
	return args.Error(0)
}

func (m *MockDFSPRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DFSP, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DFSP), args.Error(1)
}

func (m *MockDFSPRepository) Update(ctx context.Context, dfsp *entities.DFSP) error {
	args := m.Called(ctx, dfsp)
	return args.Error(0)
}

func (m *MockDFSPRepository) List(ctx context.Context, p utils.PaginationParams) ([]*entities.DFSP, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.DFSP), args.Get(1).(int64), args.Error(2)
}

// Mock AuditEmitter
type MockAuditEmitter struct {
	mock.Mock
}

func (m *MockAuditEmitter) Record(ctx context.Context, event *entities.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Mock AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) List(ctx context.Context, entityName string, p utils.PaginationParams) ([]*entities.AuditEvent, int64, error) {
	args := m.Called(ctx, entityName, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.AuditEvent), args.Get(1).(int64), args.Error(2)
}
