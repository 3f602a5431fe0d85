package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"merchant-portal.backend/internal/domain/entities"
	"merchant-portal.backend/pkg/utils"
)

// MerchantRecordRepository defines persistence for merchant records and their
// registration sub-entities. Status fields are mutated only through
// UpdateStatusGuarded, which enforces optimistic concurrency on the previously
// observed status.
type MerchantRecordRepository interface {
	CreateRecord(ctx context.Context, record *entities.MerchantRecord) error
	GetRecord(ctx context.Context, id uuid.UUID) (*entities.MerchantRecord, error)
	GetAggregate(ctx context.Context, id uuid.UUID) (*entities.MerchantAggregate, error)
	List(ctx context.Context, status *entities.RegistrationStatus, p utils.PaginationParams) ([]*entities.MerchantRecord, int64, error)

	UpsertBusinessInfo(ctx context.Context, info *entities.BusinessInfo) error
	UpsertLicense(ctx context.Context, license *entities.BusinessLicense) error
	UpsertLocation(ctx context.Context, location *entities.LocationInfo) error
	UpsertOwner(ctx context.Context, owner *entities.BusinessOwner) error
	UpsertContact(ctx context.Context, contact *entities.ContactPerson) error

	// UpdateStatusGuarded applies a status transition only if the stored status
	// still equals expected. Returns ErrConcurrencyConflict when another actor
	// changed the status in between, ErrNotFound when the record is missing.
	UpdateStatusGuarded(
		ctx context.Context,
		id uuid.UUID,
		expected, next entities.RegistrationStatus,
		reason null.String,
		checkedBy uuid.NullUUID,
	) error

	// CountInReviewBefore counts records that entered review before the cutoff,
	// for the stale-review reminder job.
	CountInReviewBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// UserRepository defines staff user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, p utils.PaginationParams) ([]*entities.User, int64, error)
}

// DFSPRepository defines DFSP data operations
type DFSPRepository interface {
	Create(ctx context.Context, dfsp *entities.DFSP) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DFSP, error)
	Update(ctx context.Context, dfsp *entities.DFSP) error
	List(ctx context.Context, p utils.PaginationParams) ([]*entities.DFSP, int64, error)
}
