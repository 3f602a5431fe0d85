package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createMerchantRecordTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchant_records (
		id TEXT PRIMARY KEY,
		dfsp_id TEXT,
		registration_status TEXT NOT NULL DEFAULT 'draft',
		registration_status_reason TEXT,
		maker_id TEXT NOT NULL,
		checked_by_id TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createRegistrationStepTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE business_infos (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL UNIQUE,
		business_name TEXT NOT NULL,
		registered_name TEXT,
		merchant_category TEXT,
		currency TEXT NOT NULL,
		website_url TEXT,
		employee_count INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE business_licenses (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL UNIQUE,
		license_number TEXT NOT NULL,
		document_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE location_infos (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		location_type TEXT NOT NULL,
		address TEXT NOT NULL,
		city TEXT NOT NULL,
		district TEXT,
		country TEXT NOT NULL,
		postal_code TEXT,
		latitude TEXT,
		longitude TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE business_owners (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		identification_type TEXT NOT NULL,
		identification_number TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		email TEXT,
		address TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE contact_persons (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		email TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		dfsp_id TEXT,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL,
		last_login_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createDFSPTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE dfsps (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		fsp_id TEXT UNIQUE NOT NULL,
		logo_url TEXT,
		is_active BOOLEAN NOT NULL,
		activated_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAuditLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		action TEXT NOT NULL,
		outcome TEXT NOT NULL,
		actor_id TEXT NOT NULL,
		entity_name TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		description TEXT,
		before TEXT,
		after TEXT,
		created_at DATETIME
	);`)
}
