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

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		title TEXT,
		bio TEXT,
		expertise TEXT,
		interests TEXT,
		contact_email TEXT,
		contact_email_shown BOOLEAN,
		contact_phone TEXT,
		contact_phone_shown BOOLEAN,
		whatsapp TEXT,
		whatsapp_shown BOOLEAN,
		preferred_method TEXT,
		is_profile_complete BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createMentorshipRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE mentorship_requests (
		id TEXT PRIMARY KEY,
		mentor_id TEXT NOT NULL,
		mentee_id TEXT NOT NULL,
		opportunity_id TEXT,
		message TEXT NOT NULL,
		status TEXT NOT NULL,
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE (mentor_id, mentee_id)
	);`)
}

func createOpportunityTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE opportunities (
		id TEXT PRIMARY KEY,
		mentor_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		requirements TEXT,
		application_link TEXT,
		deadline DATETIME,
		status TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		sender_id TEXT NOT NULL,
		recipient_id TEXT NOT NULL,
		content TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT 0,
		attachments TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createNotificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		recipient_id TEXT NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT 0,
		related_item TEXT,
		item_kind TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSessionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE sessions (
		id TEXT PRIMARY KEY,
		mentor_id TEXT NOT NULL,
		mentee_id TEXT NOT NULL,
		topic TEXT NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME NOT NULL,
		status TEXT NOT NULL,
		notes TEXT,
		meeting_link TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createGoalTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE goals (
		id TEXT PRIMARY KEY,
		mentorship_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		deadline DATETIME,
		status TEXT NOT NULL,
		progress INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
