package migrations

import (
	"gorm.io/gorm"
)

// Migration001EnsureUUIDExtension makes gen_random_uuid available for row
// IDs generated inside SQL.
func Migration001EnsureUUIDExtension() Migration {
	return Migration{
		ID:   "001_ensure_uuid_extension",
		Name: "Ensure pgcrypto extension for UUID generation",
		Up: func(db *gorm.DB) error {
			return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
		},
		Down: func(db *gorm.DB) error {
			return nil
		},
	}
}

// Migration002AddHotPathIndexes covers the queries every deed toggle fires:
// the bounded history read, the unnotified-achievement stamp, and the due
// reminder sweep. All statements are IF NOT EXISTS for safe re-runs.
func Migration002AddHotPathIndexes() Migration {
	return Migration{
		ID:        "002_add_hot_path_indexes",
		Name:      "Add indexes for history reads, notify stamping and reminder sweeps",
		DependsOn: []string{"001_ensure_uuid_extension"},
		Up: func(db *gorm.DB) error {
			// History read: WHERE user_id = ? ORDER BY log_date DESC LIMIT 400
			idx1 := `
				CREATE INDEX IF NOT EXISTS idx_daily_logs_user_date_desc
				ON daily_logs (user_id, log_date DESC)
			`
			if err := db.Exec(idx1).Error; err != nil {
				return err
			}

			// Notified-at stamp: WHERE user_id = ? AND badge_type IN (...) AND notified_at IS NULL
			idx2 := `
				CREATE INDEX IF NOT EXISTS idx_achievements_unnotified
				ON achievements (user_id) WHERE notified_at IS NULL
			`
			if err := db.Exec(idx2).Error; err != nil {
				return err
			}

			// Reminder sweep: WHERE notification_sent = false AND scheduled_for <= now() LIMIT 100
			idx3 := `
				CREATE INDEX IF NOT EXISTS idx_reminders_due
				ON reminder_schedules (scheduled_for) WHERE notification_sent = false
			`
			return db.Exec(idx3).Error
		},
		Down: func(db *gorm.DB) error {
			for _, stmt := range []string{
				`DROP INDEX IF EXISTS idx_daily_logs_user_date_desc`,
				`DROP INDEX IF EXISTS idx_achievements_unnotified`,
				`DROP INDEX IF EXISTS idx_reminders_due`,
			} {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	}
}
