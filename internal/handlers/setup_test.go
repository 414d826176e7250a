package handlers

import (
	"context"

	"github.com/Ali-Cheikh/ramadan-duo/internal/config"
	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/Ali-Cheikh/ramadan-duo/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db
	database.DB.AutoMigrate(
		&models.User{},
		&models.DailyLog{},
		&models.Achievement{},
		&models.PushSubscription{},
		&models.FriendRequest{},
		&models.ReminderSchedule{},
	)

	config.AppConfig = &config.Config{
		VapidPublicKey:  "test-public",
		VapidPrivateKey: "test-private",
		VapidSubject:    "mailto:test@example.com",
		CronSecret:      "cron-secret",
	}
}

// okSender accepts every delivery. Installed on the shared PushSvc so
// handler tests never touch the network.
type okSender struct{}

func (okSender) Send(context.Context, models.PushSubscription, []byte) services.SendOutcome {
	return services.SendOK
}

func useFakePush() {
	PushSvc.Sender = okSender{}
}
