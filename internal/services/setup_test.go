package services

import (
	"context"
	"sync"
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/internal/config"
	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
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
	}
}

// fakeSender records deliveries and returns scripted outcomes per endpoint.
type fakeSender struct {
	mu       sync.Mutex
	outcomes map[string]SendOutcome
	sent     []string
}

func newFakeSender() *fakeSender {
	return &fakeSender{outcomes: make(map[string]SendOutcome)}
}

func (f *fakeSender) Send(_ context.Context, sub models.PushSubscription, _ []byte) SendOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sub.Endpoint)
	if outcome, ok := f.outcomes[sub.Endpoint]; ok {
		return outcome
	}
	return SendOK
}

func (f *fakeSender) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestPushService(sender PushSender) *PushService {
	return &PushService{Sender: sender, SendTimeout: time.Second}
}
