package handlers

import "github.com/Ali-Cheikh/ramadan-duo/internal/services"

// Shared service instances. Tests swap the push sender on PushSvc to fake
// the transport.
var (
	PushSvc        = services.NewPushService()
	AchievementSvc = services.NewAchievementService(PushSvc)
	ReminderSvc    = services.NewReminderService(PushSvc)
)
