package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/Ali-Cheikh/ramadan-duo/pkg/logger"
)

// reminderBatch bounds one sweep so a backlog cannot stall the cron.
const reminderBatch = 100

// ReminderService sweeps due reminder schedules and pushes nudges.
type ReminderService struct {
	Push *PushService
}

func NewReminderService(push *PushService) *ReminderService {
	return &ReminderService{Push: push}
}

// SweepResult summarizes one reminder dispatch run.
type SweepResult struct {
	Sent      int `json:"sent"`
	Reminders int `json:"reminders"`
	Users     int `json:"users"`
}

// DispatchDue collects pending reminders that are due, groups them per
// user, sends one push per user and marks the rows sent. Rows are marked
// even when delivery fails: a reminder is a nudge, not a guarantee, and
// re-sending stale ones after an outage would be worse.
func (s *ReminderService) DispatchDue(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	var due []models.ReminderSchedule
	if err := database.DB.
		Where("notification_sent = ? AND scheduled_for <= ?", false, time.Now()).
		Limit(reminderBatch).
		Find(&due).Error; err != nil {
		return result, fmt.Errorf("load due reminders: %w", err)
	}
	if len(due) == 0 {
		return result, nil
	}
	result.Reminders = len(due)

	byUser := make(map[string][]models.ReminderSchedule)
	ids := make([]string, 0, len(due))
	for _, r := range due {
		byUser[r.UserID] = append(byUser[r.UserID], r)
		ids = append(ids, r.ID)
	}
	result.Users = len(byUser)

	for userID, reminders := range byUser {
		payload := reminderPayload(reminders)
		outcome := s.Push.SendToUser(ctx, userID, payload)
		result.Sent += outcome.SentCount

		if outcome.Reason == ReasonDeliveryFailed {
			logger.Warn().
				Str("user_id", userID).
				Int("subscriptions", outcome.SubscriptionCount).
				Msg("Reminder delivery failed for all endpoints")
		}
	}

	now := time.Now()
	if err := database.DB.Model(&models.ReminderSchedule{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{"notification_sent": true, "sent_at": now}).Error; err != nil {
		return result, fmt.Errorf("mark reminders sent: %w", err)
	}

	return result, nil
}

// reminderPayload picks the wording: the evening "last chance" beats the
// hourly nudge when both are queued for the same user.
func reminderPayload(reminders []models.ReminderSchedule) PushPayload {
	lastChance := false
	for _, r := range reminders {
		if r.ReminderType == models.ReminderLastChance {
			lastChance = true
			break
		}
	}

	if lastChance {
		return PushPayload{
			Title: "🌙 Last Chance Tonight!",
			Body:  "Your streak resets in 3 hours. Complete your deeds now!",
			URL:   "/dashboard",
			Tag:   "reminder-evening_last_chance",
		}
	}
	return PushPayload{
		Title: "⏰ Daily Reminder",
		Body:  "Keep your streak alive - check in to Ramadan Quest!",
		URL:   "/dashboard",
		Tag:   "reminder-hourly",
	}
}
