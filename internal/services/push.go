package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Ali-Cheikh/ramadan-duo/internal/config"
	"github.com/Ali-Cheikh/ramadan-duo/internal/database"
	"github.com/Ali-Cheikh/ramadan-duo/internal/models"
	"github.com/Ali-Cheikh/ramadan-duo/internal/streaks"
	"github.com/Ali-Cheikh/ramadan-duo/pkg/logger"
	webpush "github.com/SherClockHolmes/webpush-go"
)

// DispatchReason labels the structured outcome of a dispatch so callers can
// tell "nothing to do" and "not set up" apart from actual delivery failure.
type DispatchReason string

const (
	ReasonNotAttempted      DispatchReason = "not_attempted"
	ReasonNoBadges          DispatchReason = "no_badges"
	ReasonPushNotConfigured DispatchReason = "push_not_configured"
	ReasonNoSubscriptions   DispatchReason = "no_subscriptions"
	ReasonDeliveryFailed    DispatchReason = "delivery_failed"
	ReasonSent              DispatchReason = "sent"
)

// DispatchResult is the aggregate outcome of one notification fan-out.
// Partial per-endpoint results are never exposed, only the counts.
type DispatchResult struct {
	Sent              bool           `json:"sent"`
	SentCount         int            `json:"sentCount"`
	SubscriptionCount int            `json:"subscriptionCount"`
	Reason            DispatchReason `json:"reason"`
}

// NotAttempted is the zero outcome for evaluations that never reached the
// dispatcher.
func NotAttempted() DispatchResult {
	return DispatchResult{Reason: ReasonNotAttempted}
}

// PushPayload is the JSON document the service worker receives.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
	Tag   string `json:"tag"`
}

// SendOutcome classifies one delivery attempt.
type SendOutcome int

const (
	SendOK SendOutcome = iota
	// SendGone means the provider reported the endpoint permanently dead
	// (404/410); the subscription row must be pruned.
	SendGone
	SendFailed
)

// PushSender delivers one encrypted payload to one subscription. It exists
// so tests can swap the web-push transport for a fake.
type PushSender interface {
	Send(ctx context.Context, sub models.PushSubscription, payload []byte) SendOutcome
}

// webPushSender is the production VAPID transport.
type webPushSender struct {
	client *http.Client
}

func (w *webPushSender) Send(ctx context.Context, sub models.PushSubscription, payload []byte) SendOutcome {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      w.client,
		Subscriber:      config.AppConfig.VapidSubject,
		VAPIDPublicKey:  config.AppConfig.VapidPublicKey,
		VAPIDPrivateKey: config.AppConfig.VapidPrivateKey,
		TTL:             3600,
	})
	if err != nil {
		return SendFailed
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return SendGone
	case resp.StatusCode >= 400:
		return SendFailed
	default:
		return SendOK
	}
}

// PushService is the notification dispatcher. One instance is shared by the
// achievement evaluator and the reminder sweep.
type PushService struct {
	Sender PushSender

	// SendTimeout bounds every individual send so one hung endpoint cannot
	// stall the join.
	SendTimeout time.Duration
}

func NewPushService() *PushService {
	return &PushService{
		Sender:      &webPushSender{client: &http.Client{Timeout: 10 * time.Second}},
		SendTimeout: 10 * time.Second,
	}
}

// NotifyBadges composes the achievement payload and fans it out to every
// endpoint the user has registered.
func (s *PushService) NotifyBadges(ctx context.Context, userID string, badges []streaks.BadgeType) DispatchResult {
	if len(badges) == 0 {
		return DispatchResult{Reason: ReasonNoBadges}
	}
	return s.SendToUser(ctx, userID, badgePayload(badges))
}

// SendToUser delivers one payload to all of the user's subscriptions
// concurrently and joins before returning. Per-endpoint failures are
// swallowed; permanently-gone endpoints are deleted as a side effect.
func (s *PushService) SendToUser(ctx context.Context, userID string, payload PushPayload) DispatchResult {
	if !config.AppConfig.PushConfigured() {
		return DispatchResult{Reason: ReasonPushNotConfigured}
	}

	var subs []models.PushSubscription
	if err := database.DB.Where("user_id = ?", userID).Find(&subs).Error; err != nil || len(subs) == 0 {
		return DispatchResult{Reason: ReasonNoSubscriptions}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return DispatchResult{SubscriptionCount: len(subs), Reason: ReasonDeliveryFailed}
	}

	var sent int64
	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(sub models.PushSubscription) {
			defer wg.Done()

			sendCtx, cancel := context.WithTimeout(ctx, s.SendTimeout)
			defer cancel()

			switch s.Sender.Send(sendCtx, sub, body) {
			case SendOK:
				atomic.AddInt64(&sent, 1)
			case SendGone:
				// The provider says this endpoint no longer exists; prune it.
				if err := database.DB.Delete(&models.PushSubscription{}, "id = ?", sub.ID).Error; err != nil {
					logger.Warn().Err(err).Str("subscription", sub.ID).Msg("Failed to prune dead push subscription")
				}
			case SendFailed:
				// Transient; keep the subscription for the next dispatch.
			}
		}(sub)
	}
	wg.Wait()

	result := DispatchResult{
		SentCount:         int(sent),
		SubscriptionCount: len(subs),
	}
	if sent > 0 {
		result.Sent = true
		result.Reason = ReasonSent
	} else {
		result.Reason = ReasonDeliveryFailed
	}
	return result
}

func badgePayload(badges []streaks.BadgeType) PushPayload {
	names := make([]string, 0, len(badges))
	for _, b := range badges {
		names = append(names, streaks.BadgeLabel(b))
	}

	payload := PushPayload{
		URL: "/dashboard",
		Tag: "achievement-unlock",
	}
	if len(badges) == 1 {
		payload.Title = "🏅 New Achievement Unlocked!"
		payload.Body = "You earned " + names[0]
	} else {
		payload.Title = "🏅 " + strconv.Itoa(len(badges)) + " New Achievements!"
		payload.Body = "Unlocked: " + names[0] + ", " + names[1]
		if len(badges) > 2 {
			payload.Body += "..."
		}
	}
	return payload
}
