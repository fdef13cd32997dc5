package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/geo"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/push"
	"github.com/sentinel-dakar/flood_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// SubscriptionRepository is the persistence contract for push subscriptions.
type SubscriptionRepository interface {
	Upsert(ctx context.Context, sub *models.PushSubscription) error
	UpdatePresence(ctx context.Context, endpoint string, userID *uuid.UUID, lat, lng float64, locality string) (int64, error)
	ListAll(ctx context.Context) ([]*models.PushSubscription, error)
	ListLocated(ctx context.Context) ([]*models.PushSubscription, error)
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int, error)
}

// FanoutResult counts what a delivery pass did. Purely observational, never
// used for retry decisions.
type FanoutResult struct {
	Sent    int `json:"sent"`
	Removed int `json:"removed"`
}

// SubscribeInput carries a browser push registration.
type SubscribeInput struct {
	Endpoint string
	P256dh   string
	Auth     string
	UserID   *uuid.UUID
}

// PresenceInput carries a subscriber coordinate update.
type PresenceInput struct {
	Endpoint  string
	Latitude  float64
	Longitude float64
	Locality  string
	UserID    *uuid.UUID
}

// AlertAreaInput parameterizes a geo-targeted fan-out. The reference point is
// derived from the report first, then the alert.
type AlertAreaInput struct {
	ReportID *uuid.UUID
	AlertID  *uuid.UUID
	RadiusKm float64
	Title    string
	Body     string
	URL      string
}

// NotificationService orchestrates push subscriptions and fan-outs: the
// "validate report" and "alert area" use cases.
type NotificationService interface {
	Subscribe(ctx context.Context, input SubscribeInput) (*models.PushSubscription, error)
	UpdatePresence(ctx context.Context, input PresenceInput) (int64, error)
	BroadcastTest(ctx context.Context) (FanoutResult, error)
	AlertArea(ctx context.Context, input AlertAreaInput) (FanoutResult, error)
	ValidateReport(ctx context.Context, id uuid.UUID) (FanoutResult, error)
	ResolveReport(ctx context.Context, id uuid.UUID) error
	SubscriberCount(ctx context.Context) (int, error)
	PublicKey() string
}

// notificationPayload is the JSON document delivered to the service worker.
type notificationPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

type notificationService struct {
	subs              SubscriptionRepository
	reports           ReportRepository
	alerts            AlertRepository
	sender            push.Sender
	events            webhook.Publisher
	logger            *logrus.Logger
	vapidPublicKey    string
	defaultRadiusKm   float64
	presenceMatchUser bool
}

// NotificationServiceOptions bundle the static settings of the service.
type NotificationServiceOptions struct {
	VAPIDPublicKey    string
	DefaultRadiusKm   float64
	PresenceMatchUser bool
}

func NewNotificationService(
	subs SubscriptionRepository,
	reports ReportRepository,
	alerts AlertRepository,
	sender push.Sender,
	events webhook.Publisher,
	logger *logrus.Logger,
	opts NotificationServiceOptions,
) NotificationService {
	if opts.DefaultRadiusKm <= 0 {
		opts.DefaultRadiusKm = geo.DefaultRadiusKm
	}
	return &notificationService{
		subs:              subs,
		reports:           reports,
		alerts:            alerts,
		sender:            sender,
		events:            events,
		logger:            logger,
		vapidPublicKey:    opts.VAPIDPublicKey,
		defaultRadiusKm:   opts.DefaultRadiusKm,
		presenceMatchUser: opts.PresenceMatchUser,
	}
}

// Subscribe upserts a push registration keyed by endpoint.
func (s *notificationService) Subscribe(ctx context.Context, input SubscribeInput) (*models.PushSubscription, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "Subscribe",
	})

	sub := &models.PushSubscription{
		UserID:   input.UserID,
		Endpoint: input.Endpoint,
		P256dh:   input.P256dh,
		Auth:     input.Auth,
	}
	if err := s.subs.Upsert(ctx, sub); err != nil {
		log.WithError(err).Error("Failed to upsert push subscription")
		return nil, fmt.Errorf("service: could not save subscription: %w", err)
	}

	log.WithField("subscription_id", sub.ID).Info("Push subscription saved")
	return sub, nil
}

// UpdatePresence refreshes the coordinates of the subscriptions matching the
// endpoint, and of the user's other devices when configured to.
func (s *notificationService) UpdatePresence(ctx context.Context, input PresenceInput) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "UpdatePresence",
	})

	userID := input.UserID
	if !s.presenceMatchUser {
		userID = nil
	}

	updated, err := s.subs.UpdatePresence(ctx, input.Endpoint, userID, input.Latitude, input.Longitude, input.Locality)
	if err != nil {
		log.WithError(err).Error("Failed to update subscriber presence")
		return 0, fmt.Errorf("service: could not update presence: %w", err)
	}

	log.WithField("updated", updated).Info("Subscriber presence updated")
	return updated, nil
}

// BroadcastTest sends a test notification to every subscription.
func (s *notificationService) BroadcastTest(ctx context.Context) (FanoutResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "BroadcastTest",
	})

	subs, err := s.subs.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list subscriptions")
		return FanoutResult{}, fmt.Errorf("service: could not list subscriptions: %w", err)
	}

	result := s.fanout(ctx, subs, notificationPayload{
		Title: "Test Sentinel Dakar",
		Body:  "Notification de test",
		URL:   "/alertes",
	})
	log.WithFields(logrus.Fields{"sent": result.Sent, "removed": result.Removed}).Info("Test broadcast completed")
	return result, nil
}

// AlertArea delivers a notification to every located subscriber within the
// radius of the reference point. The reference is looked up on the named
// report first, then the named alert; without one the fan-out is rejected
// before any delivery.
func (s *notificationService) AlertArea(ctx context.Context, input AlertAreaInput) (FanoutResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "AlertArea",
	})

	ref, ok := s.referenceCoordinates(ctx, input.ReportID, input.AlertID)
	if !ok {
		return FanoutResult{}, ErrNoReferenceLocation
	}

	radius := input.RadiusKm
	if radius <= 0 {
		radius = s.defaultRadiusKm
	}

	payload := notificationPayload{
		Title: input.Title,
		Body:  input.Body,
		URL:   input.URL,
	}
	if payload.Title == "" {
		payload.Title = "Alerte Inondation"
	}
	if payload.Body == "" {
		payload.Body = "Risque élevé dans votre zone. Restez vigilants."
	}
	if payload.URL == "" {
		payload.URL = "/alertes"
	}

	candidates, err := s.subs.ListLocated(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list located subscriptions")
		return FanoutResult{}, fmt.Errorf("service: could not list subscriptions: %w", err)
	}

	targets := make([]*models.PushSubscription, 0, len(candidates))
	for _, sub := range candidates {
		if !sub.HasCoordinates() {
			continue
		}
		candidate := geo.Coordinates{Latitude: *sub.Latitude, Longitude: *sub.Longitude}
		if geo.WithinRadius(ref, candidate, radius) {
			targets = append(targets, sub)
		}
	}

	result := s.fanout(ctx, targets, payload)
	log.WithFields(logrus.Fields{
		"radius_km": radius,
		"targets":   len(targets),
		"sent":      result.Sent,
		"removed":   result.Removed,
	}).Info("Alert area fan-out completed")

	if err := s.events.Publish(ctx, webhook.Event{
		Type:      webhook.EventAlertBroadcast,
		ReportID:  input.ReportID,
		AlertID:   input.AlertID,
		Timestamp: time.Now(),
	}); err != nil {
		log.WithError(err).Warn("Failed to publish alert broadcast event")
	}
	return result, nil
}

// referenceCoordinates derives a fan-out reference point: report first, alert
// as fallback.
func (s *notificationService) referenceCoordinates(ctx context.Context, reportID, alertID *uuid.UUID) (geo.Coordinates, bool) {
	if reportID != nil {
		if coords, err := s.reports.ReportCoordinates(ctx, *reportID); err == nil {
			return coords, true
		}
	}
	if alertID != nil {
		if coords, err := s.alerts.AlertCoordinates(ctx, *alertID); err == nil {
			return coords, true
		}
	}
	return geo.Coordinates{}, false
}

// ValidateReport marks a report verified and broadcasts the validation to
// every subscriber.
func (s *notificationService) ValidateReport(ctx context.Context, id uuid.UUID) (FanoutResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "notification",
		"method":    "ValidateReport",
		"report_id": id,
	})

	if err := s.reports.UpdateReportStatus(ctx, id, models.StatusVerified); err != nil {
		log.WithError(err).Warn("Failed to mark report verified")
		return FanoutResult{}, fmt.Errorf("service: could not validate report: %w", err)
	}

	subs, err := s.subs.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list subscriptions")
		return FanoutResult{}, fmt.Errorf("service: could not list subscriptions: %w", err)
	}

	result := s.fanout(ctx, subs, notificationPayload{
		Title: "Alerte validée",
		Body:  fmt.Sprintf("Signalement #%s validé.", id),
		URL:   "/alertes",
	})

	if err := s.events.Publish(ctx, webhook.Event{
		Type:      webhook.EventReportVerified,
		ReportID:  &id,
		Timestamp: time.Now(),
	}); err != nil {
		log.WithError(err).Warn("Failed to publish report verified event")
	}

	log.WithFields(logrus.Fields{"sent": result.Sent, "removed": result.Removed}).Info("Report validated")
	return result, nil
}

// ResolveReport marks a report resolved.
func (s *notificationService) ResolveReport(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "notification",
		"method":    "ResolveReport",
		"report_id": id,
	})

	if err := s.reports.UpdateReportStatus(ctx, id, models.StatusResolved); err != nil {
		log.WithError(err).Warn("Failed to mark report resolved")
		return fmt.Errorf("service: could not resolve report: %w", err)
	}

	if err := s.events.Publish(ctx, webhook.Event{
		Type:      webhook.EventReportResolved,
		ReportID:  &id,
		Timestamp: time.Now(),
	}); err != nil {
		log.WithError(err).Warn("Failed to publish report resolved event")
	}

	log.Info("Report resolved")
	return nil
}

// fanout delivers the payload to each subscription in turn. A "gone" delivery
// deletes the subscription; any other failure skips it without aborting the
// remaining deliveries.
func (s *notificationService) fanout(ctx context.Context, subs []*models.PushSubscription, payload notificationPayload) FanoutResult {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "fanout",
	})

	body, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Error("Failed to marshal notification payload")
		return FanoutResult{}
	}

	var result FanoutResult
	for _, sub := range subs {
		err := s.sender.Send(ctx, sub, body)
		switch {
		case err == nil:
			result.Sent++
		case errors.Is(err, push.ErrSubscriptionGone):
			if delErr := s.subs.Delete(ctx, sub.ID); delErr != nil {
				log.WithError(delErr).WithField("subscription_id", sub.ID).Warn("Failed to prune gone subscription")
				continue
			}
			result.Removed++
		default:
			log.WithError(err).WithField("subscription_id", sub.ID).Warn("Push delivery failed, skipping subscription")
		}
	}
	return result
}

// SubscriberCount returns the total number of registered subscriptions.
func (s *notificationService) SubscriberCount(ctx context.Context) (int, error) {
	count, err := s.subs.CountAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: could not count subscriptions: %w", err)
	}
	return count, nil
}

// PublicKey exposes the VAPID public key for front-end subscription calls.
func (s *notificationService) PublicKey() string {
	return s.vapidPublicKey
}
