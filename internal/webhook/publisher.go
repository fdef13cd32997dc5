package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
)

const webhookQueueKey = "webhook_events"

// Event types delivered to the external dashboard.
const (
	EventReportCreated   = "report.created"
	EventReportVerified  = "report.verified"
	EventReportResolved  = "report.resolved"
	EventAlertBroadcast  = "alert.broadcast"
)

// Event is a report/alert lifecycle notification for external consumers.
type Event struct {
	Type      string            `json:"type"`
	ReportID  *uuid.UUID        `json:"report_id,omitempty"`
	AlertID   *uuid.UUID        `json:"alert_id,omitempty"`
	Level     models.AlertLevel `json:"level,omitempty"`
	Locality  string            `json:"locality,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Publisher queues webhook events for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher implements Publisher on a Redis list.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: client}
}

// Publish pushes the event onto the delivery queue.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
