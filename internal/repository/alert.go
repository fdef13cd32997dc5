package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sentinel-dakar/flood_reporting_system/internal/geo"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
)

const alertCacheTTL = 5 * time.Minute

type AlertRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAlertRepository(db *pgxpool.Pool, redisClient *redis.Client) service.AlertRepository {
	return &AlertRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// GetAlert returns an alert by its UUID.
func (r *AlertRepository) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	alert := &models.Alert{}
	err := r.db.QueryRow(ctx,
		`SELECT id, location_id, level, message, created_at FROM alerts WHERE id = $1;`,
		id,
	).Scan(&alert.ID, &alert.LocationID, &alert.Level, &alert.Message, &alert.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// ListAlerts returns alerts ordered newest first, with pagination.
func (r *AlertRepository) ListAlerts(ctx context.Context, page, pageSize int) ([]*models.Alert, error) {
	offset := (page - 1) * pageSize

	rows, err := r.db.Query(ctx,
		`SELECT id, location_id, level, message, created_at
		 FROM alerts ORDER BY created_at DESC LIMIT $1 OFFSET $2;`,
		pageSize, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		if err := rows.Scan(&alert.ID, &alert.LocationID, &alert.Level, &alert.Message, &alert.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert rows: %w", err)
	}
	return alerts, nil
}

// AlertCoordinates resolves the coordinates of the location an alert points at.
func (r *AlertRepository) AlertCoordinates(ctx context.Context, id uuid.UUID) (geo.Coordinates, error) {
	var coords geo.Coordinates
	err := r.db.QueryRow(ctx,
		`SELECT l.latitude, l.longitude
		 FROM alerts a
		 JOIN locations l ON l.id = a.location_id
		 WHERE a.id = $1;`,
		id,
	).Scan(&coords.Latitude, &coords.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geo.Coordinates{}, fmt.Errorf("alert with id %s not found", id)
		}
		return geo.Coordinates{}, fmt.Errorf("failed to get alert coordinates: %w", err)
	}
	return coords, nil
}

// GetAlertFromCache tries to read an alert from Redis. A cache miss returns
// (nil, nil).
func (r *AlertRepository) GetAlertFromCache(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	key := fmt.Sprintf("alert:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get alert from cache: %w", err)
	}

	alert := &models.Alert{}
	if err := json.Unmarshal(val, alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert from cache: %w", err)
	}
	return alert, nil
}

// SetAlertCache stores an alert in Redis with a short TTL.
func (r *AlertRepository) SetAlertCache(ctx context.Context, alert *models.Alert) error {
	key := fmt.Sprintf("alert:%s", alert.ID.String())
	val, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, alertCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set alert in cache: %w", err)
	}
	return nil
}
