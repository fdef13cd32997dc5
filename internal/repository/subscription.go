package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
)

type SubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) service.SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

const subscriptionColumns = `id, user_id, endpoint, p256dh, auth, latitude, longitude, locality, created_at, updated_at`

// Upsert creates a subscription or, when the endpoint already exists, updates
// its keys and owner in place. The endpoint is the identity of a subscription.
func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *models.PushSubscription) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO push_subscriptions (user_id, endpoint, p256dh, auth)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (endpoint) DO UPDATE SET
			p256dh = EXCLUDED.p256dh,
			auth = EXCLUDED.auth,
			user_id = COALESCE(EXCLUDED.user_id, push_subscriptions.user_id),
			updated_at = NOW()
		 RETURNING id, created_at, updated_at;`,
		sub.UserID, sub.Endpoint, sub.P256dh, sub.Auth,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert push subscription: %w", err)
	}
	return nil
}

// UpdatePresence refreshes the last-known coordinates of every subscription
// matching the endpoint, or the user when one is given. With a user match
// this can touch several rows; a subscriber with multiple devices gets all of
// them updated.
func (r *SubscriptionRepository) UpdatePresence(ctx context.Context, endpoint string, userID *uuid.UUID, lat, lng float64, locality string) (int64, error) {
	query := `
		UPDATE push_subscriptions SET
			latitude = $1,
			longitude = $2,
			locality = $3,
			updated_at = NOW()
		WHERE endpoint = $4`
	args := []any{lat, lng, locality, endpoint}
	if userID != nil {
		query += ` OR user_id = $5`
		args = append(args, *userID)
	}
	query += `;`

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update subscriber presence: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// ListAll returns every subscription.
func (r *SubscriptionRepository) ListAll(ctx context.Context) ([]*models.PushSubscription, error) {
	query := fmt.Sprintf(`SELECT %s FROM push_subscriptions ORDER BY id;`, subscriptionColumns)
	return r.querySubscriptions(ctx, query)
}

// ListLocated returns subscriptions with known coordinates, the candidate set
// for geo-targeted fan-outs.
func (r *SubscriptionRepository) ListLocated(ctx context.Context) ([]*models.PushSubscription, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM push_subscriptions WHERE latitude IS NOT NULL AND longitude IS NOT NULL ORDER BY id;`,
		subscriptionColumns,
	)
	return r.querySubscriptions(ctx, query)
}

func (r *SubscriptionRepository) querySubscriptions(ctx context.Context, query string, args ...any) ([]*models.PushSubscription, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list push subscriptions: %w", err)
	}
	defer rows.Close()

	subs := make([]*models.PushSubscription, 0)
	for rows.Next() {
		sub := &models.PushSubscription{}
		err := rows.Scan(
			&sub.ID,
			&sub.UserID,
			&sub.Endpoint,
			&sub.P256dh,
			&sub.Auth,
			&sub.Latitude,
			&sub.Longitude,
			&sub.Locality,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan push subscription row: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating push subscription rows: %w", err)
	}
	return subs, nil
}

// Delete removes a subscription permanently. Used when the push service
// reports the client registration gone.
func (r *SubscriptionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM push_subscriptions WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete push subscription: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("push subscription with id %d not found for delete", id)
	}
	return nil
}

// CountAll returns the total number of subscriptions.
func (r *SubscriptionRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM push_subscriptions;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count push subscriptions: %w", err)
	}
	return count, nil
}
