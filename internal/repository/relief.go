package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
)

type DamageRepository struct {
	db *pgxpool.Pool
}

func NewDamageRepository(db *pgxpool.Pool) service.DamageRepository {
	return &DamageRepository{db: db}
}

// CreateDamage persists a damage declaration and its attached pieces in one
// transaction.
func (r *DamageRepository) CreateDamage(ctx context.Context, damage *models.DamageDeclaration) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin damage transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO damage_declarations (created_by, property_type, loss_amount_text, loss_description, people_affected, remarks)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
		damage.CreatedBy, damage.PropertyType, damage.LossAmountText,
		damage.LossDescription, damage.PeopleAffected, damage.Remarks,
	).Scan(&damage.ID, &damage.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create damage declaration: %w", err)
	}

	for _, piece := range damage.Pieces {
		piece.DamageID = damage.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO damage_pieces (damage_id, file_path)
			 VALUES ($1, $2) RETURNING id, uploaded_at;`,
			piece.DamageID, piece.FilePath,
		).Scan(&piece.ID, &piece.UploadedAt)
		if err != nil {
			return fmt.Errorf("failed to attach damage piece: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit damage transaction: %w", err)
	}
	return nil
}

const damageColumns = `id, created_by, property_type, loss_amount_text, loss_description, people_affected, remarks, created_at`

// ListDamage returns the most recent damage declarations.
func (r *DamageRepository) ListDamage(ctx context.Context, limit int) ([]*models.DamageDeclaration, error) {
	query := fmt.Sprintf(`SELECT %s FROM damage_declarations ORDER BY created_at DESC LIMIT $1;`, damageColumns)
	return r.queryDamage(ctx, query, limit)
}

// ListDamageByUser returns one user's damage declarations, newest first.
func (r *DamageRepository) ListDamageByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.DamageDeclaration, error) {
	query := fmt.Sprintf(`SELECT %s FROM damage_declarations WHERE created_by = $1 ORDER BY created_at DESC LIMIT $2;`, damageColumns)
	return r.queryDamage(ctx, query, userID, limit)
}

func (r *DamageRepository) queryDamage(ctx context.Context, query string, args ...any) ([]*models.DamageDeclaration, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list damage declarations: %w", err)
	}
	defer rows.Close()

	declarations := make([]*models.DamageDeclaration, 0)
	for rows.Next() {
		damage := &models.DamageDeclaration{}
		err := rows.Scan(
			&damage.ID,
			&damage.CreatedBy,
			&damage.PropertyType,
			&damage.LossAmountText,
			&damage.LossDescription,
			&damage.PeopleAffected,
			&damage.Remarks,
			&damage.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan damage declaration row: %w", err)
		}
		declarations = append(declarations, damage)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating damage declaration rows: %w", err)
	}
	return declarations, nil
}

type AssistanceRepository struct {
	db *pgxpool.Pool
}

func NewAssistanceRepository(db *pgxpool.Pool) service.AssistanceRepository {
	return &AssistanceRepository{db: db}
}

// CreateAssistance persists an assistance request.
func (r *AssistanceRepository) CreateAssistance(ctx context.Context, request *models.AssistanceRequest) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO assistance_requests (created_by, location_text, help_type, people_count, phone, availability, urgency_note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;`,
		request.CreatedBy, request.LocationText, request.HelpType,
		request.PeopleCount, request.Phone, request.Availability, request.UrgencyNote,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create assistance request: %w", err)
	}
	return nil
}

const assistanceColumns = `id, created_by, location_text, help_type, people_count, phone, availability, urgency_note, created_at`

// ListAssistance returns the most recent assistance requests.
func (r *AssistanceRepository) ListAssistance(ctx context.Context, limit int) ([]*models.AssistanceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM assistance_requests ORDER BY created_at DESC LIMIT $1;`, assistanceColumns)
	return r.queryAssistance(ctx, query, limit)
}

// ListAssistanceByUser returns one user's assistance requests, newest first.
func (r *AssistanceRepository) ListAssistanceByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.AssistanceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM assistance_requests WHERE created_by = $1 ORDER BY created_at DESC LIMIT $2;`, assistanceColumns)
	return r.queryAssistance(ctx, query, userID, limit)
}

func (r *AssistanceRepository) queryAssistance(ctx context.Context, query string, args ...any) ([]*models.AssistanceRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assistance requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.AssistanceRequest, 0)
	for rows.Next() {
		request := &models.AssistanceRequest{}
		err := rows.Scan(
			&request.ID,
			&request.CreatedBy,
			&request.LocationText,
			&request.HelpType,
			&request.PeopleCount,
			&request.Phone,
			&request.Availability,
			&request.UrgencyNote,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assistance request row: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assistance request rows: %w", err)
	}
	return requests, nil
}
