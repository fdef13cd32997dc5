package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sentinel-dakar/flood_reporting_system/internal/geo"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// CreateReportGraph persists the location, the derived alert, the report and
// its photos in a single transaction. A failure at any step rolls back every
// prior write; ingestion is all-or-nothing.
func (r *ReportRepository) CreateReportGraph(ctx context.Context, loc *models.Location, alert *models.Alert, report *models.Report) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin report transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO locations (name, latitude, longitude)
		 VALUES ($1, $2, $3) RETURNING id, created_at;`,
		loc.Name, loc.Latitude, loc.Longitude,
	).Scan(&loc.ID, &loc.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}

	alert.LocationID = loc.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO alerts (location_id, level, message)
		 VALUES ($1, $2, $3) RETURNING id, created_at;`,
		alert.LocationID, alert.Level, alert.Message,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	report.LocationID = loc.ID
	report.AlertID = &alert.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO reports (location_id, alert_id, created_by, status, incident_type, location_text, severity, description, first_name, last_name, phone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at;`,
		report.LocationID, report.AlertID, report.CreatedBy, report.Status,
		report.IncidentType, report.LocationText, report.Severity,
		report.Description, report.FirstName, report.LastName, report.Phone,
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	for _, photo := range report.Photos {
		photo.ReportID = report.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO report_photos (report_id, file_path)
			 VALUES ($1, $2) RETURNING id, uploaded_at;`,
			photo.ReportID, photo.FilePath,
		).Scan(&photo.ID, &photo.UploadedAt)
		if err != nil {
			return fmt.Errorf("failed to attach report photo: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit report transaction: %w", err)
	}
	return nil
}

const reportColumns = `id, location_id, alert_id, created_by, status, incident_type, location_text, severity, description, first_name, last_name, phone, created_at`

func scanReport(row pgx.Row) (*models.Report, error) {
	report := &models.Report{}
	err := row.Scan(
		&report.ID,
		&report.LocationID,
		&report.AlertID,
		&report.CreatedBy,
		&report.Status,
		&report.IncidentType,
		&report.LocationText,
		&report.Severity,
		&report.Description,
		&report.FirstName,
		&report.LastName,
		&report.Phone,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// GetReport returns a report by its UUID.
func (r *ReportRepository) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	query := fmt.Sprintf(`SELECT %s FROM reports WHERE id = $1;`, reportColumns)
	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// ListReports returns the most recent reports, optionally filtered by alert.
func (r *ReportRepository) ListReports(ctx context.Context, alertID *uuid.UUID, limit int) ([]*models.Report, error) {
	query := fmt.Sprintf(`SELECT %s FROM reports`, reportColumns)
	args := []any{}
	if alertID != nil {
		query += ` WHERE alert_id = $1`
		args = append(args, *alertID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit)

	return r.queryReports(ctx, query, args...)
}

// ListReportsByUser returns the most recent reports created by one user.
func (r *ReportRepository) ListReportsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Report, error) {
	query := fmt.Sprintf(`SELECT %s FROM reports WHERE created_by = $1 ORDER BY created_at DESC LIMIT $2;`, reportColumns)
	return r.queryReports(ctx, query, userID, limit)
}

func (r *ReportRepository) queryReports(ctx context.Context, query string, args ...any) ([]*models.Report, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	if err := r.attachPhotos(ctx, reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// attachPhotos loads the photo children for the given reports.
func (r *ReportRepository) attachPhotos(ctx context.Context, reports []*models.Report) error {
	if len(reports) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(reports))
	byID := make(map[uuid.UUID]*models.Report, len(reports))
	for i, report := range reports {
		ids[i] = report.ID
		byID[report.ID] = report
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, report_id, file_path, uploaded_at FROM report_photos WHERE report_id = ANY($1) ORDER BY uploaded_at;`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("failed to load report photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		photo := &models.ReportPhoto{}
		if err := rows.Scan(&photo.ID, &photo.ReportID, &photo.FilePath, &photo.UploadedAt); err != nil {
			return fmt.Errorf("failed to scan report photo row: %w", err)
		}
		if report, ok := byID[photo.ReportID]; ok {
			report.Photos = append(report.Photos, photo)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating report photo rows: %w", err)
	}
	return nil
}

// UpdateReportStatus transitions a report to a new review status.
func (r *ReportRepository) UpdateReportStatus(ctx context.Context, id uuid.UUID, status models.ReportStatus) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE reports SET status = $1 WHERE id = $2;`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s not found for status update", id)
	}
	return nil
}

// ReportCoordinates resolves the coordinates of the location a report points at.
func (r *ReportRepository) ReportCoordinates(ctx context.Context, id uuid.UUID) (geo.Coordinates, error) {
	var coords geo.Coordinates
	err := r.db.QueryRow(ctx,
		`SELECT l.latitude, l.longitude
		 FROM reports s
		 JOIN locations l ON l.id = s.location_id
		 WHERE s.id = $1;`,
		id,
	).Scan(&coords.Latitude, &coords.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return geo.Coordinates{}, fmt.Errorf("report with id %s not found", id)
		}
		return geo.Coordinates{}, fmt.Errorf("failed to get report coordinates: %w", err)
	}
	return coords, nil
}

// CountReportsByStatus returns how many reports sit in each review status.
func (r *ReportRepository) CountReportsByStatus(ctx context.Context) (map[models.ReportStatus]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM reports GROUP BY status;`)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ReportStatus]int)
	for rows.Next() {
		var status models.ReportStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan report count row: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report count rows: %w", err)
	}
	return counts, nil
}
