package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sentinel-dakar/flood_reporting_system/internal/service"
)

type SensorRepository struct {
	db *pgxpool.Pool
}

func NewSensorRepository(db *pgxpool.Pool) service.SensorRepository {
	return &SensorRepository{db: db}
}

// CreateSensor registers a new field station.
func (r *SensorRepository) CreateSensor(ctx context.Context, sensor *models.Sensor) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO sensors (code, location_id, sensor_type)
		 VALUES ($1, $2, $3) RETURNING id, created_at;`,
		sensor.Code, sensor.LocationID, sensor.SensorType,
	).Scan(&sensor.ID, &sensor.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sensor: %w", err)
	}
	return nil
}

// GetSensor returns a sensor by UUID.
func (r *SensorRepository) GetSensor(ctx context.Context, id uuid.UUID) (*models.Sensor, error) {
	sensor := &models.Sensor{}
	err := r.db.QueryRow(ctx,
		`SELECT id, code, location_id, sensor_type, created_at FROM sensors WHERE id = $1;`,
		id,
	).Scan(&sensor.ID, &sensor.Code, &sensor.LocationID, &sensor.SensorType, &sensor.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sensor with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get sensor by id: %w", err)
	}
	return sensor, nil
}

// ListSensors returns every registered sensor.
func (r *SensorRepository) ListSensors(ctx context.Context) ([]*models.Sensor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, code, location_id, sensor_type, created_at FROM sensors ORDER BY code;`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sensors: %w", err)
	}
	defer rows.Close()

	sensors := make([]*models.Sensor, 0)
	for rows.Next() {
		sensor := &models.Sensor{}
		if err := rows.Scan(&sensor.ID, &sensor.Code, &sensor.LocationID, &sensor.SensorType, &sensor.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sensor row: %w", err)
		}
		sensors = append(sensors, sensor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sensor rows: %w", err)
	}
	return sensors, nil
}

// CreateMeasurement records a reading.
func (r *SensorRepository) CreateMeasurement(ctx context.Context, m *models.Measurement) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO measurements (sensor_id, value, unit)
		 VALUES ($1, $2, $3) RETURNING id, recorded_at;`,
		m.SensorID, m.Value, m.Unit,
	).Scan(&m.ID, &m.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to create measurement: %w", err)
	}
	return nil
}

// ListMeasurements returns the most recent readings of one sensor.
func (r *SensorRepository) ListMeasurements(ctx context.Context, sensorID uuid.UUID, limit int) ([]*models.Measurement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sensor_id, value, unit, recorded_at
		 FROM measurements WHERE sensor_id = $1 ORDER BY recorded_at DESC LIMIT $2;`,
		sensorID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list measurements: %w", err)
	}
	defer rows.Close()

	measurements := make([]*models.Measurement, 0)
	for rows.Next() {
		m := &models.Measurement{}
		if err := rows.Scan(&m.ID, &m.SensorID, &m.Value, &m.Unit, &m.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan measurement row: %w", err)
		}
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating measurement rows: %w", err)
	}
	return measurements, nil
}
