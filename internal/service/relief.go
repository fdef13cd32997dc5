package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sentinel-dakar/flood_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// DamageRepository is the persistence contract for damage declarations.
type DamageRepository interface {
	CreateDamage(ctx context.Context, damage *models.DamageDeclaration) error
	ListDamage(ctx context.Context, limit int) ([]*models.DamageDeclaration, error)
	ListDamageByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.DamageDeclaration, error)
}

// AssistanceRepository is the persistence contract for assistance requests.
type AssistanceRepository interface {
	CreateAssistance(ctx context.Context, request *models.AssistanceRequest) error
	ListAssistance(ctx context.Context, limit int) ([]*models.AssistanceRequest, error)
	ListAssistanceByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.AssistanceRequest, error)
}

// ReliefService handles damage declarations and assistance requests.
type ReliefService interface {
	SubmitDamage(ctx context.Context, damage *models.DamageDeclaration) error
	ListDamage(ctx context.Context) ([]*models.DamageDeclaration, error)
	ListMyDamage(ctx context.Context, userID uuid.UUID) ([]*models.DamageDeclaration, error)
	SubmitAssistance(ctx context.Context, request *models.AssistanceRequest) error
	ListAssistance(ctx context.Context) ([]*models.AssistanceRequest, error)
	ListMyAssistance(ctx context.Context, userID uuid.UUID) ([]*models.AssistanceRequest, error)
}

type reliefService struct {
	damage     DamageRepository
	assistance AssistanceRepository
	logger     *logrus.Logger
}

func NewReliefService(damage DamageRepository, assistance AssistanceRepository, logger *logrus.Logger) ReliefService {
	return &reliefService{
		damage:     damage,
		assistance: assistance,
		logger:     logger,
	}
}

// SubmitDamage persists a damage declaration with its attached pieces.
func (s *reliefService) SubmitDamage(ctx context.Context, damage *models.DamageDeclaration) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "relief",
		"method":  "SubmitDamage",
	})

	if err := s.damage.CreateDamage(ctx, damage); err != nil {
		log.WithError(err).Error("Failed to create damage declaration in repository")
		return fmt.Errorf("service: could not create damage declaration: %w", err)
	}

	log.WithField("damage_id", damage.ID).Info("Damage declaration created")
	return nil
}

// ListDamage returns the most recent damage declarations for staff review.
func (s *reliefService) ListDamage(ctx context.Context) ([]*models.DamageDeclaration, error) {
	declarations, err := s.damage.ListDamage(ctx, maxListReports)
	if err != nil {
		return nil, fmt.Errorf("service: could not list damage declarations: %w", err)
	}
	return declarations, nil
}

// ListMyDamage returns one user's damage declarations.
func (s *reliefService) ListMyDamage(ctx context.Context, userID uuid.UUID) ([]*models.DamageDeclaration, error) {
	declarations, err := s.damage.ListDamageByUser(ctx, userID, maxListMyReports)
	if err != nil {
		return nil, fmt.Errorf("service: could not list user damage declarations: %w", err)
	}
	return declarations, nil
}

// SubmitAssistance persists an assistance request.
func (s *reliefService) SubmitAssistance(ctx context.Context, request *models.AssistanceRequest) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "relief",
		"method":  "SubmitAssistance",
	})

	if err := s.assistance.CreateAssistance(ctx, request); err != nil {
		log.WithError(err).Error("Failed to create assistance request in repository")
		return fmt.Errorf("service: could not create assistance request: %w", err)
	}

	log.WithField("assistance_id", request.ID).Info("Assistance request created")
	return nil
}

// ListAssistance returns the most recent assistance requests for staff review.
func (s *reliefService) ListAssistance(ctx context.Context) ([]*models.AssistanceRequest, error) {
	requests, err := s.assistance.ListAssistance(ctx, maxListReports)
	if err != nil {
		return nil, fmt.Errorf("service: could not list assistance requests: %w", err)
	}
	return requests, nil
}

// ListMyAssistance returns one user's assistance requests.
func (s *reliefService) ListMyAssistance(ctx context.Context, userID uuid.UUID) ([]*models.AssistanceRequest, error) {
	requests, err := s.assistance.ListAssistanceByUser(ctx, userID, maxListMyReports)
	if err != nil {
		return nil, fmt.Errorf("service: could not list user assistance requests: %w", err)
	}
	return requests, nil
}
