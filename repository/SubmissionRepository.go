package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"valuation/models"
	"valuation/utils"
)

// SubmissionSink receives completed valuation records.
type SubmissionSink interface {
	Submit(ctx context.Context, sub models.Submission) (string, error)
}

// GormSubmissionRepository stores submissions in the valuation_submissions table.
type GormSubmissionRepository struct {
	db *gorm.DB
}

func NewGormSubmissionRepository(db *gorm.DB) *GormSubmissionRepository {
	return &GormSubmissionRepository{db: db}
}

func (r *GormSubmissionRepository) Submit(ctx context.Context, sub models.Submission) (string, error) {
	record, err := json.Marshal(sub.Record)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	row := models.ValuationSubmissionGorm{
		ID:           uuid.NewString(),
		SessionID:    sub.SessionID,
		PropertyType: string(sub.PropertyType),
		State:        sub.State,
		District:     sub.District,
		Mandal:       sub.Mandal,
		Village:      sub.Village,
		Record:       datatypes.JSON(record),
		SubmittedAt:  sub.SubmittedAt,
	}

	ctx, cancel := utils.GetQueryContext(ctx, utils.WriteTimeout)
	defer cancel()
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("insert submission: %w", err)
	}
	return row.ID, nil
}

// LogSink accepts every submission and only logs it. It stands in when no database is configured.
type LogSink struct {
	Logger *zap.Logger
}

func (s LogSink) Submit(_ context.Context, sub models.Submission) (string, error) {
	id := uuid.NewString()
	s.Logger.Info("valuation submitted",
		zap.String("submission_id", id),
		zap.String("session_id", sub.SessionID),
		zap.String("property_type", string(sub.PropertyType)),
		zap.String("village", sub.Village),
		zap.Int("sections", len(sub.Record)),
	)
	return id, nil
}
