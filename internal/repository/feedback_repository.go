package repository

import (
	"context"

	"github.com/sleepwise/coach-api/internal/domain"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.TipFeedback) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.TipFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}
