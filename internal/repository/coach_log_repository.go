package repository

import (
	"context"

	"github.com/sleepwise/coach-api/internal/domain"
	"gorm.io/gorm"
)

type CoachLogRepository interface {
	Create(ctx context.Context, log *domain.CoachLog) error
}

type coachLogRepository struct {
	db *gorm.DB
}

func NewCoachLogRepository(db *gorm.DB) CoachLogRepository {
	return &coachLogRepository{db: db}
}

func (r *coachLogRepository) Create(ctx context.Context, log *domain.CoachLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
