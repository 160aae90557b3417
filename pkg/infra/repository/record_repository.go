package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VigilAI/VigilGate/pkg/domain/record"
)

type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) record.Repository {
	return &RecordRepository{
		db: db,
	}
}

func (r *RecordRepository) Save(ctx context.Context, rec *record.AnalysisRecord) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("analysis record: %w", err)
	}
	return nil
}

func (r *RecordRepository) Get(ctx context.Context, id uuid.UUID) (*record.AnalysisRecord, error) {
	var entity record.AnalysisRecord
	result := r.db.WithContext(ctx).First(&entity, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, record.NewNotFoundError(id)
		}
		return nil, fmt.Errorf("analysis record: %w", result.Error)
	}
	return &entity, nil
}

func (r *RecordRepository) List(ctx context.Context) ([]record.AnalysisRecord, error) {
	var entities []record.AnalysisRecord
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&entities)
	if result.Error != nil {
		return nil, fmt.Errorf("analysis records: %w", result.Error)
	}
	return entities, nil
}
