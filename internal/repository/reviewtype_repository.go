package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reviewdash/internal/model"
)

type ReviewTypeRepository struct {
	db *gorm.DB
}

func NewReviewTypeRepository(db *gorm.DB) *ReviewTypeRepository {
	return &ReviewTypeRepository{db: db}
}

// Create adds a new review type to the database
func (r *ReviewTypeRepository) Create(ctx context.Context, reviewType *model.ReviewType) error {
	return r.db.WithContext(ctx).Create(reviewType).Error
}

// GetByID retrieves a review type by its ID
func (r *ReviewTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ReviewType, error) {
	var reviewType model.ReviewType
	result := r.db.WithContext(ctx).First(&reviewType, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrReviewTypeNotFound
		}
		return nil, result.Error
	}
	return &reviewType, nil
}

// List retrieves all review types ordered by name
func (r *ReviewTypeRepository) List(ctx context.Context) ([]model.ReviewType, error) {
	var types []model.ReviewType
	result := r.db.WithContext(ctx).Order("name").Find(&types)
	if result.Error != nil {
		return nil, result.Error
	}
	return types, nil
}
