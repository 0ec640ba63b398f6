package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reviewdash/internal/model"
)

type ReviewerRepository struct {
	db *gorm.DB
}

func NewReviewerRepository(db *gorm.DB) *ReviewerRepository {
	return &ReviewerRepository{db: db}
}

// Create adds a new reviewer to the database
func (r *ReviewerRepository) Create(ctx context.Context, reviewer *model.Reviewer) error {
	return r.db.WithContext(ctx).Create(reviewer).Error
}

// GetByID retrieves a reviewer by their ID
func (r *ReviewerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Reviewer, error) {
	var reviewer model.Reviewer
	result := r.db.WithContext(ctx).First(&reviewer, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrReviewerNotFound
		}
		return nil, result.Error
	}
	return &reviewer, nil
}

// FindByName retrieves a reviewer by their exact name, nil when absent
func (r *ReviewerRepository) FindByName(ctx context.Context, name string) (*model.Reviewer, error) {
	var reviewer model.Reviewer
	result := r.db.WithContext(ctx).First(&reviewer, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &reviewer, nil
}

// FindOrCreateByName returns the reviewer with the given name, creating the
// row when it does not exist yet
func (r *ReviewerRepository) FindOrCreateByName(ctx context.Context, name string) (*model.Reviewer, error) {
	existing, err := r.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	reviewer := &model.Reviewer{ID: uuid.New(), Name: name}
	if err := r.db.WithContext(ctx).Create(reviewer).Error; err != nil {
		return nil, err
	}
	return reviewer, nil
}

// List retrieves all reviewers ordered by name
func (r *ReviewerRepository) List(ctx context.Context) ([]model.Reviewer, error) {
	var reviewers []model.Reviewer
	result := r.db.WithContext(ctx).Order("name").Find(&reviewers)
	if result.Error != nil {
		return nil, result.Error
	}
	return reviewers, nil
}
