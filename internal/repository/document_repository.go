package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reviewdash/internal/model"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create adds a new document to the database
func (r *DocumentRepository) Create(ctx context.Context, document *model.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

// GetByID retrieves a document by its ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var document model.Document
	result := r.db.WithContext(ctx).Preload("ReviewType").First(&document, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, result.Error
	}
	return &document, nil
}

// FindByTitle retrieves a document by its exact title, nil when absent
func (r *DocumentRepository) FindByTitle(ctx context.Context, title string) (*model.Document, error) {
	var document model.Document
	result := r.db.WithContext(ctx).First(&document, "title = ?", title)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &document, nil
}

// FindOrCreateByTitle returns the document with the given title, creating the
// row with the supplied due date when it does not exist yet
func (r *DocumentRepository) FindOrCreateByTitle(ctx context.Context, title string, dueDate *time.Time) (*model.Document, error) {
	existing, err := r.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	document := &model.Document{ID: uuid.New(), Title: title, DueDate: dueDate}
	if err := r.db.WithContext(ctx).Create(document).Error; err != nil {
		return nil, err
	}
	return document, nil
}

// List retrieves all documents with their review types, ordered by due date
func (r *DocumentRepository) List(ctx context.Context) ([]model.Document, error) {
	var documents []model.Document
	result := r.db.WithContext(ctx).Preload("ReviewType").Order("due_date").Find(&documents)
	if result.Error != nil {
		return nil, result.Error
	}
	return documents, nil
}

// ListDueBetween retrieves documents whose due date falls inside [from, to)
func (r *DocumentRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]model.Document, error) {
	var documents []model.Document
	result := r.db.WithContext(ctx).
		Preload("ReviewType").
		Where("due_date >= ? AND due_date < ?", from, to).
		Order("due_date").
		Find(&documents)
	if result.Error != nil {
		return nil, result.Error
	}
	return documents, nil
}
