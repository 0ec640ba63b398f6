package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"reviewdash/internal/model"
)

// Demo fixtures shown by the calendar and reminders pages before any real
// data exists. Seeding only runs against empty tables.
var demoReviewTypes = []model.ReviewType{
	{Name: "Contract", Color: "#47b4ea"},
	{Name: "Policy", Color: "#4ade80"},
	{Name: "Report", Color: "#facc15"},
	{Name: "Legal", Color: "#f87171"},
}

var demoDocuments = []struct {
	title      string
	dueDate    string
	reviewType string
}{
	{"Q3 Financial Report", "2024-07-10", "Report"},
	{"NDA with Client X", "2024-07-15", "Contract"},
	{"Updated Privacy Policy", "2024-07-15", "Policy"},
	{"Service Agreement Y", "2024-07-22", "Contract"},
	{"Internal Audit Report", "2024-08-05", "Report"},
	{"Patent Application Z", "2024-07-10", "Legal"},
}

var demoReviewers = []string{
	"Alice Wonderland",
	"Bob The Builder",
	"Carol Danvers",
	"David Copperfield",
}

// SeedDemoData populates empty review tables with the demo fixtures.
func SeedDemoData(ctx context.Context, db *gorm.DB) error {
	var typeCount int64
	if err := db.WithContext(ctx).Model(&model.ReviewType{}).Count(&typeCount).Error; err != nil {
		return fmt.Errorf("count review types: %w", err)
	}

	typesByName := make(map[string]model.ReviewType, len(demoReviewTypes))
	if typeCount == 0 {
		for _, rt := range demoReviewTypes {
			created := rt
			if err := db.WithContext(ctx).Create(&created).Error; err != nil {
				return fmt.Errorf("seed review type %s: %w", rt.Name, err)
			}
			typesByName[created.Name] = created
		}
	} else {
		var existing []model.ReviewType
		if err := db.WithContext(ctx).Find(&existing).Error; err != nil {
			return fmt.Errorf("load review types: %w", err)
		}
		for _, rt := range existing {
			typesByName[rt.Name] = rt
		}
	}

	var docCount int64
	if err := db.WithContext(ctx).Model(&model.Document{}).Count(&docCount).Error; err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	if docCount == 0 {
		for _, d := range demoDocuments {
			due, err := time.Parse("2006-01-02", d.dueDate)
			if err != nil {
				return fmt.Errorf("seed document %s: %w", d.title, err)
			}
			doc := model.Document{Title: d.title, DueDate: &due}
			if rt, ok := typesByName[d.reviewType]; ok {
				id := rt.ID
				doc.ReviewTypeID = &id
			}
			if err := db.WithContext(ctx).Create(&doc).Error; err != nil {
				return fmt.Errorf("seed document %s: %w", d.title, err)
			}
		}
	}

	var reviewerCount int64
	if err := db.WithContext(ctx).Model(&model.Reviewer{}).Count(&reviewerCount).Error; err != nil {
		return fmt.Errorf("count reviewers: %w", err)
	}
	if reviewerCount == 0 {
		for _, name := range demoReviewers {
			if err := db.WithContext(ctx).Create(&model.Reviewer{Name: name}).Error; err != nil {
				return fmt.Errorf("seed reviewer %s: %w", name, err)
			}
		}
	}

	return nil
}
