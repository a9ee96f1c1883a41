// Package repository provides data access layer for sponsorship module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/festy23/innov8x/internal/sponsorship/model"
)

// Repository defines the interface for sponsorship inquiry data access.
type Repository interface {
	// Create stores an inquiry.
	Create(ctx context.Context, inquiry *model.Inquiry) error

	// GetByID finds an inquiry by reference id.
	GetByID(ctx context.Context, id string) (*model.Inquiry, error)

	// GetBySubmissionKey finds the inquiry stored under a submission key.
	GetBySubmissionKey(ctx context.Context, key string) (*model.Inquiry, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new sponsorship repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create stores an inquiry.
func (r *repository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	if err := r.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(err.Error(), "duplicate key") ||
			strings.Contains(err.Error(), "UNIQUE constraint") {
			return model.ErrDuplicateInquiry
		}
		return err
	}
	return nil
}

// GetByID finds an inquiry by reference id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Inquiry, error) {
	return r.first(ctx, "id = ?", id)
}

// GetBySubmissionKey finds the inquiry stored under a submission key.
func (r *repository) GetBySubmissionKey(ctx context.Context, key string) (*model.Inquiry, error) {
	return r.first(ctx, "submission_key = ?", key)
}

func (r *repository) first(ctx context.Context, query string, arg string) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	err := r.db.WithContext(ctx).Where(query, arg).First(&inquiry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrInquiryNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}
