// Package repository provides data access layer for registration module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/festy23/innov8x/internal/registration/model"
)

// Repository defines the interface for registration data access operations.
type Repository interface {
	// Create stores a registration together with its members.
	Create(ctx context.Context, reg *model.Registration) error

	// GetByID finds a registration by reference id, members ordered by position.
	GetByID(ctx context.Context, id string) (*model.Registration, error)

	// GetBySubmissionKey finds the registration stored under a submission key.
	GetBySubmissionKey(ctx context.Context, key string) (*model.Registration, error)

	// TeamKeyExists reports whether a team with the normalized name is registered.
	TeamKeyExists(ctx context.Context, teamKey string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new registration repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create stores a registration together with its members.
func (r *repository) Create(ctx context.Context, reg *model.Registration) error {
	err := r.db.WithContext(ctx).Create(reg).Error
	if err != nil {
		if isDuplicateError(err) {
			return model.ErrTeamExists
		}
		return err
	}

	return nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetByID finds a registration by reference id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Registration, error) {
	return r.first(ctx, "id = ?", id)
}

// GetBySubmissionKey finds the registration stored under a submission key.
func (r *repository) GetBySubmissionKey(ctx context.Context, key string) (*model.Registration, error) {
	return r.first(ctx, "submission_key = ?", key)
}

func (r *repository) first(ctx context.Context, query string, arg string) (*model.Registration, error) {
	var reg model.Registration
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where(query, arg).
		First(&reg).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRegistrationNotFound
		}
		return nil, err
	}

	return &reg, nil
}

// TeamKeyExists reports whether a team with the normalized name is registered.
func (r *repository) TeamKeyExists(ctx context.Context, teamKey string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Registration{}).
		Where("team_key = ?", teamKey).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
