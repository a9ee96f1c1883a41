// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/innov8x/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetTotals returns the number of teams, members and sponsor inquiries.
	GetTotals(ctx context.Context) (*model.Totals, error)

	// GetMembersByRole returns member counts grouped by role.
	GetMembersByRole(ctx context.Context) ([]model.RoleCount, error)

	// GetTeamsBySize returns team counts grouped by declared size.
	GetTeamsBySize(ctx context.Context) ([]model.SizeCount, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetTotals returns the number of teams, members and sponsor inquiries.
func (r *repository) GetTotals(ctx context.Context) (*model.Totals, error) {
	var result struct {
		Teams            int64 `gorm:"column:teams"`
		Members          int64 `gorm:"column:members"`
		SponsorInquiries int64 `gorm:"column:sponsor_inquiries"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT
				(SELECT COUNT(*) FROM team_registrations) AS teams,
				(SELECT COUNT(*) FROM team_members) AS members,
				(SELECT COUNT(*) FROM sponsor_inquiries) AS sponsor_inquiries
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetTotals database error", "error", err)
		return nil, err
	}

	return &model.Totals{
		Teams:            int(result.Teams),
		Members:          int(result.Members),
		SponsorInquiries: int(result.SponsorInquiries),
	}, nil
}

// GetMembersByRole returns member counts grouped by role.
func (r *repository) GetMembersByRole(ctx context.Context) ([]model.RoleCount, error) {
	var counts []model.RoleCount

	err := r.db.WithContext(ctx).
		Table("team_members").
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("count DESC, role ASC").
		Scan(&counts).Error

	if err != nil {
		r.logger.Errorw("GetMembersByRole database error", "error", err)
		return nil, err
	}

	if counts == nil {
		counts = []model.RoleCount{}
	}
	return counts, nil
}

// GetTeamsBySize returns team counts grouped by declared size.
func (r *repository) GetTeamsBySize(ctx context.Context) ([]model.SizeCount, error) {
	var counts []model.SizeCount

	err := r.db.WithContext(ctx).
		Table("team_registrations").
		Select("team_size, COUNT(*) AS count").
		Group("team_size").
		Order("team_size ASC").
		Scan(&counts).Error

	if err != nil {
		r.logger.Errorw("GetTeamsBySize database error", "error", err)
		return nil, err
	}

	if counts == nil {
		counts = []model.SizeCount{}
	}
	return counts, nil
}
