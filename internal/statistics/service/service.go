// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/innov8x/internal/statistics/model"
	"github.com/festy23/innov8x/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetStatistics returns submission counters for organizers.
	GetStatistics(ctx context.Context) (*model.StatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetStatistics returns submission counters for organizers.
func (s *service) GetStatistics(ctx context.Context) (*model.StatisticsResponse, error) {
	totals, err := s.repo.GetTotals(ctx)
	if err != nil {
		return nil, err
	}

	byRole, err := s.repo.GetMembersByRole(ctx)
	if err != nil {
		return nil, err
	}

	bySize, err := s.repo.GetTeamsBySize(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("GetStatistics completed", "teams", totals.Teams, "members", totals.Members)
	return &model.StatisticsResponse{
		Totals:        *totals,
		MembersByRole: byRole,
		TeamsBySize:   bySize,
	}, nil
}
