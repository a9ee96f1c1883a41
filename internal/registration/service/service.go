// Package service provides business logic layer for registration module.
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/innov8x/internal/notify"
	"github.com/festy23/innov8x/internal/registration/model"
	"github.com/festy23/innov8x/internal/registration/repository"
)

// MaxSubmissionKeyLength bounds the client supplied idempotency key.
const MaxSubmissionKeyLength = 64

// Service defines the interface for registration business logic operations.
type Service interface {
	// Submit validates and stores a team registration.
	// Repeating a submit with the same non-empty key returns the stored result.
	Submit(ctx context.Context, submissionKey string, form model.TeamForm) (*model.SubmissionResult, error)

	// Get returns an accepted registration by reference id.
	Get(ctx context.Context, id string) (*model.RegistrationResponse, error)
}

type service struct {
	repo     repository.Repository
	db       *gorm.DB
	notifier notify.Notifier
	logger   *zap.SugaredLogger
}

// New creates a new registration service instance.
func New(repo repository.Repository, db *gorm.DB, notifier notify.Notifier, logger *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		db:       db,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit validates and stores a team registration in a transaction.
func (s *service) Submit(ctx context.Context, submissionKey string, form model.TeamForm) (*model.SubmissionResult, error) {
	submissionKey = strings.TrimSpace(submissionKey)
	if len(submissionKey) > MaxSubmissionKeyLength {
		return nil, model.ErrInvalidSubmissionKey
	}

	if submissionKey != "" {
		if result, err := s.findDuplicate(ctx, submissionKey); result != nil || err != nil {
			return result, err
		}
	}

	if err := model.Validate(form); err != nil {
		return nil, err
	}

	reg := buildRegistration(submissionKey, form)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		exists, err := txRepo.TeamKeyExists(ctx, reg.TeamKey)
		if err != nil {
			return err
		}
		if exists {
			return model.ErrTeamExists
		}

		return txRepo.Create(ctx, reg)
	})
	if err != nil {
		// A concurrent submit with the same key wins the unique index; report its result.
		if errors.Is(err, model.ErrTeamExists) && submissionKey != "" {
			if result, lookupErr := s.findDuplicate(ctx, submissionKey); result != nil {
				return result, nil
			} else if lookupErr != nil {
				s.logger.Warnw("failed to resolve submission key after conflict", "error", lookupErr)
			}
		}
		return nil, err
	}

	s.logger.Infow("team registered",
		"reference_id", reg.ID,
		"team_name", reg.TeamName,
		"team_size", reg.TeamSize,
		"members", len(reg.Members),
	)

	if err := s.notifier.Notify(ctx, registrationEvent(reg)); err != nil {
		s.logger.Errorw("failed to notify organizers", "reference_id", reg.ID, "error", err)
	}

	return &model.SubmissionResult{Accepted: true, ReferenceID: reg.ID}, nil
}

func (s *service) findDuplicate(ctx context.Context, submissionKey string) (*model.SubmissionResult, error) {
	existing, err := s.repo.GetBySubmissionKey(ctx, submissionKey)
	if err != nil {
		if errors.Is(err, model.ErrRegistrationNotFound) {
			return nil, nil
		}
		return nil, err
	}

	s.logger.Infow("duplicate registration submit", "reference_id", existing.ID)
	return &model.SubmissionResult{Accepted: true, ReferenceID: existing.ID, Duplicate: true}, nil
}

// Get returns an accepted registration by reference id.
func (s *service) Get(ctx context.Context, id string) (*model.RegistrationResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, model.ErrRegistrationNotFound
	}

	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return model.NewRegistrationResponse(reg), nil
}

func buildRegistration(submissionKey string, form model.TeamForm) *model.Registration {
	now := time.Now().UTC()
	reg := &model.Registration{
		ID:         uuid.NewString(),
		TeamName:   strings.TrimSpace(form.TeamName),
		TeamKey:    model.TeamKey(form.TeamName),
		TeamSize:   int(form.TeamSize),
		AgreeTerms: form.AgreeTerms,
		CreatedAt:  now,
		UpdatedAt:  now,
		Members:    make([]model.Member, 0, len(form.Members)),
	}
	if submissionKey != "" {
		reg.SubmissionKey = &submissionKey
	}

	for i, m := range form.Members {
		reg.Members = append(reg.Members, model.Member{
			ID:             uuid.NewString(),
			RegistrationID: reg.ID,
			Position:       i + 1,
			FirstName:      strings.TrimSpace(m.FirstName),
			LastName:       strings.TrimSpace(m.LastName),
			Email:          model.NormalizeEmail(m.Email),
			Role:           string(m.Role),
			CreatedAt:      now,
		})
	}

	return reg
}

func registrationEvent(reg *model.Registration) notify.Event {
	fields := []notify.Field{
		{Name: "Team", Value: reg.TeamName},
		{Name: "Team size", Value: strconv.Itoa(reg.TeamSize)},
	}
	for _, m := range reg.Members {
		fields = append(fields, notify.Field{
			Name:  "Member " + strconv.Itoa(m.Position),
			Value: m.FirstName + " " + m.LastName + " <" + m.Email + "> " + m.Role,
		})
	}

	return notify.Event{
		Kind:        notify.KindTeamRegistration,
		ReferenceID: reg.ID,
		Title:       "New team registration",
		Fields:      fields,
	}
}
