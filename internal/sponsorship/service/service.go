// Package service provides business logic layer for sponsorship module.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/innov8x/internal/notify"
	"github.com/festy23/innov8x/internal/sponsorship/model"
	"github.com/festy23/innov8x/internal/sponsorship/repository"
)

// MaxSubmissionKeyLength bounds the client supplied idempotency key.
const MaxSubmissionKeyLength = 64

// Service defines the interface for sponsorship business logic operations.
type Service interface {
	// Submit validates and stores an inquiry.
	// Repeating a submit with the same non-empty key returns the stored result.
	Submit(ctx context.Context, submissionKey string, form model.InquiryForm) (*model.SubmissionResult, error)

	// Get returns a stored inquiry by reference id.
	Get(ctx context.Context, id string) (*model.InquiryResponse, error)
}

type service struct {
	repo     repository.Repository
	notifier notify.Notifier
	logger   *zap.SugaredLogger
}

// New creates a new sponsorship service instance.
func New(repo repository.Repository, notifier notify.Notifier, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, notifier: notifier, logger: logger}
}

// Submit validates and stores an inquiry.
func (s *service) Submit(ctx context.Context, submissionKey string, form model.InquiryForm) (*model.SubmissionResult, error) {
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

	now := time.Now().UTC()
	inquiry := &model.Inquiry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.ToLower(strings.TrimSpace(form.Email)),
		Company:   strings.TrimSpace(form.Company),
		Message:   strings.TrimSpace(form.Message),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if submissionKey != "" {
		inquiry.SubmissionKey = &submissionKey
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		if errors.Is(err, model.ErrDuplicateInquiry) && submissionKey != "" {
			if result, lookupErr := s.findDuplicate(ctx, submissionKey); result != nil {
				return result, nil
			} else if lookupErr != nil {
				return nil, lookupErr
			}
		}
		return nil, err
	}

	s.logger.Infow("sponsor inquiry stored", "reference_id", inquiry.ID, "company", inquiry.Company)

	event := notify.Event{
		Kind:        notify.KindSponsorInquiry,
		ReferenceID: inquiry.ID,
		Title:       "New sponsorship inquiry",
		Fields: []notify.Field{
			{Name: "Name", Value: inquiry.Name},
			{Name: "Email", Value: inquiry.Email},
			{Name: "Company", Value: inquiry.Company},
			{Name: "Message", Value: inquiry.Message},
		},
	}
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Errorw("failed to notify organizers", "reference_id", inquiry.ID, "error", err)
	}

	return &model.SubmissionResult{Accepted: true, ReferenceID: inquiry.ID}, nil
}

func (s *service) findDuplicate(ctx context.Context, submissionKey string) (*model.SubmissionResult, error) {
	existing, err := s.repo.GetBySubmissionKey(ctx, submissionKey)
	if err != nil {
		if errors.Is(err, model.ErrInquiryNotFound) {
			return nil, nil
		}
		return nil, err
	}

	s.logger.Infow("duplicate sponsor inquiry submit", "reference_id", existing.ID)
	return &model.SubmissionResult{Accepted: true, ReferenceID: existing.ID, Duplicate: true}, nil
}

// Get returns a stored inquiry by reference id.
func (s *service) Get(ctx context.Context, id string) (*model.InquiryResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, model.ErrInquiryNotFound
	}

	inquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return model.NewInquiryResponse(inquiry), nil
}
