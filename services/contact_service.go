package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/cemerttu/backend-store-master/errors"
	"github.com/cemerttu/backend-store-master/models"
	"github.com/cemerttu/backend-store-master/repository"
)

// ContactService handles contact-form submissions. The acknowledgment
// returned to the caller is decoupled from the persistence outcome: once the
// payload validates, the submission is accepted even if the store is absent
// or the write fails.
type ContactService struct {
	repo     repository.ContactRepository
	validate *validator.Validate
}

// NewContactService creates the contact service. A nil repository means
// submissions are logged instead of persisted.
func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{
		repo:     repo,
		validate: newValidator(),
	}
}

// Submit validates and records a contact submission.
func (s *ContactService) Submit(ctx context.Context, submission models.Contact) error {
	if err := s.validate.Struct(&submission); err != nil {
		return apperrors.Validation(validationMessage(err))
	}

	submission.ID = ""
	submission.ApplyDefaults(time.Now().UTC())

	if s.repo == nil {
		zap.L().Info("Contact submission received (no store configured, logging only)",
			zap.String("email", submission.Email),
			zap.String("subject", submission.Subject),
		)
		return nil
	}

	if err := s.repo.Insert(ctx, &submission); err != nil {
		zap.L().Error("Failed to persist contact submission", zap.String("email", submission.Email), zap.Error(err))
	}
	return nil
}
