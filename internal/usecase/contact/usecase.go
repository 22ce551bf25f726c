package contact

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/application/port/input"
	"portfolio/internal/application/port/output"
	"portfolio/internal/domain/entity"
)

// ErrInvalidForm signals a submission that failed validation. Callers
// inspect the returned ContactValidation for per-field verdicts.
var ErrInvalidForm = errors.New("contact form failed validation")

type UseCase struct {
	compute input.ComputeService
	mailer  output.Mailer
	logger  output.LoggerPort
}

func New(compute input.ComputeService, mailer output.Mailer, logger output.LoggerPort) *UseCase {
	return &UseCase{
		compute: compute,
		mailer:  mailer,
		logger:  logger,
	}
}

// Submit validates the form through the background worker and, when
// every field passes, delivers the notification and confirmation emails.
// The validation verdict is returned either way so the caller can report
// which fields failed.
func (uc *UseCase) Submit(ctx context.Context, form entity.ContactForm) (entity.ContactValidation, error) {
	validation := uc.compute.ValidateContactForm(ctx, form)
	if !validation.IsFormValid {
		uc.logger.Warn("Contact form rejected", "fields", validation.Fields)
		return validation, ErrInvalidForm
	}

	if err := uc.mailer.Send(ctx, form); err != nil {
		uc.logger.Error("Contact email delivery failed", "error", err)
		return validation, fmt.Errorf("deliver contact message: %w", err)
	}

	uc.logger.Info("Contact form submitted", "email", form.Email)
	return validation, nil
}
