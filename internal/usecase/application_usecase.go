package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"quickgigs-backend/internal/domain"
	"quickgigs-backend/pkg/apperror"
	"quickgigs-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type applicationUsecase struct {
	gigRepo  domain.GigRepository
	validate *validator.Validate
}

func NewApplicationUsecase(gigRepo domain.GigRepository, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{
		gigRepo:  gigRepo,
		validate: validate,
	}
}

type applyInput struct {
	FreelancerName string `validate:"required"`
	ShortMessage   string `validate:"required,max=500"`
}

// ApplyToGig appends one application to a gig. Lookup, expiry and duplicate
// resolve first, in that order, against the gig as read here; body validation
// comes after, and the append itself stays conditional at the store so a
// racing same-name application still loses cleanly.
func (uc *applicationUsecase) ApplyToGig(ctx context.Context, gigID int64, freelancerName, shortMessage string) error {
	gig, err := uc.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Gig not found")
		}
		return apperror.Internal(err)
	}

	if gig.Deadline.Before(time.Now()) {
		return apperror.BadRequest("This gig has expired")
	}

	for _, applicant := range gig.Applicants {
		if strings.EqualFold(applicant.FreelancerName, freelancerName) {
			return apperror.BadRequest("You have already applied to this gig")
		}
	}

	input := applyInput{FreelancerName: freelancerName, ShortMessage: shortMessage}
	if err := uc.validate.Struct(input); err != nil {
		return apperror.BadRequest(validation.JoinValidationErrors(err))
	}

	applicant := &domain.Applicant{
		FreelancerName: freelancerName,
		ShortMessage:   shortMessage,
		SubmittedAt:    time.Now(),
	}

	if err := uc.gigRepo.AppendApplicant(ctx, gig.ID, applicant); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplicant) {
			return apperror.BadRequest("You have already applied to this gig")
		}
		return apperror.Internal(err)
	}
	return nil
}
