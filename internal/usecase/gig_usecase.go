package usecase

import (
	"context"
	"errors"
	"time"

	"quickgigs-backend/internal/domain"
	"quickgigs-backend/pkg/apperror"
	"quickgigs-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const defaultPageSize = 20

type gigUsecase struct {
	gigRepo  domain.GigRepository
	validate *validator.Validate
}

func NewGigUsecase(gigRepo domain.GigRepository, validate *validator.Validate) domain.GigUsecase {
	return &gigUsecase{
		gigRepo:  gigRepo,
		validate: validate,
	}
}

func (u *gigUsecase) CreateGig(ctx context.Context, gig *domain.Gig) error {
	if err := u.validate.Struct(gig); err != nil {
		return apperror.BadRequest(validation.JoinValidationErrors(err))
	}

	now := time.Now()
	gig.CreatedAt = now
	gig.UpdatedAt = now
	gig.Applicants = []domain.Applicant{}

	if err := u.gigRepo.Create(ctx, gig); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *gigUsecase) GetGigDetails(ctx context.Context, id int64) (*domain.Gig, error) {
	gig, err := u.gigRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Gig not found")
		}
		return nil, apperror.Internal(err)
	}
	return gig, nil
}

func (u *gigUsecase) ListGigs(ctx context.Context, filter domain.GigFilter, sortBy string, page, limit int) (*domain.GigPage, error) {
	// Non-positive or unparseable values clamp rather than producing a
	// negative offset.
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit

	items, total, err := u.gigRepo.Fetch(ctx, filter, resolveSort(sortBy, filter), limit, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	pages := 0
	if total > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return &domain.GigPage{
		Items: items,
		Total: total,
		Page:  page,
		Pages: pages,
	}, nil
}

func (u *gigUsecase) SearchGigs(ctx context.Context, query string) ([]domain.Gig, error) {
	if query == "" {
		return nil, apperror.BadRequest("Search query is required")
	}
	gigs, err := u.gigRepo.Search(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return gigs, nil
}

func (u *gigUsecase) ListByCategory(ctx context.Context, category string) ([]domain.Gig, error) {
	gigs, err := u.gigRepo.FetchByCategory(ctx, category)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return gigs, nil
}

// resolveSort picks the effective sort key. Text searches rank by relevance
// unless the caller asked for an explicit order; unrecognized keys fall back
// to newest-first.
func resolveSort(sortBy string, filter domain.GigFilter) string {
	if sortBy == "" {
		if filter.Query != "" {
			return domain.SortRelevance
		}
		return domain.SortNewest
	}
	switch sortBy {
	case domain.SortNewest, domain.SortOldest, domain.SortBudgetHigh, domain.SortBudgetLow, domain.SortDeadline:
		return sortBy
	}
	return domain.SortNewest
}
