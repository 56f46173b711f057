package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"quickgigs-backend/internal/domain"
	"quickgigs-backend/internal/usecase"
	"quickgigs-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func openGig() *domain.Gig {
	return &domain.Gig{
		ID:         7,
		Title:      "Write product copy",
		Category:   "Writing",
		Budget:     50,
		Deadline:   time.Now().Add(7 * 24 * time.Hour),
		Applicants: []domain.Applicant{},
	}
}

func TestApplyToGig(t *testing.T) {
	t.Run("valid application is appended with submission time", func(t *testing.T) {
		mockRepo := new(MockGigRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, newValidate())

		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(openGig(), nil)
		mockRepo.On("AppendApplicant", mock.Anything, int64(7), mock.AnythingOfType("*domain.Applicant")).
			Return(nil).
			Run(func(args mock.Arguments) {
				applicant := args.Get(2).(*domain.Applicant)
				assert.Equal(t, "Jane Doe", applicant.FreelancerName)
				assert.Equal(t, "I can do this job well, 20+ chars", applicant.ShortMessage)
				assert.False(t, applicant.SubmittedAt.IsZero())
			})

		err := uc.ApplyToGig(context.Background(), 7, "Jane Doe", "I can do this job well, 20+ chars")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("expired gig rejects even valid input", func(t *testing.T) {
		mockRepo := new(MockGigRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, newValidate())

		gig := openGig()
		gig.Deadline = time.Now().Add(-time.Minute)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(gig, nil)

		err := uc.ApplyToGig(context.Background(), 7, "Jane Doe", "still interested")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "This gig has expired")
		mockRepo.AssertNotCalled(t, "AppendApplicant", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate name is rejected case-insensitively without altering applicants", func(t *testing.T) {
		mockRepo := new(MockGigRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, newValidate())

		gig := openGig()
		gig.Applicants = []domain.Applicant{{FreelancerName: "jane doe", ShortMessage: "first"}}
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(gig, nil)

		err := uc.ApplyToGig(context.Background(), 7, "Jane Doe", "second try")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You have already applied to this gig")
		mockRepo.AssertNotCalled(t, "AppendApplicant", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("race loser gets duplicate error from the conditional append", func(t *testing.T) {
		mockRepo := new(MockGigRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, newValidate())

		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(openGig(), nil)
		mockRepo.On("AppendApplicant", mock.Anything, int64(7), mock.AnythingOfType("*domain.Applicant")).
			Return(domain.ErrDuplicateApplicant)

		err := uc.ApplyToGig(context.Background(), 7, "Bob", "me too")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You have already applied to this gig")

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("absent gig maps to 404", func(t *testing.T) {
		mockRepo := new(MockGigRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, newValidate())

		mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		err := uc.ApplyToGig(context.Background(), 99, "Jane Doe", "hello")
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Gig not found", appErr.Message)
	})

	t.Run("absent gig wins over an invalid body", func(t *testing.T) {
		mockRepo := new(MockGigRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, newValidate())

		mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		err := uc.ApplyToGig(context.Background(), 99, "", "")
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Gig not found", appErr.Message)
	})

	t.Run("expired gig wins over an invalid body", func(t *testing.T) {
		mockRepo := new(MockGigRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, newValidate())

		gig := openGig()
		gig.Deadline = time.Now().Add(-time.Minute)
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(gig, nil)

		err := uc.ApplyToGig(context.Background(), 7, "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "This gig has expired")
	})

	t.Run("missing fields fail without touching the store", func(t *testing.T) {
		mockRepo := new(MockGigRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, newValidate())

		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(openGig(), nil)

		err := uc.ApplyToGig(context.Background(), 7, "", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Freelancer name is required")
		assert.Contains(t, err.Error(), "Application message is required")
		mockRepo.AssertNotCalled(t, "AppendApplicant", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("overlong message is rejected", func(t *testing.T) {
		mockRepo := new(MockGigRepo)
		uc := usecase.NewApplicationUsecase(mockRepo, newValidate())

		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(openGig(), nil)

		err := uc.ApplyToGig(context.Background(), 7, "Jane Doe", strings.Repeat("m", 501))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Message cannot be more than 500 characters")
		mockRepo.AssertNotCalled(t, "AppendApplicant", mock.Anything, mock.Anything, mock.Anything)
	})
}
