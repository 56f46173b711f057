package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quickgigs-backend/internal/delivery/http/middleware"
	v1 "quickgigs-backend/internal/delivery/http/v1"
	"quickgigs-backend/internal/domain"
	"quickgigs-backend/pkg/apperror"
	"quickgigs-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGigUsecase struct {
	mock.Mock
}

func (m *MockGigUsecase) CreateGig(ctx context.Context, gig *domain.Gig) error {
	return m.Called(ctx, gig).Error(0)
}

func (m *MockGigUsecase) GetGigDetails(ctx context.Context, id int64) (*domain.Gig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Gig), args.Error(1)
}

func (m *MockGigUsecase) ListGigs(ctx context.Context, filter domain.GigFilter, sortBy string, page, limit int) (*domain.GigPage, error) {
	args := m.Called(ctx, filter, sortBy, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GigPage), args.Error(1)
}

func (m *MockGigUsecase) SearchGigs(ctx context.Context, query string) ([]domain.Gig, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gig), args.Error(1)
}

func (m *MockGigUsecase) ListByCategory(ctx context.Context, category string) ([]domain.Gig, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Gig), args.Error(1)
}

type MockApplicationUsecase struct {
	mock.Mock
}

func (m *MockApplicationUsecase) ApplyToGig(ctx context.Context, gigID int64, freelancerName, shortMessage string) error {
	return m.Called(ctx, gigID, freelancerName, shortMessage).Error(0)
}

func newTestRouter(gigUC domain.GigUsecase, applicationUC domain.ApplicationUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	v1.NewGigHandler(api, gigUC)
	v1.NewApplicationHandler(api, applicationUC)
	return r
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListEndpoint(t *testing.T) {
	gigUC := new(MockGigUsecase)
	r := newTestRouter(gigUC, new(MockApplicationUsecase))

	min, max := 100.0, 200.0
	filter := domain.GigFilter{Category: "Design", MinBudget: &min, MaxBudget: &max}
	gigUC.On("ListGigs", mock.Anything, filter, "budget_low", 2, 10).
		Return(&domain.GigPage{Items: []domain.Gig{}, Total: 45, Page: 2, Pages: 5}, nil)

	w := doRequest(r, http.MethodGet, "/api/gigs?category=Design&minBudget=100&maxBudget=200&sortBy=budget_low&page=2&limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data       []domain.Gig `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
			Page  int   `json:"page"`
			Pages int   `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(45), body.Pagination.Total)
	assert.Equal(t, 2, body.Pagination.Page)
	assert.Equal(t, 5, body.Pagination.Pages)
	assert.NotNil(t, body.Data)
	gigUC.AssertExpectations(t)
}

func TestListEndpointNonNumericParams(t *testing.T) {
	gigUC := new(MockGigUsecase)
	r := newTestRouter(gigUC, new(MockApplicationUsecase))

	// strconv yields zero for garbage; the usecase clamps from there
	gigUC.On("ListGigs", mock.Anything, domain.GigFilter{}, "", 0, 0).
		Return(&domain.GigPage{Items: []domain.Gig{}, Total: 0, Page: 1, Pages: 0}, nil)

	w := doRequest(r, http.MethodGet, "/api/gigs?page=abc&limit=xyz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	gigUC.AssertExpectations(t)
}

func TestGetDetailsEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gigUC := new(MockGigUsecase)
		r := newTestRouter(gigUC, new(MockApplicationUsecase))

		gig := &domain.Gig{ID: 5, Title: "Logo design", Applicants: []domain.Applicant{}}
		gigUC.On("GetGigDetails", mock.Anything, int64(5)).Return(gig, nil)

		w := doRequest(r, http.MethodGet, "/api/gigs/5", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"applicants":[]`)
	})

	t.Run("not found", func(t *testing.T) {
		gigUC := new(MockGigUsecase)
		r := newTestRouter(gigUC, new(MockApplicationUsecase))

		gigUC.On("GetGigDetails", mock.Anything, int64(99)).Return(nil, apperror.NotFound("Gig not found"))

		w := doRequest(r, http.MethodGet, "/api/gigs/99", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Gig not found")
	})

	t.Run("bad id", func(t *testing.T) {
		gigUC := new(MockGigUsecase)
		r := newTestRouter(gigUC, new(MockApplicationUsecase))

		w := doRequest(r, http.MethodGet, "/api/gigs/not-a-number", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		gigUC := new(MockGigUsecase)
		r := newTestRouter(gigUC, new(MockApplicationUsecase))

		deadline := time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339)
		gigUC.On("CreateGig", mock.Anything, mock.AnythingOfType("*domain.Gig")).
			Return(nil).
			Run(func(args mock.Arguments) {
				gig := args.Get(1).(*domain.Gig)
				assert.Equal(t, "Build an API", gig.Title)
				assert.Equal(t, 150.0, gig.Budget)
				gig.ID = 11
			})

		body := `{"title":"Build an API","description":"REST service","category":"Web Development","budget":150,"deadline":"` + deadline + `","postedBy":"Acme"}`
		w := doRequest(r, http.MethodPost, "/api/gigs", body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":11`)
	})

	t.Run("validation failure", func(t *testing.T) {
		gigUC := new(MockGigUsecase)
		r := newTestRouter(gigUC, new(MockApplicationUsecase))

		gigUC.On("CreateGig", mock.Anything, mock.AnythingOfType("*domain.Gig")).
			Return(apperror.BadRequest("Title is required, Budget must be at least $5"))

		w := doRequest(r, http.MethodPost, "/api/gigs", `{"description":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Title is required")
	})
}

func TestSearchEndpoint(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		gigUC := new(MockGigUsecase)
		r := newTestRouter(gigUC, new(MockApplicationUsecase))

		gigUC.On("SearchGigs", mock.Anything, "").
			Return(nil, apperror.BadRequest("Search query is required"))

		w := doRequest(r, http.MethodGet, "/api/gigs/search", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Search query is required")
	})

	t.Run("results", func(t *testing.T) {
		gigUC := new(MockGigUsecase)
		r := newTestRouter(gigUC, new(MockApplicationUsecase))

		gigUC.On("SearchGigs", mock.Anything, "logo").
			Return([]domain.Gig{{ID: 3, Applicants: []domain.Applicant{}}}, nil)

		w := doRequest(r, http.MethodGet, "/api/gigs/search?query=logo", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestApplyEndpoint(t *testing.T) {
	t.Run("submitted", func(t *testing.T) {
		appUC := new(MockApplicationUsecase)
		r := newTestRouter(new(MockGigUsecase), appUC)

		appUC.On("ApplyToGig", mock.Anything, int64(7), "Jane Doe", "message").Return(nil)

		w := doRequest(r, http.MethodPost, "/api/gigs/7/apply", `{"freelancerName":"Jane Doe","shortMessage":"message"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Application submitted successfully")
	})

	t.Run("duplicate", func(t *testing.T) {
		appUC := new(MockApplicationUsecase)
		r := newTestRouter(new(MockGigUsecase), appUC)

		appUC.On("ApplyToGig", mock.Anything, int64(7), "Jane Doe", "again").
			Return(apperror.BadRequest("You have already applied to this gig"))

		w := doRequest(r, http.MethodPost, "/api/gigs/7/apply", `{"freelancerName":"Jane Doe","shortMessage":"again"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "You have already applied to this gig")
	})

	t.Run("expired", func(t *testing.T) {
		appUC := new(MockApplicationUsecase)
		r := newTestRouter(new(MockGigUsecase), appUC)

		appUC.On("ApplyToGig", mock.Anything, int64(7), "Jane Doe", "late").
			Return(apperror.BadRequest("This gig has expired"))

		w := doRequest(r, http.MethodPost, "/api/gigs/7/apply", `{"freelancerName":"Jane Doe","shortMessage":"late"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "This gig has expired")
	})
}
