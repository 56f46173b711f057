package v1

import (
	"net/http"
	"strconv"
	"time"

	"quickgigs-backend/internal/delivery/http/response"
	"quickgigs-backend/internal/domain"
	"quickgigs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	gigUC domain.GigUsecase
}

func NewGigHandler(api *gin.RouterGroup, gigUC domain.GigUsecase) {
	handler := &GigHandler{gigUC: gigUC}

	gigs := api.Group("/gigs")
	{
		gigs.GET("", handler.List)
		gigs.GET("/category/:category", handler.ListByCategory)
		gigs.GET("/search", handler.Search)
		gigs.GET("/:id", handler.GetDetails)
		gigs.POST("", handler.Create)
	}
}

type CreateGigRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Budget      float64   `json:"budget"`
	Deadline    time.Time `json:"deadline"`
	PostedBy    string    `json:"postedBy"`
}

// List godoc
// @Summary      List gigs
// @Description  List gigs with filtering, sorting and pagination
// @Tags         gigs
// @Produce      json
// @Param        category   query     string  false  "Exact category match"
// @Param        query      query     string  false  "Full-text search"
// @Param        minBudget  query     number  false  "Minimum budget (inclusive)"
// @Param        maxBudget  query     number  false  "Maximum budget (inclusive)"
// @Param        sortBy     query     string  false  "newest|oldest|budget_high|budget_low|deadline"
// @Param        limit      query     int     false  "Page size (default 20)"
// @Param        page       query     int     false  "1-based page number"
// @Success      200  {object}  response.Page
// @Failure      500  {object}  response.ErrorBody
// @Router       /gigs [get]
func (h *GigHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := domain.GigFilter{
		Category: c.Query("category"),
		Query:    c.Query("query"),
	}
	if v := c.Query("minBudget"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinBudget = &f
		}
	}
	if v := c.Query("maxBudget"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxBudget = &f
		}
	}

	result, err := h.gigUC.ListGigs(c, filter, c.Query("sortBy"), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, response.Page{
		Data: result.Items,
		Pagination: response.Pagination{
			Total: result.Total,
			Page:  result.Page,
			Pages: result.Pages,
		},
	})
}

// GetDetails godoc
// @Summary      Get gig details
// @Description  Get a single gig including its applicants
// @Tags         gigs
// @Produce      json
// @Param        id   path      int  true  "Gig ID"
// @Success      200  {object}  domain.Gig
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /gigs/{id} [get]
func (h *GigHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	gig, err := h.gigUC.GetGigDetails(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, gig)
}

// Create godoc
// @Summary      Create a gig
// @Description  Post a new gig with budget and deadline
// @Tags         gigs
// @Accept       json
// @Produce      json
// @Param        gig  body      CreateGigRequest  true  "Gig JSON"
// @Success      201  {object}  domain.Gig
// @Failure      400  {object}  response.ErrorBody
// @Router       /gigs [post]
func (h *GigHandler) Create(c *gin.Context) {
	var req CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	gig := &domain.Gig{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		PostedBy:    req.PostedBy,
	}

	if err := h.gigUC.CreateGig(c, gig); err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusCreated, gig)
}

// ListByCategory godoc
// @Summary      List gigs by category
// @Description  All gigs of one category, newest first
// @Tags         gigs
// @Produce      json
// @Param        category  path      string  true  "Category"
// @Success      200  {array}   domain.Gig
// @Failure      500  {object}  response.ErrorBody
// @Router       /gigs/category/{category} [get]
func (h *GigHandler) ListByCategory(c *gin.Context) {
	gigs, err := h.gigUC.ListByCategory(c, c.Param("category"))
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, gigs)
}

// Search godoc
// @Summary      Search gigs
// @Description  Full-text search ordered by relevance
// @Tags         gigs
// @Produce      json
// @Param        query  query     string  true  "Search text"
// @Success      200  {array}   domain.Gig
// @Failure      400  {object}  response.ErrorBody
// @Router       /gigs/search [get]
func (h *GigHandler) Search(c *gin.Context) {
	gigs, err := h.gigUC.SearchGigs(c, c.Query("query"))
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, gigs)
}
