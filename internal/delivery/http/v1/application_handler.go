package v1

import (
	"net/http"
	"strconv"

	"quickgigs-backend/internal/delivery/http/response"
	"quickgigs-backend/internal/domain"
	"quickgigs-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(api *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	api.POST("/gigs/:id/apply", handler.Apply)
}

// ApplyRequest is the request payload for applying to a gig
type ApplyRequest struct {
	FreelancerName string `json:"freelancerName"`
	ShortMessage   string `json:"shortMessage"`
}

// Apply godoc
// @Summary      Apply to a gig
// @Description  Submit an application; rejected when the gig expired or the name already applied
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Gig ID"
// @Param        body  body      ApplyRequest  true  "Application data"
// @Success      201  {object}  response.Message
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /gigs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.ApplyToGig(c, id, req.FreelancerName, req.ShortMessage); err != nil {
		c.Error(err)
		return
	}

	response.Confirm(c, http.StatusCreated, "Application submitted successfully")
}
