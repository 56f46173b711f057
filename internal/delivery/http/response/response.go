package response

import (
	"github.com/gin-gonic/gin"
)

// Pagination carries list paging metadata.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// Page is the wire shape for paginated lists.
type Page struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Message is the wire shape for confirmation responses.
type Message struct {
	Message string `json:"message"`
}

// ErrorBody is the wire shape for all failures. Stack carries the underlying
// error detail and is only populated outside release mode.
type ErrorBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// OK sends data as-is with the given status code.
func OK(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Confirm sends a confirmation message response.
func Confirm(c *gin.Context, code int, message string) {
	c.JSON(code, Message{Message: message})
}

// Error sends an error response.
func Error(c *gin.Context, code int, message, stack string) {
	c.JSON(code, ErrorBody{Message: message, Stack: stack})
}
