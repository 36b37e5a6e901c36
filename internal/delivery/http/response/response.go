package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope: the front end only ever looks
// at Success and Message.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion

	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		RequestID: idStr,
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)

	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		RequestID: idStr,
	})
}
