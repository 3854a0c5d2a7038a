package response

import "github.com/gin-gonic/gin"

// Envelope is the JSON shape every endpoint replies with.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Error     any    `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	id, _ := c.Get("RequestID")
	s, _ := id.(string)
	return s
}

func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

func Error(c *gin.Context, code int, message string, err any) {
	c.JSON(code, Envelope{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}
