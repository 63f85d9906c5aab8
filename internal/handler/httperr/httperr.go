package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the structured failure body. Only a human-readable message is
// exposed; dependency detail stays in the logging side channel.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// preserves original error for the logging middleware
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
