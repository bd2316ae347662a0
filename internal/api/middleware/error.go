package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/tohsaka888/societies-server/internal/api/dto"
	"github.com/tohsaka888/societies-server/internal/logging"
)

// Recovery turns panics and unhandled handler errors into the failure body
// every endpoint uses.
func Recovery(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error(c.Request.Context(), "panic in handler",
					"path", c.Request.URL.Path,
					"panic", fmt.Sprint(r),
				)
				c.AbortWithStatusJSON(dto.StatusFailure, dto.ErrorResponse{
					Code:   dto.CodeFail,
					ErrMsg: "internal error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			c.JSON(dto.StatusFailure, dto.ErrorResponse{
				Code:   dto.CodeFail,
				ErrMsg: c.Errors.Last().Error(),
			})
		}
	}
}
