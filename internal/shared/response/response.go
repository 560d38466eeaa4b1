package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the free-form success payload. The API contract keeps the
// original wire shapes (top-level user/token/data/count/deletedId keys),
// so handlers compose the body and this package only owns the writing.
type Body = gin.H

// Success writes a success payload as-is.
func Success(c *gin.Context, status int, body Body) {
	c.JSON(status, body)
}

// Error writes the uniform failure shape: a user-facing message plus a
// stable machine code. Internals are never included here.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}
