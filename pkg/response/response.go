package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new success response with the given per-event results.
func NewOKResp(results any) Resp {
	return Resp{
		Status:  StatusSuccess,
		Results: results,
	}
}

// OK sends 200 JSON with per-event results.
func OK(c *gin.Context, results any) {
	c.JSON(http.StatusOK, NewOKResp(results))
}

// BadRequest sends 400 with the error message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		Status:  StatusError,
		Message: err.Error(),
	})
}

// InternalError sends 500 with a generic message.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Status:  StatusError,
		Message: DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		Status:  StatusError,
		Message: "Unauthorized",
	})
}
