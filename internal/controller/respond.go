package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ptnguyen/quizhub/internal/apperror"
	"github.com/ptnguyen/quizhub/internal/dto"
)

// RespondError renders a classified service error with its mapped status code
// and user-visible message only.
func RespondError(ctx *gin.Context, err error) {
	ctx.JSON(apperror.HTTPStatus(err), dto.ErrorResponse{Message: apperror.MessageOf(err)})
}

// ParseIDParam reads a uint path parameter, returning ok=false after having
// rendered a 400 response.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
