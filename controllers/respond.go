package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/minsmanse/bar/pkg/resp"
	"github.com/minsmanse/bar/services"
)

// serviceError maps the service error taxonomy onto HTTP statuses.
// Anything unclassified is a persistence or programming fault and surfaces
// as 500 so a dropped write is never mistaken for success.
func serviceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCompletedOrder):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
