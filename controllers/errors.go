package controllers

import (
	"errors"

	"foodorder/pkg/apperr"
	"foodorder/pkg/resp"

	"github.com/gin-gonic/gin"
)

// map error จาก service เป็น HTTP status ตาม taxonomy
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, apperr.ErrInvalidState):
		resp.UnprocessableEntity(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
