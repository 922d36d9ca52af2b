package controller

import (
	"errors"
	"quiz_engine_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleError maps core errors onto HTTP statuses.
func handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrTestNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrAnswerNotFound),
		errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidTest),
		errors.Is(err, util.ErrQuestionValidation):
		util.UnprocessableEntity(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
