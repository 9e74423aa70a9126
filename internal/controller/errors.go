package controller

import (
	"adaptive_tutor_backend/internal/llm"
	"adaptive_tutor_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP statuses. Generation failures keep
// the upstream message verbatim.
func respondError(ctx *gin.Context, err error) {
	var missing *llm.MissingCredentialError
	var genErr *llm.GenerationError

	switch {
	case errors.As(err, &missing):
		util.Error(ctx, http.StatusPreconditionFailed, missing.Error())
	case errors.As(err, &genErr):
		util.Error(ctx, http.StatusBadGateway, genErr.Error())
	case errors.Is(err, util.ErrProfileNotFound), errors.Is(err, util.ErrUnitNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidGrade),
		errors.Is(err, util.ErrInvalidProficiency),
		errors.Is(err, util.ErrInvalidScore),
		errors.Is(err, util.ErrEmptyTopics),
		errors.Is(err, util.ErrEmptyMessage):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
