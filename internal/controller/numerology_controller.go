package controller

import (
	"adaptive_tutor_backend/internal/util"
	"adaptive_tutor_backend/pkg/numerology"
	"strings"

	"github.com/gin-gonic/gin"
)

type NumerologyController struct{}

func NewNumerologyController() *NumerologyController {
	return &NumerologyController{}
}

// @Summary Numerology profile for a birth date
// @Tags numerology
// @Produce json
// @Param name query string false "student name"
// @Param dob query string true "birth date, day/month/year"
// @Success 200 {object} util.Response
// @Router /api/numerology [get]
func (c *NumerologyController) Analyze(ctx *gin.Context) {
	dob := strings.TrimSpace(ctx.Query("dob"))
	if dob == "" {
		util.BadRequest(ctx, "dob is required")
		return
	}
	util.Success(ctx, numerology.Analyze(ctx.Query("name"), dob))
}
