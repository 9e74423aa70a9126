package controller

import (
	"adaptive_tutor_backend/internal/service"
	"adaptive_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Service *service.ProfileService
}

func NewProfileController(svc *service.ProfileService) *ProfileController {
	return &ProfileController{Service: svc}
}

// @Summary Create a student profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param body body service.OnboardRequest true "onboarding form"
// @Success 201 {object} util.Response
// @Router /api/profiles [post]
func (c *ProfileController) Create(ctx *gin.Context) {
	var req service.OnboardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.Service.Onboard(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, profile)
}

// @Summary Get a student profile
// @Tags profiles
// @Produce json
// @Param id path string true "profile id"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id} [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	profile, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary Performance analysis of the quiz history
// @Tags profiles
// @Produce json
// @Param id path string true "profile id"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/performance [get]
func (c *ProfileController) Performance(ctx *gin.Context) {
	perf, err := c.Service.Performance(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, perf)
}

// @Summary Record a finished quiz
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "profile id"
// @Param body body service.QuizSubmission true "quiz result"
// @Success 201 {object} util.Response
// @Router /api/profiles/{id}/quiz-results [post]
func (c *ProfileController) RecordQuizResult(ctx *gin.Context) {
	var req service.QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, result, err := c.Service.RecordQuizResult(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{
		"result":       result,
		"learningPath": profile.LearningPath,
	})
}
