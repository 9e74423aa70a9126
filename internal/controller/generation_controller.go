package controller

import (
	"adaptive_tutor_backend/internal/service"
	"adaptive_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GenerationController struct {
	Profiles  *service.ProfileService
	Generator *service.LearningPathService
}

func NewGenerationController(profiles *service.ProfileService, gen *service.LearningPathService) *GenerationController {
	return &GenerationController{Profiles: profiles, Generator: gen}
}

type LearningPathRequest struct {
	Topics []string `json:"topics"`
	// Grade optionally updates the stored grade before generating.
	Grade int `json:"grade"`
}

// @Summary Generate a learning path
// @Tags generation
// @Accept json
// @Produce json
// @Param id path string true "profile id"
// @Param body body LearningPathRequest true "topics"
// @Success 200 {object} util.Response
// @Failure 412 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /api/profiles/{id}/learning-path [post]
func (c *GenerationController) LearningPath(ctx *gin.Context) {
	var req LearningPathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := service.ValidateGrade(req.Grade); err != nil {
		respondError(ctx, err)
		return
	}

	profile, err := c.Profiles.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if req.Grade != 0 {
		profile.Grade = req.Grade
	}

	units, err := c.Generator.GenerateLearningPath(ctx.Request.Context(), profile, req.Topics)
	if err != nil {
		respondError(ctx, err)
		return
	}

	profile, err = c.Profiles.ApplyLearningPath(profile.ID, req.Grade, req.Topics, units)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"learningPath": profile.LearningPath})
}

// @Summary Upgrade a unit to a harder challenge
// @Tags generation
// @Produce json
// @Param id path string true "profile id"
// @Param unitId path string true "unit id"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/units/{unitId}/challenge [post]
func (c *GenerationController) Challenge(ctx *gin.Context) {
	profile, err := c.Profiles.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	unit, err := c.Profiles.FindUnit(profile, ctx.Param("unitId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	upgraded, err := c.Generator.GenerateChallengeUnit(ctx.Request.Context(), profile, unit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if _, err := c.Profiles.ReplaceUnit(profile.ID, upgraded); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, upgraded)
}

// @Summary Generate a comprehensive exam
// @Tags generation
// @Produce json
// @Param id path string true "profile id"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/exam [post]
func (c *GenerationController) Exam(ctx *gin.Context) {
	profile, err := c.Profiles.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	exam, err := c.Generator.GenerateComprehensiveTest(ctx.Request.Context(), profile)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, exam)
}

// @Summary Entertainment activities
// @Tags generation
// @Produce json
// @Param id path string true "profile id"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/entertainment [get]
func (c *GenerationController) Entertainment(ctx *gin.Context) {
	profile, err := c.Profiles.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	activities, fallback := c.Generator.GenerateEntertainmentContent(ctx.Request.Context(), profile)
	util.Success(ctx, gin.H{
		"activities": activities,
		"fallback":   fallback,
	})
}
