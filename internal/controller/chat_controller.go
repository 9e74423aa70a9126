package controller

import (
	"adaptive_tutor_backend/internal/model"
	"adaptive_tutor_backend/internal/service"
	"adaptive_tutor_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Profiles *service.ProfileService
	Chat     *service.TutorChatService
}

func NewChatController(profiles *service.ProfileService, chat *service.TutorChatService) *ChatController {
	return &ChatController{Profiles: profiles, Chat: chat}
}

type ChatRequest struct {
	Message   string          `json:"message" binding:"required"`
	HelpLevel model.HelpLevel `json:"helpLevel"`
}

// @Summary Tutor chat history
// @Tags chat
// @Produce json
// @Param id path string true "profile id"
// @Param limit query int false "turns" default(20)
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/chat [get]
func (c *ChatController) History(ctx *gin.Context) {
	profile, err := c.Profiles.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	msgs, err := c.Chat.History(ctx.Request.Context(), profile, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"messages": msgs})
}

// @Summary Ask the tutor
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "profile id"
// @Param body body ChatRequest true "message"
// @Success 200 {object} util.Response
// @Router /api/profiles/{id}/chat [post]
func (c *ChatController) Send(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.HelpLevel == "" {
		req.HelpLevel = model.HelpGuide
	}
	if !req.HelpLevel.Valid() {
		util.BadRequest(ctx, "helpLevel must be hint, guide or solution")
		return
	}

	profile, err := c.Profiles.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	reply, err := c.Chat.Send(ctx.Request.Context(), profile, req.Message, req.HelpLevel)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, reply)
}
