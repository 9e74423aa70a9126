package controller

import (
	"adaptive_tutor_backend/internal/llm"
	"adaptive_tutor_backend/internal/util"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CredentialStore is the writable credential key.
type CredentialStore interface {
	Save(ctx context.Context, credential string) error
	Clear(ctx context.Context) error
}

type SettingsController struct {
	// Store is nil when no key-value store is configured.
	Store CredentialStore
	// Effective is what generation would read.
	Effective llm.CredentialSource
}

func NewSettingsController(store CredentialStore, effective llm.CredentialSource) *SettingsController {
	return &SettingsController{Store: store, Effective: effective}
}

type APIKeyRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// @Summary Whether an API key is configured
// @Tags settings
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/settings/api-key [get]
func (c *SettingsController) GetAPIKey(ctx *gin.Context) {
	configured := false
	if c.Effective != nil {
		v, err := c.Effective.Credential(ctx.Request.Context())
		configured = err == nil && v != ""
	}
	util.Success(ctx, gin.H{"configured": configured})
}

// @Summary Store the API key
// @Tags settings
// @Accept json
// @Produce json
// @Param body body APIKeyRequest true "api key"
// @Success 200 {object} util.Response
// @Router /api/settings/api-key [put]
func (c *SettingsController) PutAPIKey(ctx *gin.Context) {
	if c.Store == nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Credential store unavailable")
		return
	}
	var req APIKeyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		util.BadRequest(ctx, "apiKey must not be blank")
		return
	}
	if err := c.Store.Save(ctx.Request.Context(), key); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"configured": true})
}

// @Summary Remove the stored API key
// @Tags settings
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/settings/api-key [delete]
func (c *SettingsController) DeleteAPIKey(ctx *gin.Context) {
	if c.Store == nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Credential store unavailable")
		return
	}
	if err := c.Store.Clear(ctx.Request.Context()); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
