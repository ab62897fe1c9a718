package handler

import (
	"errors"
	"net/http"

	"wolf-ai/internal/models"
	"wolf-ai/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiKeyHandler interface {
	ListApiKeys(c *gin.Context)
	CreateApiKey(c *gin.Context)
	UpdateApiKey(c *gin.Context)
	DeleteApiKey(c *gin.Context)
}

type apiKeyHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewApiKeyHandler(st *store.Store, logger *zap.Logger) ApiKeyHandler {
	return &apiKeyHandler{store: st, logger: logger}
}

// ListApiKeys handles GET /api/api-keys
func (h *apiKeyHandler) ListApiKeys(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListApiKeys())
}

// CreateApiKey handles POST /api/api-keys. The token is generated
// server-side; a "key" field in the body is ignored by the binding.
func (h *apiKeyHandler) CreateApiKey(c *gin.Context) {
	var req models.CreateApiKeyRequest
	if !bindJSON(c, &req) {
		return
	}

	key := h.store.CreateApiKey(req)
	h.logger.Info("API key created", zap.Int("id", key.ID), zap.String("name", key.Name))
	c.JSON(http.StatusCreated, key)
}

// UpdateApiKey handles PUT /api/api-keys/:id
func (h *apiKeyHandler) UpdateApiKey(c *gin.Context) {
	id, ok := pathID(c, "id", "API key")
	if !ok {
		return
	}

	var upd models.ApiKeyUpdate
	if !bindJSON(c, &upd) {
		return
	}

	key, err := h.store.UpdateApiKey(id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "API key not found"})
			return
		}
		h.logger.Error("Failed to update API key", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update API key"})
		return
	}

	c.JSON(http.StatusOK, key)
}

// DeleteApiKey handles DELETE /api/api-keys/:id
func (h *apiKeyHandler) DeleteApiKey(c *gin.Context) {
	id, ok := pathID(c, "id", "API key")
	if !ok {
		return
	}

	if !h.store.DeleteApiKey(id) {
		c.JSON(http.StatusNotFound, gin.H{"message": "API key not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API key deleted successfully"})
}
