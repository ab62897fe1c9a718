package handler

import (
	"errors"
	"net/http"

	"wolf-ai/internal/ai"
	"wolf-ai/internal/models"
	"wolf-ai/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler interface {
	GetChatMessages(c *gin.Context)
	SendMessage(c *gin.Context)
}

type chatHandler struct {
	store  *store.Store
	ai     *ai.Client
	logger *zap.Logger
}

func NewChatHandler(st *store.Store, aiClient *ai.Client, logger *zap.Logger) ChatHandler {
	return &chatHandler{store: st, ai: aiClient, logger: logger}
}

// GetChatMessages handles GET /api/chat/:modelId. Messages may reference a
// model that has since been deleted; they are returned regardless.
func (h *chatHandler) GetChatMessages(c *gin.Context) {
	modelID, ok := pathID(c, "modelId", "model")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.store.ChatMessages(modelID, 0))
}

// SendMessage handles POST /api/chat. A well-formed request against an
// existing model always yields 201: provider failures are masked by the
// canned-response fallback inside the AI client.
func (h *chatHandler) SendMessage(c *gin.Context) {
	var req models.ChatRequest
	if !bindJSON(c, &req) {
		return
	}

	model, err := h.store.GetModel(req.ModelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Model not found"})
			return
		}
		h.logger.Error("Failed to look up model", zap.Int("model_id", req.ModelID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}

	resp := h.ai.GenerateResponse(c.Request.Context(), req.Message, model)
	message := h.store.CreateChatMessage(req.ModelID, req.Message, resp.Response, resp.ResponseTime)

	c.JSON(http.StatusCreated, message)
}
