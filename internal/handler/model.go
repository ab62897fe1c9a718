package handler

import (
	"errors"
	"net/http"

	"wolf-ai/internal/models"
	"wolf-ai/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ModelHandler interface {
	ListModels(c *gin.Context)
	CreateModel(c *gin.Context)
	UpdateModel(c *gin.Context)
	DeleteModel(c *gin.Context)
}

type modelHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewModelHandler(st *store.Store, logger *zap.Logger) ModelHandler {
	return &modelHandler{store: st, logger: logger}
}

// ListModels handles GET /api/models
func (h *modelHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListModels())
}

// CreateModel handles POST /api/models
func (h *modelHandler) CreateModel(c *gin.Context) {
	var req models.CreateModelRequest
	if !bindJSON(c, &req) {
		return
	}

	model := h.store.CreateModel(req)
	h.logger.Info("Model created",
		zap.Int("id", model.ID),
		zap.String("name", model.Name),
		zap.String("type", model.Type))
	c.JSON(http.StatusCreated, model)
}

// UpdateModel handles PUT /api/models/:id
func (h *modelHandler) UpdateModel(c *gin.Context) {
	id, ok := pathID(c, "id", "model")
	if !ok {
		return
	}

	var upd models.ModelUpdate
	if !bindJSON(c, &upd) {
		return
	}

	model, err := h.store.UpdateModel(id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Model not found"})
			return
		}
		h.logger.Error("Failed to update model", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update model"})
		return
	}

	c.JSON(http.StatusOK, model)
}

// DeleteModel handles DELETE /api/models/:id
func (h *modelHandler) DeleteModel(c *gin.Context) {
	id, ok := pathID(c, "id", "model")
	if !ok {
		return
	}

	if !h.store.DeleteModel(id) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Model not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Model deleted successfully"})
}
