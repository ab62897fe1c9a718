package handler

import (
	"context"
	"errors"
	"net/http"

	"wolf-ai/internal/models"
	"wolf-ai/internal/store"
	"wolf-ai/internal/trainer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TrainingHandler interface {
	ListTrainingJobs(c *gin.Context)
	CreateTrainingJob(c *gin.Context)
	UpdateTrainingJob(c *gin.Context)
}

type trainingHandler struct {
	store     *store.Store
	simulator *trainer.Simulator
	// baseCtx bounds the lifetime of scheduled simulations; it is the
	// process shutdown context, not the request context.
	baseCtx context.Context
	logger  *zap.Logger
}

func NewTrainingHandler(st *store.Store, sim *trainer.Simulator, baseCtx context.Context, logger *zap.Logger) TrainingHandler {
	return &trainingHandler{store: st, simulator: sim, baseCtx: baseCtx, logger: logger}
}

// ListTrainingJobs handles GET /api/training-jobs
func (h *trainingHandler) ListTrainingJobs(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListTrainingJobs())
}

// CreateTrainingJob handles POST /api/training-jobs. The simulation is
// fire-and-forget: the response returns immediately with the pending job.
func (h *trainingHandler) CreateTrainingJob(c *gin.Context) {
	var req models.CreateTrainingJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job := h.store.CreateTrainingJob(req)
	h.simulator.Schedule(h.baseCtx, job.ID)

	h.logger.Info("Training job created",
		zap.Int("id", job.ID),
		zap.Int("model_id", job.ModelID),
		zap.Int("total_epochs", job.TotalEpochs))
	c.JSON(http.StatusCreated, job)
}

// UpdateTrainingJob handles PUT /api/training-jobs/:id
func (h *trainingHandler) UpdateTrainingJob(c *gin.Context) {
	id, ok := pathID(c, "id", "training job")
	if !ok {
		return
	}

	var upd models.TrainingJobUpdate
	if !bindJSON(c, &upd) {
		return
	}

	job, err := h.store.UpdateTrainingJob(id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Training job not found"})
			return
		}
		h.logger.Error("Failed to update training job", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update training job"})
		return
	}

	c.JSON(http.StatusOK, job)
}
