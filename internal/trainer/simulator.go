package trainer

import (
	"context"
	"math/rand"
	"time"

	"wolf-ai/internal/metrics"
	"wolf-ai/internal/models"
	"wolf-ai/internal/store"

	"go.uber.org/zap"
)

const simulatedEpochs = 10

// Config tunes the simulator. Zero values select the production schedule.
type Config struct {
	// Intervals is the set of per-epoch delays; one is drawn uniformly at
	// random for every epoch.
	Intervals []time.Duration
	// StartDelay is the pause between job creation and the first epoch.
	StartDelay time.Duration
}

// Simulator advances a training job through a fixed ten-epoch schedule,
// writing the progress trace back into the store after every epoch. Once
// scheduled, a run is only stopped by context cancellation; a job deleted
// mid-run simply stops receiving updates.
type Simulator struct {
	store      *store.Store
	intervals  []time.Duration
	startDelay time.Duration
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func New(st *store.Store, cfg Config, logger *zap.Logger) *Simulator {
	if len(cfg.Intervals) == 0 {
		cfg.Intervals = []time.Duration{
			1 * time.Second,
			2 * time.Second,
			3 * time.Second,
			5 * time.Second,
		}
	}
	return &Simulator{
		store:      st,
		intervals:  cfg.Intervals,
		startDelay: cfg.StartDelay,
		logger:     logger,
		metrics:    metrics.Global(),
	}
}

// Schedule runs the simulation for jobID in a detached goroutine after the
// configured start delay.
func (s *Simulator) Schedule(ctx context.Context, jobID int) {
	go func() {
		if s.startDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.startDelay):
			}
		}
		s.Run(ctx, jobID)
	}()
}

// Run executes all ten epochs synchronously. Exported for tests and for
// callers that want to drive the schedule themselves.
func (s *Simulator) Run(ctx context.Context, jobID int) {
	for epoch := 1; epoch <= simulatedEpochs; epoch++ {
		interval := s.intervals[rand.Intn(len(s.intervals))]
		select {
		case <-ctx.Done():
			s.logger.Info("Training simulation cancelled",
				zap.Int("job_id", jobID),
				zap.Int("epoch", epoch))
			return
		case <-time.After(interval):
		}

		progress := float64(epoch) / float64(simulatedEpochs)
		accuracy := 0.70 + 0.25*progress + (rand.Float64()*0.05 - 0.025)
		loss := 0.50 - 0.40*progress + (rand.Float64()*0.1 - 0.05)

		upd := models.TrainingJobUpdate{
			Progress: &progress,
			Epoch:    &epoch,
			Accuracy: &accuracy,
			Loss:     &loss,
		}
		status := models.JobStatusRunning
		if epoch == simulatedEpochs {
			status = models.JobStatusCompleted
		}
		upd.Status = &status

		if _, err := s.store.UpdateTrainingJob(jobID, upd); err != nil {
			// The job was deleted mid-run; the remaining epochs have
			// nothing to report against.
			s.logger.Warn("Training job vanished during simulation",
				zap.Int("job_id", jobID),
				zap.Int("epoch", epoch),
				zap.Error(err))
			return
		}

		s.metrics.TrainingEpochs.Inc()
		s.logger.Info("Training epoch completed",
			zap.Int("job_id", jobID),
			zap.Int("epoch", epoch),
			zap.Float64("accuracy", accuracy),
			zap.Float64("loss", loss))
	}
}
