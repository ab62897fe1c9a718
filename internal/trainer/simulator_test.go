package trainer

import (
	"context"
	"testing"
	"time"

	"wolf-ai/internal/models"
	"wolf-ai/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fastConfig() Config {
	return Config{Intervals: []time.Duration{time.Millisecond}}
}

func newJob(s *store.Store) *models.TrainingJob {
	return s.CreateTrainingJob(models.CreateTrainingJobRequest{
		ModelID: 1, TotalEpochs: 10, LearningRate: 0.001, BatchSize: 32,
	})
}

func TestRunCompletesJob(t *testing.T) {
	st := store.New(zap.NewNop())
	job := newJob(st)
	sim := New(st, fastConfig(), zap.NewNop())

	sim.Run(context.Background(), job.ID)

	got, err := st.GetTrainingJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, got.Status)
	assert.Equal(t, 1.0, got.Progress)
	assert.Equal(t, 10, got.Epoch)
	require.NotNil(t, got.Accuracy)
	require.NotNil(t, got.Loss)
	// Final epoch curves: accuracy 0.95 +/- 0.025, loss 0.10 +/- 0.05.
	assert.InDelta(t, 0.95, *got.Accuracy, 0.026)
	assert.InDelta(t, 0.10, *got.Loss, 0.051)
}

func TestRunDeletedJobStopsQuietly(t *testing.T) {
	st := store.New(zap.NewNop())
	sim := New(st, fastConfig(), zap.NewNop())

	// No job with this id exists; the run must be a no-op.
	sim.Run(context.Background(), 99999)
}

func TestRunRespectsCancellation(t *testing.T) {
	st := store.New(zap.NewNop())
	job := newJob(st)
	sim := New(st, Config{Intervals: []time.Duration{time.Hour}}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx, job.ID)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulation did not stop after cancellation")
	}

	got, err := st.GetTrainingJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, got.Status)
}

func TestScheduleHonorsStartDelay(t *testing.T) {
	st := store.New(zap.NewNop())
	job := newJob(st)
	cfg := fastConfig()
	cfg.StartDelay = 10 * time.Millisecond
	sim := New(st, cfg, zap.NewNop())

	sim.Schedule(context.Background(), job.ID)

	// Before the delay elapses nothing has run.
	got, err := st.GetTrainingJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, got.Status)

	require.Eventually(t, func() bool {
		j, err := st.GetTrainingJob(job.ID)
		return err == nil && j.Status == models.JobStatusCompleted
	}, 2*time.Second, 5*time.Millisecond)
}

func TestRunProgressMonotonic(t *testing.T) {
	st := store.New(zap.NewNop())
	job := newJob(st)
	sim := New(st, fastConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		sim.Run(ctx, job.ID)
		close(done)
	}()

	last := -1.0
	for {
		select {
		case <-done:
			return
		default:
		}
		j, err := st.GetTrainingJob(job.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, j.Progress, last)
		assert.LessOrEqual(t, j.Progress, 1.0)
		last = j.Progress
		time.Sleep(time.Millisecond)
	}
}
