package store

import (
	"strings"
	"testing"
	"time"

	"wolf-ai/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(zap.NewNop())
}

func TestSeedFixtures(t *testing.T) {
	s := newTestStore(t)

	ms := s.ListModels()
	require.Len(t, ms, 3)
	assert.Equal(t, "Llama-2-7B-Chat", ms[0].Name)
	assert.Equal(t, models.ModelStatusTraining, ms[2].Status)

	jobs := s.ListTrainingJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, models.JobStatusRunning, jobs[0].Status)
	assert.Equal(t, 3, jobs[0].ModelID)

	keys := s.ListApiKeys()
	require.Len(t, keys, 2)
	for _, k := range keys {
		assert.True(t, strings.HasPrefix(k.Key, "wolf_"))
		assert.Equal(t, models.KeyStatusActive, k.Status)
	}
}

func TestCreateModelDefaults(t *testing.T) {
	s := newTestStore(t)

	first := s.CreateModel(models.CreateModelRequest{Name: "Test-A", Type: "llama2"})
	second := s.CreateModel(models.CreateModelRequest{Name: "Test-B", Type: "gpt"})

	assert.Equal(t, models.ModelStatusInactive, first.Status)
	assert.Nil(t, first.Accuracy)
	assert.Equal(t, "v1.0", first.Version)
	assert.Greater(t, second.ID, first.ID)
}

func TestSharedIDCounter(t *testing.T) {
	s := newTestStore(t)

	m := s.CreateModel(models.CreateModelRequest{Name: "M", Type: "mistral"})
	k := s.CreateApiKey(models.CreateApiKeyRequest{Name: "K"})
	c := s.CreateChatMessage(m.ID, "hi", "there", 0.1)

	assert.Equal(t, m.ID+1, k.ID)
	assert.Equal(t, k.ID+1, c.ID)
}

func TestUpdateModelMergesPartialFields(t *testing.T) {
	s := newTestStore(t)
	m := s.CreateModel(models.CreateModelRequest{Name: "Before", Type: "llama2"})

	status := models.ModelStatusActive
	updated, err := s.UpdateModel(m.ID, models.ModelUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "Before", updated.Name)
	assert.Equal(t, models.ModelStatusActive, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(m.UpdatedAt))

	_, err = s.UpdateModel(99999, models.ModelUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteModelTwice(t *testing.T) {
	s := newTestStore(t)
	m := s.CreateModel(models.CreateModelRequest{Name: "Doomed", Type: "claude"})

	assert.True(t, s.DeleteModel(m.ID))
	assert.False(t, s.DeleteModel(m.ID))
}

func TestDeleteModelLeavesDanglingReferences(t *testing.T) {
	s := newTestStore(t)
	m := s.CreateModel(models.CreateModelRequest{Name: "Parent", Type: "llama2"})
	j := s.CreateTrainingJob(models.CreateTrainingJobRequest{
		ModelID: m.ID, TotalEpochs: 10, LearningRate: 0.001, BatchSize: 32,
	})

	require.True(t, s.DeleteModel(m.ID))

	got, err := s.GetTrainingJob(j.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ModelID)
}

func TestCreateTrainingJobDefaults(t *testing.T) {
	s := newTestStore(t)
	j := s.CreateTrainingJob(models.CreateTrainingJobRequest{
		ModelID: 1, TotalEpochs: 10, LearningRate: 0.001, BatchSize: 32,
	})

	assert.Equal(t, models.JobStatusPending, j.Status)
	assert.Zero(t, j.Progress)
	assert.Zero(t, j.Epoch)
	assert.Nil(t, j.Loss)
	assert.Nil(t, j.Accuracy)
}

func TestUpdateTrainingJobRefreshesTimestamp(t *testing.T) {
	s := newTestStore(t)
	j := s.CreateTrainingJob(models.CreateTrainingJobRequest{
		ModelID: 1, TotalEpochs: 10, LearningRate: 0.001, BatchSize: 32,
	})

	time.Sleep(5 * time.Millisecond)
	progress := 0.5
	updated, err := s.UpdateTrainingJob(j.ID, models.TrainingJobUpdate{Progress: &progress})
	require.NoError(t, err)

	assert.Equal(t, 0.5, updated.Progress)
	assert.Equal(t, j.TotalEpochs, updated.TotalEpochs)
	assert.True(t, updated.UpdatedAt.After(j.UpdatedAt))
}

func TestCreateApiKeyGeneratesToken(t *testing.T) {
	s := newTestStore(t)

	seen := map[string]bool{}
	for _, k := range s.ListApiKeys() {
		seen[k.Key] = true
	}

	k := s.CreateApiKey(models.CreateApiKeyRequest{Name: "CI"})
	assert.True(t, strings.HasPrefix(k.Key, "wolf_"))
	assert.Len(t, k.Key, len("wolf_")+32)
	assert.False(t, seen[k.Key], "token must be unique across stored keys")
	assert.Equal(t, models.KeyStatusActive, k.Status)
	assert.Equal(t, 1000, k.MaxRequests)
	assert.Zero(t, k.CurrentRequests)
	assert.Nil(t, k.LastUsed)
}

func TestUpdateApiKeyCannotTouchToken(t *testing.T) {
	s := newTestStore(t)
	k := s.CreateApiKey(models.CreateApiKeyRequest{Name: "Immutable"})

	status := models.KeyStatusSuspended
	updated, err := s.UpdateApiKey(k.ID, models.ApiKeyUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, k.Key, updated.Key)
	assert.Equal(t, models.KeyStatusSuspended, updated.Status)
}

func TestChatMessagesNewestFirstWithLimit(t *testing.T) {
	s := newTestStore(t)
	m := s.CreateModel(models.CreateModelRequest{Name: "Chatty", Type: "llama2"})

	var lastID int
	for i := 0; i < 60; i++ {
		msg := s.CreateChatMessage(m.ID, "q", "a", 0.01)
		lastID = msg.ID
	}
	s.CreateChatMessage(m.ID+1, "other model", "a", 0.01)

	got := s.ChatMessages(m.ID, 0)
	require.Len(t, got, 50)
	assert.Equal(t, lastID, got[0].ID)
	for _, msg := range got {
		assert.Equal(t, m.ID, msg.ModelID)
	}

	short := s.ChatMessages(m.ID, 5)
	assert.Len(t, short, 5)
}

func TestCreateUserUniqueness(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("fadi", "hash", "fadi@example.com")
	require.NoError(t, err)

	_, err = s.CreateUser("fadi", "hash2", "other@example.com")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.CreateUser("other", "hash3", "fadi@example.com")
	assert.ErrorIs(t, err, ErrConflict)

	u, err := s.GetUserByUsername("fadi")
	require.NoError(t, err)
	assert.Equal(t, "fadi@example.com", u.Email)
}

func TestStatsAggregation(t *testing.T) {
	s := newTestStore(t)

	// Seed state: 2 active models, 1 running job, 2 active keys,
	// 6500+1150 recorded requests.
	stats := s.Stats()
	assert.Equal(t, 2, stats.ActiveModels)
	assert.Equal(t, 1, stats.TrainingJobs)
	assert.Equal(t, 2, stats.ApiKeys)
	assert.Equal(t, 7650, stats.Requests)

	m := s.CreateModel(models.CreateModelRequest{Name: "New", Type: "gpt"})
	status := models.ModelStatusActive
	_, err := s.UpdateModel(m.ID, models.ModelUpdate{Status: &status})
	require.NoError(t, err)

	stats = s.Stats()
	assert.Equal(t, 3, stats.ActiveModels)
}
