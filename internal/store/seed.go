package store

import (
	"time"

	"wolf-ai/internal/models"

	"go.uber.org/zap"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrString(v string) *string  { return &v }

// seed loads the illustrative fixture data: three models, one running
// training job, two active API keys. Callers must not hold the lock.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	fixtures := []models.Model{
		{
			Name:        "Llama-2-7B-Chat",
			Type:        string(models.TypeLlama2),
			Status:      models.ModelStatusActive,
			Accuracy:    ptrFloat(0.952),
			Version:     "v1.0",
			Description: ptrString("Advanced conversational AI model optimized for Arabic language"),
		},
		{
			Name:        "Mistral-7B-Instruct",
			Type:        string(models.TypeMistral),
			Status:      models.ModelStatusActive,
			Accuracy:    ptrFloat(0.928),
			Version:     "v1.0",
			Description: ptrString("High-performance instruction-following model"),
		},
		{
			Name:        "CodeLlama-13B",
			Type:        string(models.TypeCodeLlama),
			Status:      models.ModelStatusTraining,
			Accuracy:    ptrFloat(0.895),
			Version:     "v1.0",
			Description: ptrString("Specialized code generation and understanding model"),
		},
	}
	for i := range fixtures {
		m := fixtures[i]
		m.ID = s.allocID()
		m.CreatedAt = now
		m.UpdatedAt = now
		s.models[m.ID] = &m
	}

	job := models.TrainingJob{
		ID:                     s.allocID(),
		ModelID:                3,
		Status:                 models.JobStatusRunning,
		Progress:               0.68,
		Epoch:                  7,
		TotalEpochs:            10,
		LearningRate:           0.001,
		BatchSize:              32,
		Loss:                   ptrFloat(0.0342),
		Accuracy:               ptrFloat(0.942),
		EstimatedTimeRemaining: ptrInt(135),
		GPUUsage:               ptrFloat(0.87),
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	s.trainingJobs[job.ID] = &job

	keys := []models.ApiKey{
		{
			Name:            "Production API",
			Key:             NewAPIKeyToken(),
			ModelID:         ptrInt(1),
			Usage:           0.65,
			MaxRequests:     10000,
			CurrentRequests: 6500,
			Status:          models.KeyStatusActive,
			LastUsed:        &now,
		},
		{
			Name:            "Development API",
			Key:             NewAPIKeyToken(),
			ModelID:         ptrInt(2),
			Usage:           0.23,
			MaxRequests:     5000,
			CurrentRequests: 1150,
			Status:          models.KeyStatusActive,
			LastUsed:        ptrTime(now.Add(-time.Hour)),
		},
	}
	for i := range keys {
		k := keys[i]
		k.ID = s.allocID()
		k.CreatedAt = now
		s.apiKeys[k.ID] = &k
	}

	s.logger.Info("store seeded",
		zap.Int("models", len(s.models)),
		zap.Int("training_jobs", len(s.trainingJobs)),
		zap.Int("api_keys", len(s.apiKeys)))
}

func ptrTime(t time.Time) *time.Time { return &t }
