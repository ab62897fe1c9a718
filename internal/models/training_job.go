package models

import "time"

// Training job status values.
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// TrainingJob represents one simulated model-training run. ModelID is stored
// but not referentially enforced: deleting the model leaves the job dangling
// and readers must tolerate that.
type TrainingJob struct {
	ID                     int       `json:"id"`
	ModelID                int       `json:"modelId"`
	Status                 string    `json:"status"`
	Progress               float64   `json:"progress"`
	Epoch                  int       `json:"epoch"`
	TotalEpochs            int       `json:"totalEpochs"`
	LearningRate           float64   `json:"learningRate"`
	BatchSize              int       `json:"batchSize"`
	Loss                   *float64  `json:"loss"`
	Accuracy               *float64  `json:"accuracy"`
	EstimatedTimeRemaining *int      `json:"estimatedTimeRemaining"`
	GPUUsage               *float64  `json:"gpuUsage"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// TrainingJobUpdate carries the partial fields of a PUT /api/training-jobs/:id
// body. Nil means "leave unchanged".
type TrainingJobUpdate struct {
	Status                 *string  `json:"status"`
	Progress               *float64 `json:"progress"`
	Epoch                  *int     `json:"epoch"`
	TotalEpochs            *int     `json:"totalEpochs"`
	LearningRate           *float64 `json:"learningRate"`
	BatchSize              *int     `json:"batchSize"`
	Loss                   *float64 `json:"loss"`
	Accuracy               *float64 `json:"accuracy"`
	EstimatedTimeRemaining *int     `json:"estimatedTimeRemaining"`
	GPUUsage               *float64 `json:"gpuUsage"`
}
