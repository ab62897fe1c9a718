package models

// Request bodies bound by the API layer. Binding tags drive the structured
// validation errors returned on 400.

type CreateModelRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Description *string `json:"description"`
}

type CreateTrainingJobRequest struct {
	ModelID      int     `json:"modelId" binding:"required"`
	TotalEpochs  int     `json:"totalEpochs" binding:"required,gt=0"`
	LearningRate float64 `json:"learningRate" binding:"required,gt=0"`
	BatchSize    int     `json:"batchSize" binding:"required,gt=0"`
}

// CreateApiKeyRequest deliberately has no key field: any client-supplied key
// material is ignored and the token is generated server-side.
type CreateApiKeyRequest struct {
	Name        string `json:"name" binding:"required"`
	ModelID     *int   `json:"modelId"`
	MaxRequests *int   `json:"maxRequests" binding:"omitempty,gt=0"`
}

type ChatRequest struct {
	ModelID int    `json:"modelId" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// StatsResponse is the dashboard summary returned by GET /api/stats.
type StatsResponse struct {
	ActiveModels int `json:"activeModels"`
	TrainingJobs int `json:"trainingJobs"`
	ApiKeys      int `json:"apiKeys"`
	Requests     int `json:"requests"`
}
