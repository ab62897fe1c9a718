package models

import "time"

// ModelType is the closed set of model families the platform knows how to
// route. Unknown tags coming from clients are folded to TypeCustom so they
// remain storable.
type ModelType string

const (
	TypeLlama2    ModelType = "llama2"
	TypeMistral   ModelType = "mistral"
	TypeCodeLlama ModelType = "codellama"
	TypeGPT       ModelType = "gpt"
	TypeClaude    ModelType = "claude"
	TypeCustom    ModelType = "custom"
)

// ParseModelType maps a raw type tag to a known family.
func ParseModelType(raw string) ModelType {
	switch ModelType(raw) {
	case TypeLlama2, TypeMistral, TypeCodeLlama, TypeGPT, TypeClaude:
		return ModelType(raw)
	default:
		return TypeCustom
	}
}

// Model status values.
const (
	ModelStatusInactive = "inactive"
	ModelStatusActive   = "active"
	ModelStatusTraining = "training"
)

// Model represents an AI model record managed by the platform.
type Model struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Accuracy    *float64  `json:"accuracy"`
	Version     string    `json:"version"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ModelUpdate carries the partial fields of a PUT /api/models/:id body.
// Nil means "leave unchanged".
type ModelUpdate struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Status      *string  `json:"status"`
	Accuracy    *float64 `json:"accuracy"`
	Version     *string  `json:"version"`
	Description *string  `json:"description"`
}
