package models

import "time"

// ChatMessage stores one prompt/response exchange with a model. Messages are
// created only by the chat endpoint and always carry both the prompt and the
// generated response; there is no partial or streaming message state.
type ChatMessage struct {
	ID           int       `json:"id"`
	ModelID      int       `json:"modelId"`
	Message      string    `json:"message"`
	Response     string    `json:"response"`
	ResponseTime float64   `json:"responseTime"`
	CreatedAt    time.Time `json:"createdAt"`
}
