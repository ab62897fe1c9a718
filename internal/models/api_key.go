package models

import "time"

// API key status values.
const (
	KeyStatusActive    = "active"
	KeyStatusInactive  = "inactive"
	KeyStatusSuspended = "suspended"
)

// ApiKey is a server-generated access token record. The token itself is
// immutable after creation and always carries the "wolf_" prefix. Keys are
// managed as data only; no route enforces them as credentials.
type ApiKey struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Key             string     `json:"key"`
	ModelID         *int       `json:"modelId"`
	Usage           float64    `json:"usage"`
	MaxRequests     int        `json:"maxRequests"`
	CurrentRequests int        `json:"currentRequests"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastUsed        *time.Time `json:"lastUsed"`
}

// ApiKeyUpdate carries the partial fields of a PUT /api/api-keys/:id body.
// The token is deliberately absent: it cannot be changed after creation.
type ApiKeyUpdate struct {
	Name            *string    `json:"name"`
	ModelID         *int       `json:"modelId"`
	Usage           *float64   `json:"usage"`
	MaxRequests     *int       `json:"maxRequests"`
	CurrentRequests *int       `json:"currentRequests"`
	Status          *string    `json:"status"`
	LastUsed        *time.Time `json:"lastUsed"`
}
