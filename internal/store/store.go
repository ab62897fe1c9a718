package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"wolf-ai/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned for any read, update or delete that references an
// identifier with no record behind it. Handlers map it to HTTP 404.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a uniqueness constraint (username, email)
// would be violated.
var ErrConflict = errors.New("record already exists")

const (
	defaultChatLimit    = 50
	defaultMaxRequests  = 1000
	initialModelVersion = "v1.0"
	apiKeyPrefix        = "wolf_"
)

// Store is the sole source of truth for all entity state. It lives entirely
// in process memory and is lost on restart. All five entity kinds share one
// identifier counter, so ids are unique and monotonic process-wide.
//
// Unlike the request path alone, the training simulator also writes through
// this store from a background goroutine, so every operation takes the lock.
type Store struct {
	mu sync.RWMutex

	users        map[int]*models.User
	models       map[int]*models.Model
	trainingJobs map[int]*models.TrainingJob
	apiKeys      map[int]*models.ApiKey
	chatMessages map[int]*models.ChatMessage

	nextID int
	logger *zap.Logger
}

// New creates a Store seeded with the fixture data. Seeding happens exactly
// once, here.
func New(logger *zap.Logger) *Store {
	s := &Store{
		users:        make(map[int]*models.User),
		models:       make(map[int]*models.Model),
		trainingJobs: make(map[int]*models.TrainingJob),
		apiKeys:      make(map[int]*models.ApiKey),
		chatMessages: make(map[int]*models.ChatMessage),
		nextID:       1,
		logger:       logger,
	}
	s.seed()
	return s
}

// allocID hands out the next identifier. Callers must hold the write lock.
func (s *Store) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

// NewAPIKeyToken generates an opaque prefixed token. Tokens are never
// client-supplied.
func NewAPIKeyToken() string {
	return apiKeyPrefix + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Users

func (s *Store) GetUser(id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser stores a new account. Username and email are unique.
func (s *Store) CreateUser(username, passwordHash, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return nil, ErrConflict
		}
	}
	u := &models.User{
		ID:        s.allocID(),
		Username:  username,
		Password:  passwordHash,
		Email:     email,
		CreatedAt: time.Now(),
	}
	s.users[u.ID] = u
	cp := *u
	return &cp, nil
}

// Models

func (s *Store) ListModels() []*models.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Model, 0, len(s.models))
	for _, m := range s.models {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetModel(id int) (*models.Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.models[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m
	return &cp, nil
}

// CreateModel applies the creation defaults: status inactive, no accuracy
// yet, version v1.0.
func (s *Store) CreateModel(req models.CreateModelRequest) *models.Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	m := &models.Model{
		ID:          s.allocID(),
		Name:        req.Name,
		Type:        req.Type,
		Status:      models.ModelStatusInactive,
		Accuracy:    nil,
		Version:     initialModelVersion,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.models[m.ID] = m
	cp := *m
	return &cp
}

func (s *Store) UpdateModel(id int, upd models.ModelUpdate) (*models.Model, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.models[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Type != nil {
		m.Type = *upd.Type
	}
	if upd.Status != nil {
		m.Status = *upd.Status
	}
	if upd.Accuracy != nil {
		m.Accuracy = upd.Accuracy
	}
	if upd.Version != nil {
		m.Version = *upd.Version
	}
	if upd.Description != nil {
		m.Description = upd.Description
	}
	m.UpdatedAt = time.Now()
	cp := *m
	return &cp, nil
}

// DeleteModel removes the model only. Jobs, keys and messages referencing it
// keep their modelId; readers treat the dangling reference as a normal case.
func (s *Store) DeleteModel(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.models[id]; !ok {
		return false
	}
	delete(s.models, id)
	return true
}

// Training jobs

func (s *Store) ListTrainingJobs() []*models.TrainingJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.TrainingJob, 0, len(s.trainingJobs))
	for _, j := range s.trainingJobs {
		cp := *j
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetTrainingJob(id int) (*models.TrainingJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.trainingJobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (s *Store) ListTrainingJobsByModel(modelID int) []*models.TrainingJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.TrainingJob, 0)
	for _, j := range s.trainingJobs {
		if j.ModelID == modelID {
			cp := *j
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) CreateTrainingJob(req models.CreateTrainingJobRequest) *models.TrainingJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	j := &models.TrainingJob{
		ID:           s.allocID(),
		ModelID:      req.ModelID,
		Status:       models.JobStatusPending,
		Progress:     0,
		Epoch:        0,
		TotalEpochs:  req.TotalEpochs,
		LearningRate: req.LearningRate,
		BatchSize:    req.BatchSize,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.trainingJobs[j.ID] = j
	cp := *j
	return &cp
}

func (s *Store) UpdateTrainingJob(id int, upd models.TrainingJobUpdate) (*models.TrainingJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.trainingJobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Status != nil {
		j.Status = *upd.Status
	}
	if upd.Progress != nil {
		j.Progress = *upd.Progress
	}
	if upd.Epoch != nil {
		j.Epoch = *upd.Epoch
	}
	if upd.TotalEpochs != nil {
		j.TotalEpochs = *upd.TotalEpochs
	}
	if upd.LearningRate != nil {
		j.LearningRate = *upd.LearningRate
	}
	if upd.BatchSize != nil {
		j.BatchSize = *upd.BatchSize
	}
	if upd.Loss != nil {
		j.Loss = upd.Loss
	}
	if upd.Accuracy != nil {
		j.Accuracy = upd.Accuracy
	}
	if upd.EstimatedTimeRemaining != nil {
		j.EstimatedTimeRemaining = upd.EstimatedTimeRemaining
	}
	if upd.GPUUsage != nil {
		j.GPUUsage = upd.GPUUsage
	}
	j.UpdatedAt = time.Now()
	cp := *j
	return &cp, nil
}

// API keys

func (s *Store) ListApiKeys() []*models.ApiKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ApiKey, 0, len(s.apiKeys))
	for _, k := range s.apiKeys {
		cp := *k
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetApiKey(id int) (*models.ApiKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	k, ok := s.apiKeys[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *k
	return &cp, nil
}

func (s *Store) GetApiKeyByToken(token string) (*models.ApiKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, k := range s.apiKeys {
		if k.Key == token {
			cp := *k
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// CreateApiKey generates the token server-side and forces status to active.
func (s *Store) CreateApiKey(req models.CreateApiKeyRequest) *models.ApiKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	maxRequests := defaultMaxRequests
	if req.MaxRequests != nil {
		maxRequests = *req.MaxRequests
	}
	k := &models.ApiKey{
		ID:              s.allocID(),
		Name:            req.Name,
		Key:             NewAPIKeyToken(),
		ModelID:         req.ModelID,
		Usage:           0,
		MaxRequests:     maxRequests,
		CurrentRequests: 0,
		Status:          models.KeyStatusActive,
		CreatedAt:       time.Now(),
		LastUsed:        nil,
	}
	s.apiKeys[k.ID] = k
	cp := *k
	return &cp
}

// UpdateApiKey merges the supplied fields. The token itself is immutable and
// has no corresponding update field.
func (s *Store) UpdateApiKey(id int, upd models.ApiKeyUpdate) (*models.ApiKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k, ok := s.apiKeys[id]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Name != nil {
		k.Name = *upd.Name
	}
	if upd.ModelID != nil {
		k.ModelID = upd.ModelID
	}
	if upd.Usage != nil {
		k.Usage = *upd.Usage
	}
	if upd.MaxRequests != nil {
		k.MaxRequests = *upd.MaxRequests
	}
	if upd.CurrentRequests != nil {
		k.CurrentRequests = *upd.CurrentRequests
	}
	if upd.Status != nil {
		k.Status = *upd.Status
	}
	if upd.LastUsed != nil {
		k.LastUsed = upd.LastUsed
	}
	cp := *k
	return &cp, nil
}

func (s *Store) DeleteApiKey(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apiKeys[id]; !ok {
		return false
	}
	delete(s.apiKeys, id)
	return true
}

// Chat messages

// ChatMessages returns the messages for a model, newest first, truncated to
// limit. A limit <= 0 falls back to the default of 50.
func (s *Store) ChatMessages(modelID, limit int) []*models.ChatMessage {
	if limit <= 0 {
		limit = defaultChatLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.ChatMessage, 0)
	for _, m := range s.chatMessages {
		if m.ModelID == modelID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CreateChatMessage stores a prompt/response pair atomically.
func (s *Store) CreateChatMessage(modelID int, message, response string, responseTime float64) *models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := &models.ChatMessage{
		ID:           s.allocID(),
		ModelID:      modelID,
		Message:      message,
		Response:     response,
		ResponseTime: responseTime,
		CreatedAt:    time.Now(),
	}
	s.chatMessages[m.ID] = m
	cp := *m
	return &cp
}

// Stats aggregates the dashboard counters across all entity kinds.
func (s *Store) Stats() models.StatsResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var stats models.StatsResponse
	for _, m := range s.models {
		if m.Status == models.ModelStatusActive {
			stats.ActiveModels++
		}
	}
	for _, j := range s.trainingJobs {
		if j.Status == models.JobStatusRunning {
			stats.TrainingJobs++
		}
	}
	for _, k := range s.apiKeys {
		if k.Status == models.KeyStatusActive {
			stats.ApiKeys++
		}
		stats.Requests += k.CurrentRequests
	}
	return stats
}
