package ai

import (
	"context"
	"fmt"
	"time"

	"wolf-ai/internal/groq"
	"wolf-ai/internal/metrics"
	"wolf-ai/internal/models"
	"wolf-ai/internal/xai"

	"go.uber.org/zap"
)

// Provider is an outbound chat-completion service. The system prompt names
// the platform and the model answering.
type Provider interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// Response is the result of one generation: the text plus the wall-clock
// seconds it took to produce, fallback included.
type Response struct {
	Response     string
	ResponseTime float64
}

// Config holds the provider credentials. An empty key disables the
// corresponding provider branch; with all three empty every request is
// answered by the canned generator.
type Config struct {
	GroqKey string
	XAIKey  string
	KRKRKey string

	// Base URL overrides for tests.
	GroqBaseURL string
	XAIBaseURL  string
}

// Client produces a response for a (message, model) pair. It dispatches to
// an external provider by model family and falls back to canned text on any
// failure; it never returns an error to its caller.
type Client struct {
	groq    Provider
	xai     Provider
	krkrKey string
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewClient constructs the client, initializing only the providers whose
// credentials are configured.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	c := &Client{
		krkrKey: cfg.KRKRKey,
		logger:  logger,
		metrics: metrics.Global(),
	}

	if cfg.GroqKey != "" {
		gc, err := groq.NewClient(groq.Config{APIKey: cfg.GroqKey, BaseURL: cfg.GroqBaseURL}, logger)
		if err != nil {
			logger.Warn("Failed to initialize Groq client", zap.Error(err))
		} else {
			c.groq = gc
		}
	}

	if cfg.XAIKey != "" {
		xc, err := xai.NewClient(xai.Config{APIKey: cfg.XAIKey, BaseURL: cfg.XAIBaseURL}, logger)
		if err != nil {
			logger.Warn("Failed to initialize xAI client", zap.Error(err))
		} else {
			c.xai = xc
		}
	}

	if c.groq == nil && c.xai == nil && c.krkrKey == "" {
		logger.Info("No provider credentials configured, all chat responses will use the canned generator")
	}

	return c
}

// GenerateResponse dispatches by model family: llama2 goes to Groq, mistral
// to xAI, anything else to the KRKR provider when its credential is set.
// Missing credentials, unmatched families and provider errors all resolve to
// the canned generator, with the elapsed time measured up to that point.
func (c *Client) GenerateResponse(ctx context.Context, message string, model *models.Model) Response {
	start := time.Now()

	text, err := c.dispatch(ctx, message, model)
	if err != nil {
		c.logger.Warn("Provider call failed, using canned response",
			zap.String("model_type", model.Type),
			zap.Error(err))
		c.metrics.ChatFallbacks.Inc()
		text = cannedResponse(message, model)
	}

	return Response{
		Response:     text,
		ResponseTime: time.Since(start).Seconds(),
	}
}

func (c *Client) dispatch(ctx context.Context, message string, model *models.Model) (string, error) {
	switch {
	case models.ParseModelType(model.Type) == models.TypeLlama2 && c.groq != nil:
		c.metrics.ProviderRequests.WithLabelValues("groq").Inc()
		text, err := c.groq.Chat(ctx, groqSystemPrompt(model), message)
		if err != nil {
			c.metrics.ProviderFailures.WithLabelValues("groq").Inc()
		}
		return text, err
	case models.ParseModelType(model.Type) == models.TypeMistral && c.xai != nil:
		c.metrics.ProviderRequests.WithLabelValues("xai").Inc()
		text, err := c.xai.Chat(ctx, xaiSystemPrompt(model), message)
		if err != nil {
			c.metrics.ProviderFailures.WithLabelValues("xai").Inc()
		}
		return text, err
	case c.krkrKey != "":
		// KRKR integration is a placeholder; it resolves to canned text.
		return cannedResponse(message, model), nil
	default:
		return "", errNoProvider
	}
}

var errNoProvider = fmt.Errorf("no provider configured for model type")

func groqSystemPrompt(model *models.Model) string {
	return fmt.Sprintf("أنت نموذج ذكاء اصطناعي متخصص في Wolf AI Platform. اسمك %s. أجب باللغة العربية بطريقة احترافية ومفيدة.", model.Name)
}

func xaiSystemPrompt(model *models.Model) string {
	return fmt.Sprintf("أنت نموذج ذكاء اصطناعي متطور في منصة Wolf AI. اسمك %s. أجب باللغة العربية بشكل ذكي ومفيد.", model.Name)
}
