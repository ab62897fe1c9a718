package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	ProviderRequests *prometheus.CounterVec
	ProviderFailures *prometheus.CounterVec
	ChatFallbacks    prometheus.Counter
	TrainingEpochs   prometheus.Counter
}

var (
	once   sync.Once
	global *Metrics
)

func Global() *Metrics {
	once.Do(func() {
		global = &Metrics{
			RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "wolfai",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests served, by method and status",
			}, []string{"method", "status"}),
			ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "wolfai",
				Name:      "provider_requests_total",
				Help:      "Total outbound chat-completion requests, by provider",
			}, []string{"provider"}),
			ProviderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "wolfai",
				Name:      "provider_failures_total",
				Help:      "Total failed outbound chat-completion requests, by provider",
			}, []string{"provider"}),
			ChatFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "wolfai",
				Name:      "chat_fallbacks_total",
				Help:      "Total chat responses served from the canned generator",
			}),
			TrainingEpochs: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "wolfai",
				Name:      "training_epochs_total",
				Help:      "Total simulated training epochs executed",
			}),
		}
		prometheus.MustRegister(
			global.RequestsTotal,
			global.ProviderRequests,
			global.ProviderFailures,
			global.ChatFallbacks,
			global.TrainingEpochs,
		)
	})
	return global
}
