package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	chatRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthbot_chat_requests_total",
			Help: "Total chat requests by match outcome",
		},
		[]string{"outcome"},
	)

	topicsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "healthbot_topics_loaded",
			Help: "Number of knowledge-base topics loaded at startup",
		},
	)

	initOnce sync.Once
)

// Init registers the collectors. Must be called once at startup.
func Init(topicCount int) {
	initOnce.Do(func() {
		prometheus.MustRegister(chatRequests, topicsLoaded)
		topicsLoaded.Set(float64(topicCount))
	})
}

// RecordChat records the outcome of one chat request
// ("matched", "default", or "invalid").
func RecordChat(outcome string) {
	chatRequests.WithLabelValues(outcome).Inc()
}
