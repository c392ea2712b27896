package skill

import "github.com/prometheus/client_golang/prometheus"

var requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "skill_requests_total",
	Help: "Number of voice host requests handled, by request type and outcome",
}, []string{"request_type", "outcome"})

func init() {
	prometheus.MustRegister(requestCount)
}

var knownTypes = map[string]bool{
	LaunchRequest:       true,
	IntentRequest:       true,
	SessionEndedRequest: true,
}

func recordRequest(requestType, outcome string) {
	// Bound label cardinality; request types come from the network.
	if !knownTypes[requestType] {
		requestType = "other"
	}
	requestCount.With(prometheus.Labels{"request_type": requestType, "outcome": outcome}).Inc()
}
