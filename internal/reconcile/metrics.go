package reconcile

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitions     *prometheus.CounterVec //nolint:gochecknoglobals
	transitionsOnce sync.Once              //nolint:gochecknoglobals
)

// TransitionCounter returns the relation_transitions_total collector, registering it on first use.
func TransitionCounter() *prometheus.CounterVec {
	transitionsOnce.Do(func() {
		transitions = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relation_transitions_total",
				Help: "Number of activate and deactivate calls, by relation and outcome.",
			},
			[]string{"relation", "outcome"},
		)
	})

	return transitions
}

func observe(relation string, o Outcome) {
	TransitionCounter().WithLabelValues(relation, string(o)).Inc()
}
