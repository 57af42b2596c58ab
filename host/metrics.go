package host

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	combinesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "greetmem",
		Subsystem: "host",
		Name:      "combines_total",
		Help:      "Total combine invocations.",
	})

	combineErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "greetmem",
		Subsystem: "host",
		Name:      "combine_errors_total",
		Help:      "Combine invocations refused or failed.",
	})

	combineBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "greetmem",
		Subsystem: "host",
		Name:      "combine_bytes_total",
		Help:      "Total message bytes written by combine.",
	})

	memorySizeBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "greetmem",
		Subsystem: "host",
		Name:      "guest_memory_size_bytes",
		Help:      "Guest linear memory size. Constant by contract; a change is a capacity violation.",
	})
)
