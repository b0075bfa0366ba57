package ftracker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var reportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ftracker",
	Name:      "reports_total",
	Help:      "Number of workout reports rendered by training type.",
}, []string{"training_type"})
