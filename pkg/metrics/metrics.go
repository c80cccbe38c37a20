package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	renovationPlanner = "renovation_planner"

	// Estimation metrics
	estimationsTotal     = "estimations_total"
	estimationConfidence = "estimation_confidence"

	// Report metrics
	reportsTotal = "reports_total"

	// Labels
	outcomeLabel = "outcome"
	formatLabel  = "format"
)

// Estimation outcomes
const (
	OutcomeEstimated = "estimated"
	OutcomeEmpty     = "empty"
	OutcomeFailed    = "failed"
)

/**
* Metrics definition
**/
var estimationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: renovationPlanner,
		Name:      estimationsTotal,
		Help:      "number of estimations partitioned by outcome",
	},
	[]string{outcomeLabel},
)

var estimationConfidenceMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Subsystem: renovationPlanner,
		Name:      estimationConfidence,
		Help:      "confidence score of the computed estimations",
		Buckets:   []float64{20, 35, 50, 65, 80, 95},
	},
)

var reportsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: renovationPlanner,
		Name:      reportsTotal,
		Help:      "number of rendered estimation reports partitioned by format",
	},
	[]string{formatLabel},
)

// RecordEstimation counts an estimation. The confidence is observed for non empty estimations only.
func RecordEstimation(outcome string, confidence int) {
	estimationsTotalMetric.With(prometheus.Labels{outcomeLabel: outcome}).Inc()
	if outcome == OutcomeEstimated {
		estimationConfidenceMetric.Observe(float64(confidence))
	}
}

func IncreaseReportsTotalMetric(format string) {
	reportsTotalMetric.With(prometheus.Labels{formatLabel: format}).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(estimationsTotalMetric)
	prometheus.MustRegister(estimationConfidenceMetric)
	prometheus.MustRegister(reportsTotalMetric)
}
