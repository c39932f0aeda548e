package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"bitbucket.org/Amartha/go-recon-matching/internal/models"
)

const (
	RunModePreview = "preview"
	RunModeCommit  = "commit"
)

type MatchingPrometheusMetrics struct {
	runDurationHist      *prometheus.HistogramVec
	matchesCounter       *prometheus.CounterVec
	transactionsCounter  *prometheus.CounterVec
	skippedBucketCounter *prometheus.CounterVec
	conflictCounter      prometheus.Counter
}

func newMatchingPrometheusMetrics(reg prometheus.Registerer) *MatchingPrometheusMetrics {
	m := &MatchingPrometheusMetrics{
		runDurationHist: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "matching_run_duration_seconds",
				Help:    "Duration of matching runs in seconds.",
				Buckets: []float64{0.001, 0.010, 0.050, 0.100, 0.250, 0.500, 1, 2, 5, 10, 30, 60},
			},
			[]string{"mode", "success"},
		),
		matchesCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matching_matches_total",
				Help: "Matches created, by match type.",
			},
			[]string{"match_type"},
		),
		transactionsCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matching_transactions_total",
				Help: "Transactions moved to matched, by match type.",
			},
			[]string{"match_type"},
		),
		skippedBucketCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matching_skipped_buckets_total",
				Help: "Date buckets not searched because they exceeded the size limit.",
			},
			[]string{"rule_type"},
		),
		conflictCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "matching_commit_conflicts_total",
				Help: "Commits aborted by a concurrent modification.",
			},
		),
	}

	reg.MustRegister(
		m.runDurationHist,
		m.matchesCounter,
		m.transactionsCounter,
		m.skippedBucketCounter,
		m.conflictCounter,
	)

	return m
}

// ObserveRun records one preview or commit. Stats may be nil when the run
// failed before selection finished. All Observe methods accept a nil
// receiver.
func (m *MatchingPrometheusMetrics) ObserveRun(startTime time.Time, mode string, stats *models.RunStats, processErr error) {
	if m == nil {
		return
	}
	m.runDurationHist.WithLabelValues(mode, strconv.FormatBool(processErr == nil)).Observe(time.Since(startTime).Seconds())
	if stats == nil {
		return
	}
	for _, rs := range stats.ByRule {
		if rs.SkippedBuckets > 0 {
			m.skippedBucketCounter.WithLabelValues(string(rs.RuleType)).Add(float64(rs.SkippedBuckets))
		}
	}
}

func (m *MatchingPrometheusMetrics) ObserveMatches(matchType models.MatchType, matches, transactions int) {
	if m == nil {
		return
	}
	m.matchesCounter.WithLabelValues(string(matchType)).Add(float64(matches))
	m.transactionsCounter.WithLabelValues(string(matchType)).Add(float64(transactions))
}

func (m *MatchingPrometheusMetrics) ObserveConflict() {
	if m == nil {
		return
	}
	m.conflictCounter.Inc()
}
