// Package metrics provides Prometheus metrics for the medbatch pipelines.
//
// The batch binaries have no exposition endpoint; counters are collected on a
// custom registry and summarized into the log at the end of a run.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the batch pipelines.
type Manager struct {
	namespace string
	subsystem string
	enabled   bool
	registry  prometheus.Registerer

	// Cleaner pipeline
	patientsLoaded    prometheus.Counter
	patientsRetained  prometheus.Counter
	duplicatesDropped prometheus.Counter
	underageFiltered  prometheus.Counter
	invalidAges       prometheus.Counter

	// Dosage pipeline
	dosagesComputed    prometheus.Counter
	dosagesSkipped     prometheus.Counter
	loadingDoses       prometheus.Counter
	unknownMedications prometheus.Counter
	totalMedicationMg  prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "medbatch",
		subsystem: "pipeline",
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.patientsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "patients_loaded_total",
		Help:      "Total number of raw patient records loaded from input files",
	})

	m.patientsRetained = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "patients_retained_total",
		Help:      "Total number of patient records surviving cleaning",
	})

	m.duplicatesDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicates_dropped_total",
		Help:      "Total number of field-wise duplicate records dropped",
	})

	m.underageFiltered = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "underage_filtered_total",
		Help:      "Total number of records filtered by the minimum-age rule",
	})

	m.invalidAges = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "invalid_ages_total",
		Help:      "Total number of ages that failed numeric coercion (indicates data quality)",
	})

	m.dosagesComputed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dosages_computed_total",
		Help:      "Total number of dosage requests successfully computed",
	})

	m.dosagesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dosages_skipped_total",
		Help:      "Total number of dosage requests skipped for missing required fields",
	})

	m.loadingDoses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "loading_doses_total",
		Help:      "Total number of loading doses applied",
	})

	m.unknownMedications = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unknown_medications_total",
		Help:      "Total number of requests naming a medication outside the factor table",
	})

	m.totalMedicationMg = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_medication_mg",
		Help:      "Aggregate final dosage of the most recent calculator run, in mg",
	})
}

// Package-level helpers operating on the global manager.

// RecordPatientsLoaded counts raw records read from an input file.
func RecordPatientsLoaded(n int) {
	if globalManager.enabled {
		globalManager.patientsLoaded.Add(float64(n))
	}
}

// RecordPatientsRetained counts records surviving cleaning.
func RecordPatientsRetained(n int) {
	if globalManager.enabled {
		globalManager.patientsRetained.Add(float64(n))
	}
}

// RecordDuplicateDropped counts a dropped field-wise duplicate.
func RecordDuplicateDropped() {
	if globalManager.enabled {
		globalManager.duplicatesDropped.Inc()
	}
}

// RecordUnderageFiltered counts a record removed by the age filter.
func RecordUnderageFiltered() {
	if globalManager.enabled {
		globalManager.underageFiltered.Inc()
	}
}

// RecordInvalidAge counts an age that failed numeric coercion.
func RecordInvalidAge() {
	if globalManager.enabled {
		globalManager.invalidAges.Inc()
	}
}

// RecordDosageComputed counts a successfully computed dosage.
func RecordDosageComputed() {
	if globalManager.enabled {
		globalManager.dosagesComputed.Inc()
	}
}

// RecordDosageSkipped counts a request skipped for a missing required field.
func RecordDosageSkipped() {
	if globalManager.enabled {
		globalManager.dosagesSkipped.Inc()
	}
}

// RecordLoadingDose counts an applied loading dose.
func RecordLoadingDose() {
	if globalManager.enabled {
		globalManager.loadingDoses.Inc()
	}
}

// RecordUnknownMedication counts a request with a medication outside the factor table.
func RecordUnknownMedication() {
	if globalManager.enabled {
		globalManager.unknownMedications.Inc()
	}
}

// UpdateTotalMedication sets the aggregate final dosage of the latest run.
func UpdateTotalMedication(mg float64) {
	if globalManager.enabled {
		globalManager.totalMedicationMg.Set(mg)
	}
}

// Snapshot returns the current value of every metric on the custom registry,
// keyed by fully qualified metric name. Used to log a run summary.
func Snapshot() (map[string]float64, error) {
	families, err := customRegistry.Gather()
	if err != nil {
		return nil, ErrGatherFailed
	}

	out := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				out[mf.GetName()] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}
