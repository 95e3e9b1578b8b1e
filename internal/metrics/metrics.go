// Package metrics holds the Prometheus instrumentation of the POI API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	POIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poi_requests_total",
			Help: "Total number of POI GeoJSON requests",
		},
		[]string{"dataset", "status"},
	)

	POIQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poi_query_duration_seconds",
			Help:    "Duration of POI queries in seconds, connect included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"dataset"},
	)

	POIFeaturesReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poi_features_returned",
			Help:    "Number of features per successful response",
			Buckets: []float64{0, 1, 10, 25, 50, 75, 100},
		},
		[]string{"dataset"},
	)

	ConfigErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "poi_config_errors_total",
			Help: "Requests rejected because the MySQL option file was missing or invalid",
		},
	)

	DBErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poi_db_errors_total",
			Help: "Database failures by dataset and stage (connect, query, scan, rows)",
		},
		[]string{"dataset", "stage"},
	)
)

// RecordRequest counts a finished request.
func RecordRequest(dataset string, status int) {
	POIRequests.WithLabelValues(dataset, strconv.Itoa(status)).Inc()
}

// RecordQuery observes a successful query and its result size.
func RecordQuery(dataset string, duration time.Duration, features int) {
	POIQueryDuration.WithLabelValues(dataset).Observe(duration.Seconds())
	POIFeaturesReturned.WithLabelValues(dataset).Observe(float64(features))
}

func RecordDBError(dataset, stage string) {
	DBErrors.WithLabelValues(dataset, stage).Inc()
}

func RecordConfigError() {
	ConfigErrors.Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
