package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "client_api_request_duration_seconds",
			Help:       "Duration of portal API requests.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"resource"},
	)
	StoreRefreshesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_store_refreshes_total",
			Help: "Total number of full store refreshes from the server.",
		},
		[]string{"store"},
	)
	StaleFetchesDiscarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_stale_fetches_discarded_total",
			Help: "Total number of fetch results discarded because a newer fetch was issued.",
		},
		[]string{"store"},
	)
	OptimisticRollbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "client_optimistic_rollbacks_total",
			Help: "Total number of optimistic mutations reverted after a rejected confirmation.",
		},
	)
	ToastsShownCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_toasts_shown_total",
			Help: "Total number of toasts enqueued.",
		},
		[]string{"severity"},
	)
)

func StartMetricsServer(address string) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(StoreRefreshesCounter)
	prometheus.MustRegister(StaleFetchesDiscarded)
	prometheus.MustRegister(OptimisticRollbacks)
	prometheus.MustRegister(ToastsShownCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(address, nil))
	}()
}
