package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal             = "http_requests_total"
	HTTPRequestDurationSeconds   = "http_request_duration_seconds"
	ContractCallTotal            = "contract_call_total"
	MetadataFetchTotal           = "metadata_fetch_total"
	BlockchainTransactionFailure = "blockchain_transaction_failure"
	GameActivityTotal            = "game_activity_total"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"method", "status_code"}),
		ContractCallTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ContractCallTotal,
			Help: "Count of all batched contract reads",
		}, []string{"method", "status"}),
		MetadataFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetadataFetchTotal,
			Help: "Count of all off-chain metadata fetches",
		}, []string{"kind", "status"}),
		BlockchainTransactionFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: BlockchainTransactionFailure,
			Help: "Count of all blockchain transaction failure",
		}, []string{"method"}),
		GameActivityTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: GameActivityTotal,
			Help: "Count of all successful joins and endorsements",
		}, []string{"action"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"method", "status_code"}),
	}
)

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}

// ObserveContractCall counts one contract read by its method name.
func ObserveContractCall(method string, err error) {
	PromCounters[ContractCallTotal].WithLabelValues(method, statusLabel(err)).Inc()
}

func ObserveMetadataFetch(kind string, err error) {
	PromCounters[MetadataFetchTotal].WithLabelValues(kind, statusLabel(err)).Inc()
}
