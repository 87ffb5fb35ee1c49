package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// WebhooksTotal counts webhook deliveries by event kind.
	WebhooksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pesquisas_webhooks_total",
			Help: "Total de webhooks recebidos, por evento",
		},
		[]string{"event"},
	)

	// EvaluationsTotal counts served evaluation reports by tipo.
	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pesquisas_evaluations_total",
			Help: "Total de avaliações servidas, por tipo",
		},
		[]string{"tipo"},
	)

	// SupplierSearchesTotal counts supplier searches by supplier type.
	SupplierSearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pesquisas_supplier_searches_total",
			Help: "Total de buscas de fornecedores, por tipo",
		},
		[]string{"type"},
	)

	// BoardFetchErrors counts failed board API calls.
	BoardFetchErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pesquisas_board_fetch_errors_total",
			Help: "Total de falhas ao consultar o board",
		},
	)
)

var registered = false

// Register installs the collectors on the default registry. Safe to call once.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(WebhooksTotal, EvaluationsTotal, SupplierSearchesTotal, BoardFetchErrors)
	registered = true
}

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
