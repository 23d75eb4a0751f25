// Package metrics expone los contadores Prometheus de las operaciones del
// ledger. El endpoint /metrics se monta en el router HTTP.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados posibles de una operación del ledger.
const (
	ResultOK                = "ok"
	ResultValidation        = "validation"
	ResultNotFound          = "not_found"
	ResultInsufficientStock = "insufficient_stock"
	ResultConflict          = "conflict"
	ResultError             = "error"
)

// LedgerOperations cuenta operaciones del ledger por tipo y resultado.
var LedgerOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "reventa",
		Subsystem: "ledger",
		Name:      "operations_total",
		Help:      "Operaciones del ledger de inventario por tipo y resultado.",
	},
	[]string{"operation", "result"},
)

// Handler devuelve el handler HTTP estándar de Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
