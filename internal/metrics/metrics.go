package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RPCCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "rpc_calls_total", Help: "RPC requests issued against the cluster"},
		[]string{"method"},
	)
	TransactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "transactions_total", Help: "Transactions by outcome"},
		[]string{"outcome"}, // submitted|confirmed|failed
	)
)

func init() {
	prometheus.MustRegister(RPCCallsTotal, TransactionsTotal)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
