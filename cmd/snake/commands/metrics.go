package commands

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// serveMetrics exposes the prometheus registry on addr in the background.
func serveMetrics(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.WithField("address", addr).Info("metrics available at /metrics")
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.WithError(err).WithField("address", addr).Error("metrics server stopped")
		}
	}()
}
