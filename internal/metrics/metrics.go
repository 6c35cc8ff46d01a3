// Package metrics expõe os contadores Prometheus da API em /metrics.
// Todos os métodos aceitam receptor nil.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/restaurant-dre-api/pkg/middleware"
)

const namespace = "restaurant_dre"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Tipos de relatório
const (
	ReportDRE       = "dre"
	ReportBreakeven = "breakeven"
	ReportText      = "export_txt"
	ReportPDF       = "export_pdf"
)

type Metrics struct {
	registry       *prometheus.Registry
	reports        *prometheus.CounterVec
	reportDuration *prometheus.HistogramVec
	rankingRuns    *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
}

// New cria um registro próprio com as métricas da aplicação e as do runtime Go
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Relatórios gerados por tipo e resultado.",
		}, []string{"kind", "outcome"}),
		reportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_duration_seconds",
			Help:      "Tempo para montar um relatório, incluindo a leitura do banco.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		rankingRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_runs_total",
			Help:      "Execuções do ranking de restaurantes.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP por método e status.",
		}, []string{"method", "status"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.reports,
		m.reportDuration,
		m.rankingRuns,
		m.httpRequests,
	)

	return m
}

// ObserveReport registra um relatório gerado e o tempo gasto desde start
func (m *Metrics) ObserveReport(kind string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.reports.WithLabelValues(kind, outcome(err)).Inc()
	m.reportDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveRankingRun(err error) {
	if m == nil {
		return
	}
	m.rankingRuns.WithLabelValues(outcome(err)).Inc()
}

// Handler expõe o registro no formato de texto do Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware conta as requisições HTTP pelo status devolvido
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := middleware.NewStatusRecorder(w)
			next.ServeHTTP(recorder, r)
			m.httpRequests.WithLabelValues(r.Method, strconv.Itoa(recorder.Status())).Inc()
		})
	}
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
