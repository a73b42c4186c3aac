package stats

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/neonleaf/neonleaf-go/lib"
	"github.com/neonleaf/neonleaf-go/lib/hooks/events"
	"github.com/neonleaf/neonleaf-go/lib/settings"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	loadedDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "neonleaf",
			Name:      "loaded_documents",
			Help:      "Number of documents currently held in memory",
		},
	)

	documentMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "neonleaf",
			Name:      "document_mutations_total",
			Help:      "Applied document mutations by operation",
		},
		[]string{"op"},
	)
)

func Init(store *lib.InitStore) {
	checks := []Checker{
		DBChecker{store.Store},
		EditorChecker{store.Manager},
	}

	store.C.Get("/health", Handler(
		settings.BuildVersion(),
		"neonleaf-api",
		checks,
	))

	if store.RetrievedSettings.EnableMetrics {
		store.Hooks.EnqueueDocumentChangedHook(func(ctx *events.DocumentChangedContext) {
			documentMutations.WithLabelValues(string(ctx.Op)).Inc()
			loadedDocuments.Set(float64(store.Manager.LoadedCount()))
		})

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			loadedDocuments,
			documentMutations,
		)
		handler := promhttp.HandlerFor(
			reg,
			promhttp.HandlerOpts{},
		)
		store.C.Get("/metrics", adaptor.HTTPHandler(handler))
	}
}
