package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics records catalog browse and price resolution activity.
type CatalogMetrics struct {
	browseDuration *prometheus.HistogramVec
	browseTotal    *prometheus.CounterVec
	quoteTotal     *prometheus.CounterVec
}

// NewCatalogMetrics registers the catalog metrics on the provided registerer.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	if reg == nil {
		return &CatalogMetrics{}
	}
	browseDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_browse_duration_seconds",
		Help:    "Duration of catalog browse requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"sort"})
	browseTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_browse_total",
		Help: "Catalog browse requests by outcome.",
	}, []string{"outcome"})
	quoteTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_quote_total",
		Help: "Variant price resolutions by pricing path.",
	}, []string{"path"})
	reg.MustRegister(browseDuration, browseTotal, quoteTotal)
	return &CatalogMetrics{
		browseDuration: browseDuration,
		browseTotal:    browseTotal,
		quoteTotal:     quoteTotal,
	}
}

// ObserveBrowse records the duration for one browse request.
func (c *CatalogMetrics) ObserveBrowse(sort string, duration time.Duration) {
	if c == nil || c.browseDuration == nil {
		return
	}
	c.browseDuration.WithLabelValues(normalizeLabel(sort)).Observe(duration.Seconds())
}

// IncBrowse increments the browse counter for the given outcome.
func (c *CatalogMetrics) IncBrowse(outcome string) {
	if c == nil || c.browseTotal == nil {
		return
	}
	c.browseTotal.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncQuote increments the resolution counter for the given pricing path.
func (c *CatalogMetrics) IncQuote(path string) {
	if c == nil || c.quoteTotal == nil {
		return
	}
	c.quoteTotal.WithLabelValues(normalizeLabel(path)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
