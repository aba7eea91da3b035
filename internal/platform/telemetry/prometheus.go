package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreStats reports current store sizes.
type StoreStats interface {
	QuoteCount() int
	CategoryCount() int
}

// AccountStats reports the number of registered users.
type AccountStats interface {
	UserCount() int
}

// RegisterStoreCollectors exposes store sizes as gauges on reg, evaluated at scrape time.
func RegisterStoreCollectors(reg prometheus.Registerer, quotes StoreStats, accounts AccountStats) error {
	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "quotevault",
			Name:      "quotes_total",
			Help:      "Quotes held in the in-memory store.",
		}, func() float64 { return float64(quotes.QuoteCount()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "quotevault",
			Name:      "categories_total",
			Help:      "Distinct category labels in the quote index.",
		}, func() float64 { return float64(quotes.CategoryCount()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "quotevault",
			Name:      "users_total",
			Help:      "Registered accounts.",
		}, func() float64 { return float64(accounts.UserCount()) }),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}
