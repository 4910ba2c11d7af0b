package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cache_operations_total",
			Help: "Catalog cache operations",
		},
		[]string{"op"}, // hit|miss|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_cache_size",
			Help: "Number of entries currently in the catalog cache",
		},
	)
)

var (
	CatalogFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_fetches_total",
			Help: "Outbound catalog API calls",
		},
		[]string{"endpoint", "outcome"}, // outcome: ok|error
	)
	StoreWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_store_writes_total",
			Help: "Persistent collection writes to the key-value store",
		},
		[]string{"collection"},
	)
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_orders_created_total",
			Help: "Orders appended to the order history",
		},
	)
)

func MustRegister() {
	prometheus.MustRegister(CacheOps, CacheSize, CatalogFetches, StoreWrites, OrdersCreated)
}
