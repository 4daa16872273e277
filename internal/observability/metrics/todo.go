package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TodosCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "todos_created_total",
			Help: "Total number of created todo items",
		},
	)

	TodosUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "todos_updated_total",
			Help: "Total number of updated todo items",
		},
	)

	TodosDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "todos_deleted_total",
			Help: "Total number of deleted todo items",
		},
	)
)
