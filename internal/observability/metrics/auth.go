package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of registered users",
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	TokensIssuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tokens_issued_total",
			Help: "Total number of bearer tokens issued",
		},
	)

	TokenLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_lookups_total",
			Help: "Total number of bearer token lookups by result",
		},
		[]string{"result"},
	)
)
