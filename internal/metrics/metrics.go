package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Logins = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "budokan_logins_total",
			Help: "Number of successful logins",
		},
	)

	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "budokan_registrations_total",
			Help: "Number of accounts created",
		},
	)

	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "budokan_orders_created_total",
			Help: "Number of orders created from carts",
		},
	)

	Subscriptions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "budokan_membership_subscriptions_total",
			Help: "Number of membership subscribe actions",
		},
	)

	SessionRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "budokan_session_requests_total",
			Help: "Number of help-session requests filed",
		},
	)

	SessionDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budokan_session_decisions_total",
			Help: "Number of session approvals and rejections",
		},
		[]string{"decision"},
	)
)

func Register() {
	prometheus.MustRegister(Logins, Registrations, OrdersCreated, Subscriptions, SessionRequests, SessionDecisions)
}
