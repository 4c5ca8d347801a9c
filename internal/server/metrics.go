package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Application-level counters, served alongside fiberprometheus's request
// metrics at /metrics.
var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_login_attempts_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	likesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_likes_applied_total",
		Help: "Likes successfully recorded.",
	})

	likesRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_likes_removed_total",
		Help: "Likes successfully withdrawn.",
	})
)
