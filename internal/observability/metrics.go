package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthFailures counts failed authentication attempts by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devlink_auth_failures_total",
		Help: "Total number of failed authentication attempts by reason",
	}, []string{"reason"})

	// GithubLookups counts GitHub repo lookups by outcome.
	GithubLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devlink_github_lookups_total",
		Help: "Total number of GitHub repository lookups by outcome",
	}, []string{"outcome"})

	// PostsCreated counts created posts.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devlink_posts_created_total",
		Help: "Total number of posts created",
	})
)
