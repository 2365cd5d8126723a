package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TweetsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tweets_created_total",
			Help: "Total number of tweets created",
		},
	)

	FollowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "follows_total",
			Help: "Total number of follow operations",
		},
	)

	UnfollowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "unfollows_total",
			Help: "Total number of unfollow operations",
		},
	)

	TimelineQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "timeline_queries_total",
			Help: "Total number of timeline reads",
		},
	)

	TimelineSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "timeline_size",
			Help:    "Number of posts returned per timeline read",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)
