package service

import (
	"github.com/yongjunp/miniter/internal/observability/metrics"
)

func incrementTweetsCreated() {
	metrics.TweetsCreated.Inc()
}

func incrementFollows() {
	metrics.FollowsTotal.Inc()
}

func incrementUnfollows() {
	metrics.UnfollowsTotal.Inc()
}

func observeTimeline(size int) {
	metrics.TimelineQueriesTotal.Inc()
	metrics.TimelineSize.Observe(float64(size))
}
