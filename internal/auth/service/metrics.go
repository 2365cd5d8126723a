package service

import (
	"github.com/yongjunp/miniter/internal/observability/metrics"
)

func incrementAccessTokensIssued() {
	metrics.AccessTokensIssued.Inc()
}

func incrementSignUps() {
	metrics.SignUpsTotal.Inc()
}

func incrementLoginAttempts(outcome string) {
	metrics.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
}
