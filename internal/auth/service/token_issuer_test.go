package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/yongjunp/miniter/internal/auth/service"
	"github.com/yongjunp/miniter/internal/common/clock"
)

func TestTokenIssuer_IssueAccessToken_Success(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	gen := &mockIDGenerator{newIDFunc: func() (string, error) {
		return "jti-123", nil
	}}

	issuer := service.NewTokenIssuer(testSecret, gen, 24*time.Hour, clk)

	token, jti, err := issuer.IssueAccessToken(42)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if token == "" {
		t.Error("expected token to be set")
	}

	if jti != "jti-123" {
		t.Errorf("expected jti jti-123, got %s", jti)
	}
}

func TestTokenIssuer_IssueAccessToken_IDGenerationError(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	gen := &mockIDGenerator{newIDFunc: func() (string, error) {
		return "", errors.New("id generation failed")
	}}

	issuer := service.NewTokenIssuer(testSecret, gen, 24*time.Hour, clk)

	_, _, err := issuer.IssueAccessToken(42)

	if err == nil {
		t.Fatal("expected error")
	}
}
