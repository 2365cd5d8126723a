package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/yongjunp/miniter/internal/auth/service"
	"github.com/yongjunp/miniter/internal/common/clock"
	commoncrypto "github.com/yongjunp/miniter/internal/common/crypto"
	"github.com/yongjunp/miniter/internal/common/logger"
	userdomain "github.com/yongjunp/miniter/internal/user/domain"
	userrepo "github.com/yongjunp/miniter/internal/user/repository"
)

const testSecret = "test-secret-key-must-be-at-least-32-bytes-long"

type mockUserRepo struct {
	createFunc              func(ctx context.Context, user userdomain.User) (userdomain.ID, error)
	findByIDFunc            func(ctx context.Context, id userdomain.ID) (userdomain.User, error)
	findByEmailWithHashFunc func(ctx context.Context, email string) (userdomain.Credentials, error)
	existsFunc              func(ctx context.Context, id userdomain.ID) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user userdomain.User) (userdomain.ID, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return 1, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmailWithHash(ctx context.Context, email string) (userdomain.Credentials, error) {
	if m.findByEmailWithHashFunc != nil {
		return m.findByEmailWithHashFunc(ctx, email)
	}
	return userdomain.Credentials{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) Exists(ctx context.Context, id userdomain.ID) (bool, error) {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, id)
	}
	return false, nil
}

type mockHasher struct {
	hashFunc    func(password string) (string, error)
	compareFunc func(hash string, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hash string, password string) error {
	if m.compareFunc != nil {
		return m.compareFunc(hash, password)
	}
	return nil
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "jti-1", nil
}

func setupAuthService(t *testing.T) (*service.AuthService, *mockUserRepo, *mockHasher, *clock.MockClock) {
	t.Helper()

	repo := &mockUserRepo{}
	hasher := &mockHasher{}
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	log, err := logger.New("", "test", "error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	var gen commoncrypto.IDGenerator = &mockIDGenerator{}
	issuer := service.NewTokenIssuer(testSecret, gen, 24*time.Hour, clk)
	svc := service.NewAuthService(repo, hasher, issuer, log)

	return svc, repo, hasher, clk
}
