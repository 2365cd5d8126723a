package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yongjunp/miniter/internal/auth/service"
	commonerrors "github.com/yongjunp/miniter/internal/common/errors"
	userdomain "github.com/yongjunp/miniter/internal/user/domain"
	userrepo "github.com/yongjunp/miniter/internal/user/repository"
)

func TestAuthService_SignUp_Success(t *testing.T) {
	svc, repo, _, _ := setupAuthService(t)

	var created userdomain.User
	repo.createFunc = func(ctx context.Context, user userdomain.User) (userdomain.ID, error) {
		created = user
		return 5, nil
	}

	user, err := svc.SignUp(context.Background(), service.SignUpInput{
		Name:     "yongjun",
		Email:    "yongjun@example.com",
		Profile:  "first user",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if user.ID != 5 {
		t.Errorf("expected user id 5, got %d", user.ID)
	}

	if user.PasswordHash != "" {
		t.Error("returned user must not carry the password hash")
	}

	if created.PasswordHash == "" || created.PasswordHash == "password123" {
		t.Errorf("persisted user must carry a hash, got %q", created.PasswordHash)
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	svc, repo, _, _ := setupAuthService(t)

	repo.createFunc = func(ctx context.Context, user userdomain.User) (userdomain.ID, error) {
		return 0, userrepo.ErrEmailAlreadyExists
	}

	_, err := svc.SignUp(context.Background(), service.SignUpInput{
		Name:     "yongjun",
		Email:    "taken@example.com",
		Password: "password123",
	})

	if err == nil {
		t.Fatal("expected error")
	}

	domainErr, ok := commonerrors.AsDomainError(err)
	if !ok || domainErr.Code() != "EMAIL_TAKEN" {
		t.Errorf("expected EMAIL_TAKEN error, got %v", err)
	}
	if domainErr.HTTPStatus() != 400 {
		t.Errorf("expected HTTP status 400, got %d", domainErr.HTTPStatus())
	}
}

func TestAuthService_SignUp_InvalidEmail(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, err := svc.SignUp(context.Background(), service.SignUpInput{
		Name:     "yongjun",
		Email:    "not-an-email",
		Password: "password123",
	})

	if err == nil {
		t.Fatal("expected validation error")
	}

	if domainErr, ok := commonerrors.AsDomainError(err); !ok || domainErr.Code() != "VALIDATION_EMAIL" {
		t.Errorf("expected VALIDATION_EMAIL error, got %v", err)
	}
}

func TestAuthService_SignUp_ShortPassword(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, err := svc.SignUp(context.Background(), service.SignUpInput{
		Name:     "yongjun",
		Email:    "yongjun@example.com",
		Password: "short",
	})

	if err == nil {
		t.Fatal("expected validation error")
	}

	if domainErr, ok := commonerrors.AsDomainError(err); !ok || domainErr.Code() != "VALIDATION_PASSWORD" {
		t.Errorf("expected VALIDATION_PASSWORD error, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, hasher, _ := setupAuthService(t)

	repo.findByEmailWithHashFunc = func(ctx context.Context, email string) (userdomain.Credentials, error) {
		if email != "yongjun@example.com" {
			t.Errorf("expected lookup by yongjun@example.com, got %s", email)
		}
		return userdomain.Credentials{ID: 5, PasswordHash: "hashed:password123"}, nil
	}

	hasher.compareFunc = func(hash string, password string) error {
		if hash != "hashed:password123" || password != "password123" {
			return errors.New("password mismatch")
		}
		return nil
	}

	result, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "yongjun@example.com",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.AccessToken == "" {
		t.Error("expected access token to be set")
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, repo, _, _ := setupAuthService(t)

	repo.findByEmailWithHashFunc = func(ctx context.Context, email string) (userdomain.Credentials, error) {
		return userdomain.Credentials{}, userrepo.ErrUserNotFound
	}

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assertInvalidCredentials(t, err)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, hasher, _ := setupAuthService(t)

	repo.findByEmailWithHashFunc = func(ctx context.Context, email string) (userdomain.Credentials, error) {
		return userdomain.Credentials{ID: 5, PasswordHash: "hashed:password123"}, nil
	}

	hasher.compareFunc = func(hash string, password string) error {
		return errors.New("password mismatch")
	}

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "yongjun@example.com",
		Password: "wrong-password",
	})

	assertInvalidCredentials(t, err)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), service.LoginInput{})

	assertInvalidCredentials(t, err)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func assertInvalidCredentials(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	domainErr, ok := commonerrors.AsDomainError(err)
	if !ok || domainErr.Code() != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS error, got %v", err)
	}
	if ok && domainErr.HTTPStatus() != 401 {
		t.Errorf("expected HTTP status 401, got %d", domainErr.HTTPStatus())
	}
}
