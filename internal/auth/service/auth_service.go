package service

import (
	"context"
	"errors"

	commoncrypto "github.com/yongjunp/miniter/internal/common/crypto"
	commonerrors "github.com/yongjunp/miniter/internal/common/errors"
	"github.com/yongjunp/miniter/internal/common/logger"
	userdomain "github.com/yongjunp/miniter/internal/user/domain"
	userrepo "github.com/yongjunp/miniter/internal/user/repository"
)

type AuthService struct {
	repo   userrepo.Repository
	hasher commoncrypto.PasswordHasher
	tokens *TokenIssuer
	log    *logger.Logger
}

func NewAuthService(
	repo userrepo.Repository,
	hasher commoncrypto.PasswordHasher,
	tokens *TokenIssuer,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		log:    log,
	}
}

type SignUpInput struct {
	Name     string
	Email    string
	Profile  string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
}

func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (userdomain.User, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  input.Email,
		"action": "sign_up_attempt",
	}).Info("sign up attempt")

	if err := validateSignUp(input); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "sign_up_validation_failed",
		}).Warnf("sign up validation failed: %v", err)
		return userdomain.User{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "sign_up_hash_failed",
		}).Errorf("sign up failed: password hash error: %v", err)
		return userdomain.User{}, commonerrors.ErrInternalError.WithCause(err)
	}

	id, err := s.repo.Create(ctx, userdomain.User{
		Name:         input.Name,
		Email:        input.Email,
		Profile:      input.Profile,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, userrepo.ErrEmailAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  input.Email,
				"action": "sign_up_email_exists",
			}).Warn("sign up failed: email already registered")
			return userdomain.User{}, ErrEmailTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "sign_up_create_failed",
		}).Errorf("sign up failed: %v", err)
		return userdomain.User{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	incrementSignUps()
	s.log.WithFields(ctx, logger.Fields{
		"user_id": int64(id),
		"action":  "sign_up_success",
	}).Info("sign up success")

	return userdomain.User{
		ID:      id,
		Name:    input.Name,
		Email:   input.Email,
		Profile: input.Profile,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"email":  input.Email,
		"action": "login_attempt",
	}).Info("login attempt")

	if err := validateLogin(input); err != nil {
		incrementLoginAttempts("failure")
		return LoginResult{}, err
	}

	creds, err := s.repo.FindByEmailWithHash(ctx, input.Email)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"email":  input.Email,
				"action": "login_user_not_found",
			}).Warn("login failed: not found")
			incrementLoginAttempts("failure")
			return LoginResult{}, ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		return LoginResult{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	if err := s.hasher.Compare(creds.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"email":  input.Email,
			"action": "login_invalid_password",
		}).Warn("login failed: invalid password")
		incrementLoginAttempts("failure")
		return LoginResult{}, ErrInvalidCredentials
	}

	accessToken, _, err := s.tokens.IssueAccessToken(creds.ID)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": int64(creds.ID),
			"action":  "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		return LoginResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	incrementLoginAttempts("success")
	s.log.WithFields(ctx, logger.Fields{
		"user_id": int64(creds.ID),
		"action":  "login_success",
	}).Info("login success")

	return LoginResult{AccessToken: accessToken}, nil
}
