package service

import (
	commonerrors "github.com/yongjunp/miniter/internal/common/errors"
)

var (
	// Bad email and bad password deliberately share one error so login
	// responses leak nothing about which check failed.
	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		401,
		"invalid email or password",
	)

	ErrEmailTaken = commonerrors.NewDomainError(
		"EMAIL_TAKEN",
		commonerrors.CategoryConflict,
		400,
		"email already registered",
	)

	ErrValidationName = commonerrors.NewDomainError(
		"VALIDATION_NAME",
		commonerrors.CategoryValidation,
		400,
		"name must be between 1 and 64 characters",
	)

	ErrValidationEmail = commonerrors.NewDomainError(
		"VALIDATION_EMAIL",
		commonerrors.CategoryValidation,
		400,
		"email must be a valid address",
	)

	ErrValidationProfile = commonerrors.NewDomainError(
		"VALIDATION_PROFILE",
		commonerrors.CategoryValidation,
		400,
		"profile must be at most 500 characters",
	)

	ErrValidationPassword = commonerrors.NewDomainError(
		"VALIDATION_PASSWORD",
		commonerrors.CategoryValidation,
		400,
		"password must be between 8 and 72 characters",
	)
)
