package service

import (
	commonerrors "github.com/yongjunp/miniter/internal/common/errors"
)

var (
	ErrTweetTooLong = commonerrors.NewDomainError(
		"TWEET_TOO_LONG",
		commonerrors.CategoryValidation,
		400,
		"tweet must be at most 300 characters",
	)

	ErrUnknownUser = commonerrors.NewDomainError(
		"UNKNOWN_USER",
		commonerrors.CategoryValidation,
		400,
		"user does not exist",
	)
)
