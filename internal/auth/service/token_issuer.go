package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yongjunp/miniter/internal/common/clock"
	commoncrypto "github.com/yongjunp/miniter/internal/common/crypto"
	userdomain "github.com/yongjunp/miniter/internal/user/domain"
)

type TokenIssuer struct {
	jwtSecret      []byte
	idGenerator    commoncrypto.IDGenerator
	clock          clock.Clock
	accessTokenTTL time.Duration
}

func NewTokenIssuer(
	jwtSecret string,
	idGenerator commoncrypto.IDGenerator,
	accessTokenTTL time.Duration,
	clock clock.Clock,
) *TokenIssuer {
	return &TokenIssuer{
		jwtSecret:      []byte(jwtSecret),
		idGenerator:    idGenerator,
		clock:          clock,
		accessTokenTTL: accessTokenTTL,
	}
}

// IssueAccessToken signs a claim binding the user id to an absolute expiry.
// Validation lives in tokenauth; issuance and verification share only the
// secret, no server-side state.
func (ti *TokenIssuer) IssueAccessToken(userID userdomain.ID) (string, string, error) {
	jti, err := ti.idGenerator.NewID()
	if err != nil {
		return "", "", err
	}

	now := ti.clock.Now()
	expiresAt := now.Add(ti.accessTokenTTL)
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(int64(userID), 10),
		"jti": jti,
		"exp": expiresAt.Unix(),
		"iat": now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(ti.jwtSecret)
	if err != nil {
		return "", "", err
	}

	incrementAccessTokensIssued()
	return tokenString, jti, nil
}
