package tokenauth

import (
	"errors"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yongjunp/miniter/internal/common/clock"
	commonerrors "github.com/yongjunp/miniter/internal/common/errors"
	"github.com/yongjunp/miniter/internal/observability/metrics"
)

// Identity is the resolved caller of an authenticated request. It is passed
// to handlers as an explicit argument, never stashed in shared state.
type Identity struct {
	UserID int64
}

type Verifier struct {
	secret []byte
	clock  clock.Clock
}

func NewVerifier(secret string, clk clock.Clock) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		clock:  clk,
	}
}

// Verify decodes and checks a token. Every failure mode (bad signature,
// malformed structure, wrong signing method, expired claim) maps to the same
// invalid-token error so callers leak nothing about which check failed.
func (v *Verifier) Verify(tokenString string) (Identity, error) {
	metrics.TokenValidationsTotal.Inc()

	identity, err := v.verify(tokenString)
	if err != nil {
		metrics.TokenValidationsFailed.Inc()
		return Identity{}, commonerrors.ErrInvalidToken.WithCause(err)
	}

	return identity, nil
}

func (v *Verifier) verify(tokenString string) (Identity, error) {
	parsed, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, errors.New("unexpected signing method")
			}
			return v.secret, nil
		},
		jwt.WithTimeFunc(v.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		if err == nil {
			err = errors.New("token is not valid")
		}
		return Identity{}, err
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims type")
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return Identity{}, errors.New("missing sub claim")
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Identity{}, errors.New("malformed sub claim")
	}

	return Identity{UserID: userID}, nil
}
