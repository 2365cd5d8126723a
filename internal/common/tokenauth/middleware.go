package tokenauth

import (
	"net/http"

	commonhttp "github.com/yongjunp/miniter/internal/common/http"
	"github.com/yongjunp/miniter/internal/common/logger"
)

// AuthenticatedHandler receives the already-resolved identity of the caller.
type AuthenticatedHandler func(w http.ResponseWriter, r *http.Request, id Identity)

// Require resolves the Authorization header (the raw token, no scheme
// prefix) and short-circuits with 401 before the handler runs.
func Require(v *Verifier, log *logger.Logger) func(AuthenticatedHandler) http.HandlerFunc {
	return func(next AuthenticatedHandler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" {
				log.Warnf("auth failed path=%s: missing authorization header", r.URL.Path)
				commonhttp.WriteErrorEnvelope(w, http.StatusUnauthorized, commonhttp.CodeMissingAuthorization, "missing authorization", nil, "")
				return
			}

			identity, err := v.Verify(raw)
			if err != nil {
				log.Warnf("auth failed path=%s: %v", r.URL.Path, err)
				commonhttp.WriteErrorEnvelope(w, http.StatusUnauthorized, commonhttp.CodeInvalidToken, "invalid token", nil, "")
				return
			}

			next(w, r, identity)
		}
	}
}
