package http

import (
	"net/http"

	"github.com/yongjunp/miniter/internal/auth/service"
	"github.com/yongjunp/miniter/internal/common/config"
	commonhttp "github.com/yongjunp/miniter/internal/common/http"
	"github.com/yongjunp/miniter/internal/common/logger"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Profile  string `json:"profile"`
	Password string `json:"password"`
}

type signUpResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type Handler struct {
	auth *service.AuthService
	errs *commonhttp.ErrorHandler
	log  *logger.Logger
	mux  *http.ServeMux
}

func NewHandler(auth *service.AuthService, cfg config.APIConfig, log *logger.Logger) http.Handler {
	h := &Handler{
		auth: auth,
		errs: commonhttp.NewErrorHandler(log),
		log:  log,
		mux:  http.NewServeMux(),
	}

	post := commonhttp.RequireMethod(http.MethodPost)
	timeout := commonhttp.WithTimeout(cfg.RequestTimeout)

	h.mux.HandleFunc("/sign_up", post(timeout(h.signUp)))
	h.mux.HandleFunc("/login", post(timeout(h.login)))

	return h.mux
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("sign up failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	user, err := h.auth.SignUp(r.Context(), service.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Profile:  req.Profile,
		Password: req.Password,
	})
	if err != nil {
		h.errs.HandleError(w, r, err)
		return
	}

	// The password hash never leaves the service layer.
	commonhttp.WriteJSON(w, http.StatusOK, signUpResponse{
		ID:      int64(user.ID),
		Name:    user.Name,
		Email:   user.Email,
		Profile: user.Profile,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("login failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	result, err := h.auth.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.errs.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, loginResponse{AccessToken: result.AccessToken})
}
