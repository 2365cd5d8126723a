package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/yongjunp/miniter/internal/common/config"
	commonhttp "github.com/yongjunp/miniter/internal/common/http"
	"github.com/yongjunp/miniter/internal/common/logger"
	"github.com/yongjunp/miniter/internal/common/tokenauth"
	"github.com/yongjunp/miniter/internal/feed/service"
)

type tweetRequest struct {
	Tweet string `json:"tweet"`
}

type followRequest struct {
	Follow int64 `json:"follow"`
}

type unfollowRequest struct {
	Unfollow int64 `json:"unfollow"`
}

type timelineEntry struct {
	UserID int64  `json:"user_id"`
	Tweet  string `json:"tweet"`
}

type timelineResponse struct {
	UserID   int64           `json:"user_id"`
	Timeline []timelineEntry `json:"timeline"`
}

type Handler struct {
	feed *service.FeedService
	errs *commonhttp.ErrorHandler
	log  *logger.Logger
	mux  *http.ServeMux
}

func NewHandler(
	feed *service.FeedService,
	verifier *tokenauth.Verifier,
	cfg config.APIConfig,
	log *logger.Logger,
) http.Handler {
	h := &Handler{
		feed: feed,
		errs: commonhttp.NewErrorHandler(log),
		log:  log,
		mux:  http.NewServeMux(),
	}

	post := commonhttp.RequireMethod(http.MethodPost)
	get := commonhttp.RequireMethod(http.MethodGet)
	timeout := commonhttp.WithTimeout(cfg.RequestTimeout)
	auth := tokenauth.Require(verifier, log)

	h.mux.HandleFunc("/tweet", post(timeout(auth(h.tweet))))
	h.mux.HandleFunc("/follow", post(timeout(auth(h.follow))))
	h.mux.HandleFunc("/unfollow", post(timeout(auth(h.unfollow))))
	h.mux.HandleFunc("/timeline/", get(timeout(h.timeline)))

	return h.mux
}

func (h *Handler) tweet(w http.ResponseWriter, r *http.Request, id tokenauth.Identity) {
	var req tweetRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("tweet failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	if _, err := h.feed.Tweet(r.Context(), id.UserID, req.Tweet); err != nil {
		h.errs.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request, id tokenauth.Identity) {
	var req followRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("follow failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	if err := h.feed.Follow(r.Context(), id.UserID, req.Follow); err != nil {
		h.errs.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request, id tokenauth.Identity) {
	var req unfollowRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("unfollow failed: invalid json: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, "")
		return
	}

	if err := h.feed.Unfollow(r.Context(), id.UserID, req.Unfollow); err != nil {
		h.errs.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseTimelineUserID(r.URL.Path)
	if !ok {
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidUserIDFormat, "invalid user id", nil, "")
		return
	}

	entries, err := h.feed.Timeline(r.Context(), userID)
	if err != nil {
		h.errs.HandleError(w, r, err)
		return
	}

	// An empty timeline is a valid result, not an error; the wire slice is
	// never null.
	timeline := make([]timelineEntry, 0, len(entries))
	for _, e := range entries {
		timeline = append(timeline, timelineEntry{UserID: e.AuthorID, Tweet: e.Text})
	}

	commonhttp.WriteJSON(w, http.StatusOK, timelineResponse{
		UserID:   userID,
		Timeline: timeline,
	})
}

func parseTimelineUserID(path string) (int64, bool) {
	rest := strings.TrimPrefix(path, "/timeline/")
	if rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}

	userID, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}

	return userID, true
}
