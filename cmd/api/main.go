package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/yongjunp/miniter/internal/auth/http"
	authservice "github.com/yongjunp/miniter/internal/auth/service"
	"github.com/yongjunp/miniter/internal/common/clock"
	"github.com/yongjunp/miniter/internal/common/config"
	commoncrypto "github.com/yongjunp/miniter/internal/common/crypto"
	"github.com/yongjunp/miniter/internal/common/db"
	commonhttp "github.com/yongjunp/miniter/internal/common/http"
	"github.com/yongjunp/miniter/internal/common/logger"
	srv "github.com/yongjunp/miniter/internal/common/server"
	"github.com/yongjunp/miniter/internal/common/tokenauth"
	feedhttp "github.com/yongjunp/miniter/internal/feed/http"
	feedrepo "github.com/yongjunp/miniter/internal/feed/repository"
	feedservice "github.com/yongjunp/miniter/internal/feed/service"
	userrepo "github.com/yongjunp/miniter/internal/user/repository"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "api", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.LoadAPIConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	defer pool.Close()

	clk := clock.NewRealClock()
	hasher := &commoncrypto.BcryptHasher{}
	idGenerator := commoncrypto.NewUUIDGenerator()

	users := userrepo.NewPgRepository(pool)
	posts := feedrepo.NewPgPostRepository(pool)
	follows := feedrepo.NewPgFollowRepository(pool)

	tokenIssuer := authservice.NewTokenIssuer(cfg.JWTSecret, idGenerator, cfg.AccessTokenTTL, clk)
	verifier := tokenauth.NewVerifier(cfg.JWTSecret, clk)

	authSvc := authservice.NewAuthService(users, hasher, tokenIssuer, log)
	feedSvc := feedservice.NewFeedService(posts, follows, users, log)

	authHandler := authhttp.NewHandler(authSvc, cfg, log)
	feedHandler := feedhttp.NewHandler(feedSvc, verifier, cfg, log)

	mux := http.NewServeMux()
	mux.Handle("/sign_up", authHandler)
	mux.Handle("/login", authHandler)
	mux.Handle("/tweet", feedHandler)
	mux.Handle("/follow", feedHandler)
	mux.Handle("/unfollow", feedHandler)
	mux.Handle("/timeline/", feedHandler)
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.Handle("/metrics", promhttp.Handler())

	baseHandler := commonhttp.BuildBaseHandler(log, mux)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, baseHandler)

	srv.StartWithGracefulShutdown(server, log, "api")
}
