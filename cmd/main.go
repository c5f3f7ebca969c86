package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/codigofacilito/blog-backend/internal/api/http/httpctx"
	"github.com/codigofacilito/blog-backend/internal/api/http/router"
	"github.com/codigofacilito/blog-backend/internal/config"
	"github.com/codigofacilito/blog-backend/internal/logger"
	"github.com/codigofacilito/blog-backend/internal/model"
	"github.com/codigofacilito/blog-backend/internal/repository/postgres"
	"github.com/codigofacilito/blog-backend/internal/seed"
	"github.com/codigofacilito/blog-backend/internal/server"
	"github.com/codigofacilito/blog-backend/internal/service"
	"github.com/codigofacilito/blog-backend/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	userService := service.NewUser(userRepo, tokenManager, logger)
	postService := service.NewPost(postRepo, userRepo, logger)

	seeder := seed.New(userRepo, cfg.Seed, logger)
	if err := seeder.Run(ctx); err != nil {
		logger.Fatal("failed to seed accounts", "error", err)
	}

	ctxMgr := httpctx.NewManager()
	r := router.New(userService, postService, tokenManager, userRepo, ctxMgr, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
