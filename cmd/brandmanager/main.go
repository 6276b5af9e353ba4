package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/xw1nchester/brand-management-backend/internal/app"
	"github.com/xw1nchester/brand-management-backend/internal/config"
	"go.uber.org/zap"
)

//	@title			Brand management API
//	@version		1.0
//	@description	Chains and their brands with soft deletion.
//	@BasePath		/api
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	defer log.Sync()

	log.Info("starting application", zap.String("env", cfg.Env))

	application := app.NewApp(log, *cfg)

	go application.MustRun()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sign := <-stop

	log.Info("stopping application", zap.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error("failed to stop server gracefully", zap.Error(err))
		return
	}

	log.Info("application stopped")
}

func setupLogger(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	switch env {
	case config.EnvLocal:
		log, err = zap.NewDevelopment()
	default:
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}

	return log
}
