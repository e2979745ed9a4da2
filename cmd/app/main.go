package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	"todo-go-backend/config"
	"todo-go-backend/pkg/adapter/controller"
	"todo-go-backend/pkg/infrastructure/datastore"
	"todo-go-backend/pkg/infrastructure/logger"
	"todo-go-backend/pkg/infrastructure/router"
	"todo-go-backend/pkg/registry"
	"todo-go-backend/pkg/util/environment"

	"github.com/hashicorp/go-multierror"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	l, err := logger.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	db := newDBClient(l)
	if config.C.Database.Driver == datastore.DriverSQLite {
		if err := datastore.CreateSchema(context.Background(), db); err != nil {
			l.Fatal("failed to create schema", zap.Error(err))
		}
	}
	ctrl := newController(db)

	opts := router.Options{}
	if !environment.IsProduction() {
		opts.AllowOrigins = []string{"*"}
	}
	e := router.New(ctrl, l, opts)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + config.C.Server.Address
		l.Info("server started", zap.String("address", addr), zap.String("env", config.C.AppEnv))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	l.Info("shutting down")

	timeout := time.Duration(config.C.Server.ShutdownTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var result *multierror.Error
	if err := e.Shutdown(shutdownCtx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := db.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		l.Error("shutdown finished with errors", zap.Error(err))
		return
	}
	l.Info("server exited")
}

func newDBClient(l *zap.Logger) *sqlx.DB {
	db, err := datastore.NewClient()
	if err != nil {
		l.Fatal("Failed to open db connection", zap.Error(err))
	}
	return db
}

func newController(db *sqlx.DB) controller.Controller {
	r := registry.New(db)
	return r.NewController()
}
