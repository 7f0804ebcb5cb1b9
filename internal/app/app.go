package app

import (
	"net/http"
	"time"

	"church-app-go/internal/config"
	"church-app-go/internal/db"
	congregationdomain "church-app-go/internal/domain/congregation"
	demodatadomain "church-app-go/internal/domain/demodata"
	congregationrepo "church-app-go/internal/repository/postgres/congregation"
	demodatarepo "church-app-go/internal/repository/postgres/demodata"
	"church-app-go/internal/transport/httpserver"
	"church-app-go/internal/transport/httpserver/handler"
	"church-app-go/pkg/logger"

	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	demoService := demodatadomain.NewService(demodatarepo.NewPostgres(dbConn), log)
	congService := congregationdomain.NewService(congregationrepo.NewPostgres(dbConn))

	handlers := handler.New(demoService, congService, cfg.Demo, log)

	log.Info("app: initializing http server")
	router := httpserver.NewRouter(cfg, handlers)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

// ShutdownTimeout is how long a graceful stop may take before the server is
// abandoned.
func (a *App) ShutdownTimeout() time.Duration {
	return a.cfg.ShutdownTimeout
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
