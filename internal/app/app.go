package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/carrental/internal/config"
	"github.com/GlebRadaev/carrental/internal/handlers"
	"github.com/GlebRadaev/carrental/internal/pg"
	"github.com/GlebRadaev/carrental/internal/repo"
	"github.com/GlebRadaev/carrental/internal/service"
	"github.com/GlebRadaev/carrental/internal/service/authservice"
	"github.com/GlebRadaev/carrental/pkg/clock"
	"github.com/GlebRadaev/carrental/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	g     *errgroup.Group
	ready bool
}

func New() *Application {
	return &Application{}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, clock.NewReal())
	a.api = handlers.New(a.srv)

	if err := a.bootstrapAdmin(ctx); err != nil {
		zap.L().Error("admin bootstrap failed: ", zap.Error(err))
		return fmt.Errorf("can't bootstrap admin: %w", err)
	}

	a.startHTTPServer(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// bootstrapAdmin makes sure the configured administrator login exists and
// the ownership row is seeded. A previously transferred admin is left
// alone.
func (a *Application) bootstrapAdmin(ctx context.Context) error {
	admin, err := a.repo.UserRepo.FindByLogin(ctx, a.cfg.AdminLogin)
	if err != nil {
		return err
	}
	if admin == nil {
		admin, err = a.srv.AuthService.Register(ctx, a.cfg.AdminLogin, a.cfg.AdminPassword, "Admin", "Admin")
		if err != nil && !errors.Is(err, authservice.ErrLoginTaken) {
			return err
		}
	}

	adminID, err := a.repo.AdminRepo.GetAdminID(ctx)
	if err != nil {
		return err
	}
	if adminID != 0 {
		return nil
	}
	return a.repo.AdminRepo.SetAdminID(ctx, admin.ID)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}

	a.g, ctx = errgroup.WithContext(ctx)

	a.g.Go(func() error {
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	a.g.Go(func() error {
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})
}

func (a *Application) Wait(ctx context.Context) error {
	<-ctx.Done()
	if a.g == nil {
		return nil
	}
	if err := a.g.Wait(); err != nil {
		zap.L().Error(err.Error())
		return err
	}
	return nil
}
