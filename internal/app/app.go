package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/restaurant-inventory/internal/config"
	"github.com/you-humble/restaurant-inventory/internal/transport/http/health"
	httpmw "github.com/you-humble/restaurant-inventory/internal/transport/http/middleware"
	"github.com/you-humble/restaurant-inventory/platform/closer"
	"github.com/you-humble/restaurant-inventory/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		_ = closer.CloseAll(context.Background())
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initCollections,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := safeInit(ctx, initFn); err != nil {
			return err
		}
	}
	return nil
}

// safeInit turns a panicking DI getter into a startup error.
func safeInit(ctx context.Context, initFn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("init: %v", r)
		}
	}()

	return initFn(ctx)
}

func (a *app) initConfig(_ context.Context) error {
	if err := config.Load(); err != nil {
		// Logger defaults so the failure is visible.
		_ = logger.Init("info", false)
		return err
	}
	return nil
}

func (a *app) initLogger(_ context.Context) error {
	if err := logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	); err != nil {
		_ = logger.Init("info", false)
		return err
	}
	return nil
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	// Registered first so it runs last.
	closer.AddNamed("Logger", func(context.Context) error {
		_ = logger.Sync()
		return nil
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

// initCollections connects to Mongo and ensures indexes before the first request.
func (a *app) initCollections(ctx context.Context) error {
	a.di.InventoryCollection(ctx)
	a.di.PurchaseOrdersCollection(ctx)
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		httpmw.RequestFields,
		httpmw.Logging,
		middleware.Recoverer,
	)

	a.di.RestaurantHandler(ctx).Register(r)

	h := health.NewHealthHandler(a.di.StorePing(ctx))
	r.Get("/health", h.Live)
	r.Get("/ready", h.Ready)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 restaurant server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(ctx, "🛑 Server shutdown...")

		//nolint:contextcheck
		sdCtx, cancel := context.WithTimeout(
			context.Background(), // do not inherit cancellation from ctx
			config.C().Server.ShutdownTimeout(),
		)
		defer cancel()

		return a.server.Shutdown(sdCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(),
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
