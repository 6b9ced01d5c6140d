package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/smmpanel/internal/config"
	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/fsdevblog/smmpanel/internal/pricing"
	"github.com/fsdevblog/smmpanel/internal/repository/pgrepo"
	"github.com/fsdevblog/smmpanel/internal/repository/rediscache"
	"github.com/fsdevblog/smmpanel/internal/service"
	"github.com/fsdevblog/smmpanel/internal/service/tokens"
	"github.com/fsdevblog/smmpanel/internal/transport/api"
	"github.com/fsdevblog/smmpanel/internal/transport/api/middlewares"
	"github.com/fsdevblog/smmpanel/internal/transport/provider"
	"github.com/fsdevblog/smmpanel/internal/transport/provider/client"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork := uow.NewUnitOfWork(conn)
	if regErr := pgrepo.RegisterRepositories(unitOfWork); regErr != nil {
		return fmt.Errorf("app run: %s", regErr.Error())
	}

	lockPool, lockErr := pgrepo.ConnectLockPool(notifyCtx, a.Config.DatabaseDSN, a.Config.LockPoolSize)
	if lockErr != nil {
		return fmt.Errorf("app run: %s", lockErr.Error())
	}
	defer lockPool.Close()

	catalog, catalogErr := pricing.LoadCatalog(a.Config.PricingFile)
	if catalogErr != nil {
		return fmt.Errorf("app run: %s", catalogErr.Error())
	}

	m := metrics.New()
	providerClient := client.New(a.Config.ProviderURL, a.Config.ProviderKey, a.Config.ProviderTimeout, a.Logger).
		SetRateLimit(a.Config.ProviderRPS).
		SetMetrics(m)

	factoryArgs := service.FactoryArgs{
		UOW:      unitOfWork,
		Locker:   uow.NewAdvisoryLocker(lockPool),
		Provider: providerClient,
		Catalog:  catalog,
		Metrics:  m,
		Settings: a.settings(),
		Logger:   a.Logger,
	}
	if a.Config.RedisURL != "" {
		redisClient, redisErr := rediscache.Connect(notifyCtx, a.Config.RedisURL)
		if redisErr != nil {
			return fmt.Errorf("app run: %s", redisErr.Error())
		}
		defer redisClient.Close()
		factoryArgs.Cache = rediscache.NewMarkupCache(redisClient, a.Config.MarkupCacheTTL)
	}

	services, sErr := service.Factory(factoryArgs)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	verifier, vErr := a.verifier(notifyCtx)
	if vErr != nil {
		return fmt.Errorf("app run: %s", vErr.Error())
	}

	router, rErr := api.New(api.RouterArgs{
		Logger:                a.Logger,
		Metrics:               m,
		Verifier:              verifier,
		RateLimit:             a.Config.APIRateLimit,
		RateBurst:             a.Config.APIRateBurst,
		ProviderTimeout:       a.Config.ProviderTimeout,
		WebhookSecret:         a.Config.WebhookSecret,
		MidtransServerKey:     a.Config.MidtransServerKey,
		AccountService:        services.UserService,
		CatalogService:        services.CatalogService,
		OrderService:          services.OrderService,
		LedgerService:         services.LedgerService,
		RewardService:         services.RewardService,
		PaymentService:        services.PaymentService,
		MarkupService:         services.MarkupService,
		ReconciliationService: services.ReconciliationService,
		AdminService:          services.AdminService,
	})
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	g, gCtx := errgroup.WithContext(notifyCtx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx) //nolint:wrapcheck
	})

	if a.Config.StatusSyncWorkers > 0 {
		processor := provider.New(services.OrderService, providerClient, a.Logger).
			SetSyncWorkers(a.Config.StatusSyncWorkers).
			SetInterval(a.Config.StatusSyncInterval)

		g.Go(func() error {
			processor.Run(gCtx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return notifyCtx.Err() //nolint:wrapcheck
}

func (a *App) settings() service.Settings {
	return service.Settings{
		DefaultMarkup:      a.Config.DefaultMarkup,
		ReferralCommission: a.Config.ReferralCommission,
		MinWithdrawal:      a.Config.MinWithdrawal,
		SignupCoins:        a.Config.SignupCoins,
		RewardCoins:        a.Config.RewardCoins,
		ProviderTimeout:    a.Config.ProviderTimeout,
	}
}

func (a *App) verifier(ctx context.Context) (middlewares.TokenVerifier, error) {
	if a.Config.AuthMode == config.AuthModeFirebase {
		v, err := tokens.NewFirebaseVerifier(ctx, a.Config.FirebaseCredentials, a.Config.AdminEmails)
		if err != nil {
			return nil, fmt.Errorf("firebase verifier: %s", err.Error())
		}
		return v, nil
	}
	return tokens.NewJWTVerifier([]byte(a.Config.JWTSecret)), nil
}
