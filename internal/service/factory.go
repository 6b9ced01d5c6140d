package service

import (
	"fmt"

	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/fsdevblog/smmpanel/internal/pricing"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService           *UserService
	MarkupService         *MarkupService
	CatalogService        *CatalogService
	OrderService          *OrderService
	LedgerService         *LedgerService
	PaymentService        *PaymentService
	RewardService         *RewardService
	ReconciliationService *ReconciliationService
	AdminService          *AdminService
}

type FactoryArgs struct {
	UOW      uow.UOW
	Locker   uow.Locker
	Provider ProviderGateway
	// Cache может быть nil, тогда правила наценки читаются из базы на каждую котировку.
	Cache    MarkupCache
	Catalog  *pricing.Catalog
	Metrics  *metrics.Metrics
	Settings Settings
	Logger   *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(args.UOW, args.Settings, args.Logger)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	markupService, markupServiceErr := NewMarkupService(args.UOW, args.Cache, args.Logger)
	if markupServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", markupServiceErr.Error())
	}

	resolver := pricing.NewResolver(args.Catalog, args.Settings.DefaultMarkup)
	catalogService := NewCatalogService(args.Provider, markupService, resolver)

	orderService, orderServiceErr := NewOrderService(OrderServiceArgs{
		UOW:      args.UOW,
		Locker:   args.Locker,
		Provider: args.Provider,
		Catalog:  catalogService,
		Metrics:  args.Metrics,
		Settings: args.Settings,
		Logger:   args.Logger,
	})
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	ledgerService, ledgerServiceErr := NewLedgerService(args.UOW, args.Metrics, args.Settings, args.Logger)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	rewardService, rewardServiceErr := NewRewardService(RewardServiceArgs{
		UOW:      args.UOW,
		Locker:   args.Locker,
		Provider: args.Provider,
		Catalog:  args.Catalog,
		Metrics:  args.Metrics,
		Settings: args.Settings,
		Logger:   args.Logger,
	})
	if rewardServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", rewardServiceErr.Error())
	}

	reconService, reconServiceErr := NewReconciliationService(args.UOW, args.Provider, args.Settings, args.Logger)
	if reconServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", reconServiceErr.Error())
	}

	adminService, adminServiceErr := NewAdminService(args.UOW, args.Provider)
	if adminServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", adminServiceErr.Error())
	}

	return &AppServices{
		UserService:           userService,
		MarkupService:         markupService,
		CatalogService:        catalogService,
		OrderService:          orderService,
		LedgerService:         ledgerService,
		PaymentService:        NewPaymentService(args.UOW, args.Metrics, args.Logger),
		RewardService:         rewardService,
		ReconciliationService: reconService,
		AdminService:          adminService,
	}, nil
}
