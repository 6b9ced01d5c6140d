package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// AdminService выборки и ручные правки для админки.
type AdminService struct {
	provider       ProviderGateway
	userRepo       UserRepository
	orderRepo      OrderRepository
	profitRepo     ProfitRepository
	fundRepo       FundRequestRepository
	withdrawalRepo WithdrawalRepository
	reconRepo      ReconciliationRepository
}

func NewAdminService(u uow.UOW, provider ProviderGateway) (*AdminService, error) {
	s := AdminService{provider: provider}
	var err error
	if s.userRepo, err = repoFrom[UserRepository](u, repoargs.UserRepoName); err != nil {
		return nil, err
	}
	if s.orderRepo, err = repoFrom[OrderRepository](u, repoargs.OrderRepoName); err != nil {
		return nil, err
	}
	if s.profitRepo, err = repoFrom[ProfitRepository](u, repoargs.ProfitRepoName); err != nil {
		return nil, err
	}
	if s.fundRepo, err = repoFrom[FundRequestRepository](u, repoargs.FundRequestRepoName); err != nil {
		return nil, err
	}
	if s.withdrawalRepo, err = repoFrom[WithdrawalRepository](u, repoargs.WithdrawalRepoName); err != nil {
		return nil, err
	}
	if s.reconRepo, err = repoFrom[ReconciliationRepository](u, repoargs.ReconciliationRepoName); err != nil {
		return nil, err
	}
	return &s, nil
}

type DashboardStats struct {
	Users                  repoargs.UserTotals
	Orders                 repoargs.OrderTotals
	TotalProfit            decimal.Decimal
	PendingFundRequests    int64
	PendingWithdrawals     int64
	PendingReconciliations int64
}

// Stats собирает агрегаты параллельно, каждый запрос независим.
func (s *AdminService) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		totals, err := s.userRepo.Totals(gCtx)
		if err == nil {
			stats.Users = *totals
		}
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		totals, err := s.orderRepo.Totals(gCtx)
		if err == nil {
			stats.Orders = *totals
		}
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		stats.TotalProfit, err = s.profitRepo.Total(gCtx)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		stats.PendingFundRequests, err = s.fundRepo.CountByStatus(gCtx, domain.FundRequestPending)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		stats.PendingWithdrawals, err = s.withdrawalRepo.CountByStatus(gCtx, domain.WithdrawalPending)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		stats.PendingReconciliations, err = s.reconRepo.CountByStatus(gCtx, domain.ReconciliationPending)
		return err //nolint:wrapcheck
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collecting stats: %w", err)
	}
	return &stats, nil
}

func (s *AdminService) Users(ctx context.Context, page repoargs.Page) ([]repoargs.UserWithStats, error) {
	users, err := s.userRepo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

type UserDetail struct {
	User   *domain.User
	Orders []domain.Order
}

func (s *AdminService) UserDetail(ctx context.Context, userID string, page repoargs.Page) (*UserDetail, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting user detail: %w", userNotFound(err))
	}
	orders, err := s.orderRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("getting user detail: %w", err)
	}
	return &UserDetail{User: user, Orders: orders}, nil
}

// SetBalances выставляет баланс и монеты юзера. Отрицательные значения запрещены.
func (s *AdminService) SetBalances(
	ctx context.Context,
	userID string,
	balance decimal.Decimal,
	coins int64,
) (*domain.User, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("setting balances: %w", domain.NewInvalidRequestError("balance", "must not be negative"))
	}
	if err := validatePlaces("balance", balance); err != nil {
		return nil, fmt.Errorf("setting balances: %w", err)
	}
	if coins < 0 {
		return nil, fmt.Errorf("setting balances: %w", domain.NewInvalidRequestError("coins", "must not be negative"))
	}
	user, err := s.userRepo.SetBalances(ctx, userID, balance, coins)
	if err != nil {
		return nil, fmt.Errorf("setting balances: %w", userNotFound(err))
	}
	return user, nil
}

func (s *AdminService) Orders(ctx context.Context, page repoargs.Page) ([]domain.Order, error) {
	orders, err := s.orderRepo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}

type ProfitReport struct {
	Total   decimal.Decimal
	Entries []domain.ProfitEntry
}

func (s *AdminService) Profit(ctx context.Context, page repoargs.Page) (*ProfitReport, error) {
	total, err := s.profitRepo.Total(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting profit: %w", err)
	}
	entries, err := s.profitRepo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("getting profit: %w", err)
	}
	return &ProfitReport{Total: total, Entries: entries}, nil
}

func (s *AdminService) ProviderBalance(ctx context.Context) (*domain.ProviderBalance, error) {
	b, err := s.provider.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting provider balance: %w", err)
	}
	return b, nil
}

// ProviderServices каталог провайдера с оптовыми ставками.
func (s *AdminService) ProviderServices(ctx context.Context) ([]domain.ProviderService, error) {
	services, err := s.provider.Services(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing provider services: %w", err)
	}
	return services, nil
}
