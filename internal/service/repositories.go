package service

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	SetReferralCode(ctx context.Context, id, code string) (*domain.User, error)
	AddBalance(ctx context.Context, id string, delta decimal.Decimal) (*domain.User, error)
	AddCoins(ctx context.Context, id string, delta int64) (*domain.User, error)
	AddReferralWallet(ctx context.Context, id string, delta decimal.Decimal) (*domain.User, error)
	SetBalances(ctx context.Context, id string, balance decimal.Decimal, coins int64) (*domain.User, error)
	List(ctx context.Context, page repoargs.Page) ([]repoargs.UserWithStats, error)
	CountReferred(ctx context.Context, referrerID string) (int64, error)
	Totals(ctx context.Context) (*repoargs.UserTotals, error)
}

type MarkupRuleRepository interface {
	All(ctx context.Context) ([]domain.MarkupRule, error)
	ReplaceAll(ctx context.Context, rules []domain.MarkupRule) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string, page repoargs.Page) ([]domain.Order, error)
	List(ctx context.Context, page repoargs.Page) ([]domain.Order, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListForSync(ctx context.Context, limit uint) ([]domain.Order, error)
	BatchUpdateStatus(ctx context.Context, updates []repoargs.UpdateOrderStatus, fn repoargs.OrderBatchQueryRow)
	MarkSynced(ctx context.Context, ids []string) error
	SetRefillID(ctx context.Context, id, refillID string) (*domain.Order, error)
	Totals(ctx context.Context) (*repoargs.OrderTotals, error)
}

type ProfitRepository interface {
	CreateEntry(ctx context.Context, args repoargs.CreateProfitEntry) (*domain.ProfitEntry, error)
	List(ctx context.Context, page repoargs.Page) ([]domain.ProfitEntry, error)
	Total(ctx context.Context) (decimal.Decimal, error)
}

type FundRequestRepository interface {
	Create(ctx context.Context, args repoargs.CreateFundRequest) (*domain.FundRequest, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.FundRequest, error)
	SetStatus(ctx context.Context, id string, status domain.FundRequestStatus) (*domain.FundRequest, error)
	ListByUser(ctx context.Context, userID string, page repoargs.Page) ([]domain.FundRequest, error)
	List(ctx context.Context, status domain.FundRequestStatus, page repoargs.Page) ([]domain.FundRequest, error)
	CountByStatus(ctx context.Context, status domain.FundRequestStatus) (int64, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, args repoargs.CreateWithdrawal) (*domain.WithdrawalRequest, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.WithdrawalRequest, error)
	SetStatus(ctx context.Context, id string, status domain.WithdrawalStatus) (*domain.WithdrawalRequest, error)
	ListByUser(ctx context.Context, userID string, page repoargs.Page) ([]domain.WithdrawalRequest, error)
	List(ctx context.Context, status domain.WithdrawalStatus, page repoargs.Page) ([]domain.WithdrawalRequest, error)
	CountByStatus(ctx context.Context, status domain.WithdrawalStatus) (int64, error)
}

type ReferralCommissionRepository interface {
	Create(ctx context.Context, args repoargs.CreateReferralCommission) (*domain.ReferralCommission, error)
	ListByReferrer(ctx context.Context, referrerID string, page repoargs.Page) ([]domain.ReferralCommission, error)
}

type ReconciliationRepository interface {
	Create(ctx context.Context, args repoargs.CreateReconciliation) (*domain.Reconciliation, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Reconciliation, error)
	List(
		ctx context.Context,
		status domain.ReconciliationStatus,
		page repoargs.Page,
	) ([]domain.Reconciliation, error)
	Resolve(ctx context.Context, args repoargs.ResolveReconciliation) (*domain.Reconciliation, error)
	CountByStatus(ctx context.Context, status domain.ReconciliationStatus) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error)
}

type RewardTokenRepository interface {
	Create(ctx context.Context, userID string) (*domain.RewardToken, error)
	FindForUpdate(ctx context.Context, token string) (*domain.RewardToken, error)
	MarkClaimed(ctx context.Context, token string) (*domain.RewardToken, error)
}
