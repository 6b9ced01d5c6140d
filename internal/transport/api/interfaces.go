package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/pricing"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/internal/service"
)

// Интерфейсы ниже повторяют методы сервисного слоя, которые нужны хендлерам. Нужны для моков.

type AccountServicer interface {
	CreateAccount(ctx context.Context, args service.CreateAccountArgs) (*domain.User, error)
	GetAccount(ctx context.Context, userID string) (*domain.User, error)
	EnsureReferralCode(ctx context.Context, userID string) (*domain.User, error)
	ReferralHistory(ctx context.Context, userID string, page repoargs.Page) (*service.ReferralHistory, error)
}

type CatalogServicer interface {
	ListServices(ctx context.Context) ([]domain.CatalogService, error)
	Quote(ctx context.Context, serviceID string, quantity int64) (*service.OrderQuote, error)
}

type OrderServicer interface {
	Place(ctx context.Context, args service.PlaceOrderArgs) (*service.PlacedOrder, error)
	ListOrders(ctx context.Context, userID string, page repoargs.Page) ([]domain.Order, error)
	SyncStatuses(ctx context.Context, userID string) ([]domain.Order, error)
	Cancel(ctx context.Context, userID, orderID string) error
	Refill(ctx context.Context, userID, orderID string) (*domain.Order, error)
	RefillStatus(ctx context.Context, userID, orderID string) (string, error)
}

type LedgerServicer interface {
	CreateFundRequest(
		ctx context.Context,
		userID string,
		amount decimal.Decimal,
		transactionID string,
	) (*domain.FundRequest, error)
	ListFundRequests(ctx context.Context, userID string, page repoargs.Page) ([]domain.FundRequest, error)
	CreateWithdrawal(
		ctx context.Context,
		userID string,
		amount decimal.Decimal,
		upiID string,
	) (*domain.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context, userID string, page repoargs.Page) ([]domain.WithdrawalRequest, error)

	ApproveFundRequest(ctx context.Context, requestID string) (*domain.FundRequest, error)
	RejectFundRequest(ctx context.Context, requestID string) (*domain.FundRequest, error)
	CompleteWithdrawal(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)
	FailWithdrawal(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error)
	AllFundRequests(
		ctx context.Context,
		status domain.FundRequestStatus,
		page repoargs.Page,
	) ([]domain.FundRequest, error)
	AllWithdrawals(
		ctx context.Context,
		status domain.WithdrawalStatus,
		page repoargs.Page,
	) ([]domain.WithdrawalRequest, error)
}

type RewardServicer interface {
	CoinCatalog() []pricing.CoinService
	IssueToken(ctx context.Context, userID string) (*domain.RewardToken, error)
	ClaimReward(ctx context.Context, userID, token string) (*domain.User, error)
	RedeemCoins(ctx context.Context, userID, serviceKey, link string) (*domain.Order, error)
}

type PaymentServicer interface {
	CreditPayment(ctx context.Context, args service.CreditPaymentArgs) (bool, error)
}

type MarkupServicer interface {
	List(ctx context.Context) ([]domain.MarkupRule, error)
	Save(ctx context.Context, rules []domain.MarkupRule) ([]domain.MarkupRule, error)
}

type ReconciliationServicer interface {
	List(
		ctx context.Context,
		status domain.ReconciliationStatus,
		page repoargs.Page,
	) ([]domain.Reconciliation, error)
	Resolve(ctx context.Context, args service.ResolveArgs) (*domain.Reconciliation, error)
}

type AdminServicer interface {
	Stats(ctx context.Context) (*service.DashboardStats, error)
	Users(ctx context.Context, page repoargs.Page) ([]repoargs.UserWithStats, error)
	UserDetail(ctx context.Context, userID string, page repoargs.Page) (*service.UserDetail, error)
	SetBalances(ctx context.Context, userID string, balance decimal.Decimal, coins int64) (*domain.User, error)
	Orders(ctx context.Context, page repoargs.Page) ([]domain.Order, error)
	Profit(ctx context.Context, page repoargs.Page) (*service.ProfitReport, error)
	ProviderBalance(ctx context.Context) (*domain.ProviderBalance, error)
	ProviderServices(ctx context.Context) ([]domain.ProviderService, error)
}
