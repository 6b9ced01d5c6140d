package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/fsdevblog/smmpanel/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 5 * time.Second
	// DefaultProviderTimeout верхняя граница ожидания провайдера в хендлерах, если RouterArgs ее не задает.
	DefaultProviderTimeout = 15 * time.Second
)

const (
	MetricsRoute = "/metrics"
	RouteGroup   = "/api"

	PaymentWebhookRoute  = "/webhooks/payment"
	MidtransWebhookRoute = "/webhooks/midtrans"

	AccountRoute      = "/user/account"
	ReferralCodeRoute = "/user/referral-code"
	ReferralsRoute    = "/user/referrals"
	ServicesRoute     = "/services"
	QuoteRoute        = "/services/quote"
	OrdersRoute       = "/orders"
	OrdersSyncRoute   = "/orders/sync"
	OrderCancelRoute  = "/orders/:id/cancel"
	OrderRefillRoute  = "/orders/:id/refill"
	FundsRoute        = "/funds"
	WithdrawalsRoute  = "/withdrawals"
	RewardsRoute      = "/rewards"
	RewardTokenRoute  = "/rewards/token"
	RewardClaimRoute  = "/rewards/claim"
	RewardRedeemRoute = "/rewards/redeem"

	AdminGroup                 = "/admin"
	StatsRoute                 = "/stats"
	ProviderBalRoute           = "/balances"
	ProviderSvcRoute           = "/provider/services"
	UsersRoute                 = "/users"
	UserRoute                  = "/users/:id"
	UserBalanceRoute           = "/users/:id/balance"
	FundApproveRoute           = "/funds/:id/approve"
	FundRejectRoute            = "/funds/:id/reject"
	WithdrawalDoneRoute        = "/withdrawals/:id/complete"
	WithdrawalFailRoute        = "/withdrawals/:id/fail"
	MarkupRoute                = "/markup"
	ProfitRoute                = "/profit"
	ReconciliationsRoute       = "/reconciliations"
	ReconciliationResolveRoute = "/reconciliations/:id/resolve"
)

type RouterArgs struct {
	Logger  *logrus.Logger
	Metrics *metrics.Metrics

	Verifier middlewares.TokenVerifier
	// RateLimit запросов в секунду на клиента, 0 отключает ограничение.
	RateLimit float64
	RateBurst int
	// ProviderTimeout ожидание провайдера в хендлерах, 0 означает DefaultProviderTimeout.
	ProviderTimeout time.Duration

	WebhookSecret     string
	MidtransServerKey string

	AccountService        AccountServicer
	CatalogService        CatalogServicer
	OrderService          OrderServicer
	LedgerService         LedgerServicer
	RewardService         RewardServicer
	PaymentService        PaymentServicer
	MarkupService         MarkupServicer
	ReconciliationService ReconciliationServicer
	AdminService          AdminServicer
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger, args.Metrics))
	}
	r.Use(middlewares.Errors())

	if args.Metrics != nil {
		r.GET(MetricsRoute, gin.WrapH(args.Metrics.Handler()))
	}

	providerTimeout := args.ProviderTimeout
	if providerTimeout <= 0 {
		providerTimeout = DefaultProviderTimeout
	}

	accountHandler := NewAccountHandler(args.AccountService)
	catalogHandler := NewCatalogHandler(args.CatalogService, providerTimeout)
	ordersHandler := NewOrdersHandler(args.OrderService, providerTimeout)
	balanceHandler := NewBalanceHandler(args.LedgerService)
	rewardsHandler := NewRewardsHandler(args.RewardService, providerTimeout)
	webhookHandler := NewWebhookHandler(args.PaymentService, args.WebhookSecret, args.MidtransServerKey)
	adminHandler := NewAdminHandler(AdminHandlerArgs{
		AdminService:          args.AdminService,
		LedgerService:         args.LedgerService,
		MarkupService:         args.MarkupService,
		ReconciliationService: args.ReconciliationService,
		ProviderTimeout:       providerTimeout,
	})

	api := r.Group(RouteGroup)

	// вебхуки аутентифицируются подписью, а не bearer токеном.
	api.POST(PaymentWebhookRoute, webhookHandler.Payment)
	api.POST(MidtransWebhookRoute, webhookHandler.Midtrans)

	api.Use(middlewares.AuthRequired(args.Verifier), middlewares.RateLimit(args.RateLimit, args.RateBurst))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(AccountRoute, accountHandler.Create)
	api.GET(AccountRoute, accountHandler.Show)
	api.POST(ReferralCodeRoute, accountHandler.ReferralCode)
	api.GET(ReferralsRoute, accountHandler.Referrals)

	api.GET(ServicesRoute, catalogHandler.Index)
	api.POST(QuoteRoute, catalogHandler.Quote)

	api.POST(OrdersRoute, ordersHandler.Create)
	api.GET(OrdersRoute, ordersHandler.Index)
	api.POST(OrdersSyncRoute, ordersHandler.Sync)
	api.POST(OrderCancelRoute, ordersHandler.Cancel)
	api.POST(OrderRefillRoute, ordersHandler.Refill)
	api.GET(OrderRefillRoute, ordersHandler.RefillStatus)

	api.POST(FundsRoute, balanceHandler.CreateFundRequest)
	api.GET(FundsRoute, balanceHandler.FundRequests)
	api.POST(WithdrawalsRoute, balanceHandler.Withdraw)
	api.GET(WithdrawalsRoute, balanceHandler.Withdrawals)

	api.GET(RewardsRoute, rewardsHandler.Catalog)
	api.POST(RewardTokenRoute, rewardsHandler.IssueToken)
	api.POST(RewardClaimRoute, rewardsHandler.Claim)
	api.POST(RewardRedeemRoute, rewardsHandler.Redeem)

	admin := api.Group(AdminGroup, middlewares.AdminRequired())
	admin.GET(StatsRoute, adminHandler.Stats)
	admin.GET(ProviderBalRoute, adminHandler.ProviderBalance)
	admin.GET(ProviderSvcRoute, adminHandler.ProviderServices)
	admin.GET(UsersRoute, adminHandler.Users)
	admin.GET(UserRoute, adminHandler.UserDetail)
	admin.PUT(UserBalanceRoute, adminHandler.SetBalances)
	admin.GET(OrdersRoute, adminHandler.Orders)
	admin.GET(FundsRoute, adminHandler.FundRequests)
	admin.POST(FundApproveRoute, adminHandler.ApproveFundRequest)
	admin.POST(FundRejectRoute, adminHandler.RejectFundRequest)
	admin.GET(WithdrawalsRoute, adminHandler.Withdrawals)
	admin.POST(WithdrawalDoneRoute, adminHandler.CompleteWithdrawal)
	admin.POST(WithdrawalFailRoute, adminHandler.FailWithdrawal)
	admin.GET(MarkupRoute, adminHandler.Markup)
	admin.PUT(MarkupRoute, adminHandler.SaveMarkup)
	admin.GET(ProfitRoute, adminHandler.Profit)
	admin.GET(ReconciliationsRoute, adminHandler.Reconciliations)
	admin.POST(ReconciliationResolveRoute, adminHandler.ResolveReconciliation)
	return r, nil
}
