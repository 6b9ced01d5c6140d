package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminHandler админские операции. Все роуты за middlewares.AdminRequired.
type AdminHandler struct {
	adminSvs  AdminServicer
	ledgerSvs LedgerServicer
	markupSvs MarkupServicer
	reconSvs  ReconciliationServicer

	providerTimeout time.Duration
}

type AdminHandlerArgs struct {
	AdminService          AdminServicer
	LedgerService         LedgerServicer
	MarkupService         MarkupServicer
	ReconciliationService ReconciliationServicer
	ProviderTimeout       time.Duration
}

func NewAdminHandler(args AdminHandlerArgs) *AdminHandler {
	return &AdminHandler{
		adminSvs:  args.AdminService,
		ledgerSvs: args.LedgerService,
		markupSvs: args.MarkupService,
		reconSvs:  args.ReconciliationService,

		providerTimeout: args.ProviderTimeout,
	}
}

type StatsResponse struct {
	UsersCount             int64           `json:"usersCount"`
	ReferredUsersCount     int64           `json:"referredUsersCount"`
	TotalBalance           decimal.Decimal `json:"totalBalance"`
	TotalReferralWallet    decimal.Decimal `json:"totalReferralWallet"`
	OrdersCount            int64           `json:"ordersCount"`
	ActiveOrdersCount      int64           `json:"activeOrdersCount"`
	TotalCharged           decimal.Decimal `json:"totalCharged"`
	TotalProfit            decimal.Decimal `json:"totalProfit"`
	PendingFundRequests    int64           `json:"pendingFundRequests"`
	PendingWithdrawals     int64           `json:"pendingWithdrawals"`
	PendingReconciliations int64           `json:"pendingReconciliations"`
}

// Stats GET AdminGroup + StatsRoute.
func (h *AdminHandler) Stats(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.adminSvs.Stats(reqCtx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		UsersCount:             stats.Users.UsersCount,
		ReferredUsersCount:     stats.Users.ReferredsCount,
		TotalBalance:           stats.Users.TotalBalance,
		TotalReferralWallet:    stats.Users.TotalReferral,
		OrdersCount:            stats.Orders.OrdersCount,
		ActiveOrdersCount:      stats.Orders.ActiveCount,
		TotalCharged:           stats.Orders.TotalCharged,
		TotalProfit:            stats.TotalProfit,
		PendingFundRequests:    stats.PendingFundRequests,
		PendingWithdrawals:     stats.PendingWithdrawals,
		PendingReconciliations: stats.PendingReconciliations,
	})
}

// ProviderBalance GET AdminGroup + ProviderBalRoute. Баланс панели у провайдера.
func (h *AdminHandler) ProviderBalance(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, h.providerTimeout)
	defer cancel()

	balance, err := h.adminSvs.ProviderBalance(reqCtx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance.Balance, "currency": balance.Currency})
}

// ProviderServices GET AdminGroup + ProviderSvcRoute. Каталог провайдера по оптовым ставкам.
func (h *AdminHandler) ProviderServices(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, h.providerTimeout)
	defer cancel()

	services, err := h.adminSvs.ProviderServices(reqCtx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]ServiceResponse, len(services))
	for i, s := range services {
		response[i] = ServiceResponse{
			ID:       s.ID,
			Name:     s.Name,
			Category: s.Category,
			Type:     s.Type,
			Rate:     s.Rate,
			Min:      s.Min,
			Max:      s.Max,
			Refill:   s.Refill,
			Cancel:   s.Cancel,
		}
	}
	c.JSON(http.StatusOK, response)
}

type AdminUserResponse struct {
	AccountResponse
	OrdersCount int64 `json:"ordersCount"`
}

// Users GET AdminGroup + UsersRoute.
func (h *AdminHandler) Users(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.adminSvs.Users(reqCtx, page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]AdminUserResponse, len(users))
	for i := range users {
		response[i] = AdminUserResponse{
			AccountResponse: newAccountResponse(&users[i].User, false),
			OrdersCount:     users[i].OrdersCount,
		}
	}
	c.JSON(http.StatusOK, response)
}

type UserDetailResponse struct {
	User   AccountResponse `json:"user"`
	Orders []OrderResponse `json:"orders"`
}

// UserDetail GET AdminGroup + UserRoute.
func (h *AdminHandler) UserDetail(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	detail, err := h.adminSvs.UserDetail(reqCtx, c.Param("id"), page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserDetailResponse{
		User:   newAccountResponse(detail.User, false),
		Orders: newOrdersResponse(detail.Orders),
	})
}

type SetBalancesParams struct {
	Balance decimal.Decimal `json:"balance"`
	Coins   int64           `binding:"gte=0" json:"coins"`
}

// SetBalances PUT AdminGroup + UserBalanceRoute. Ручная установка баланса и монет.
func (h *AdminHandler) SetBalances(c *gin.Context) {
	var params SetBalancesParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.adminSvs.SetBalances(reqCtx, c.Param("id"), params.Balance, params.Coins)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(user, false))
}

// Orders GET AdminGroup + OrdersRoute.
func (h *AdminHandler) Orders(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := h.adminSvs.Orders(reqCtx, page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]AdminOrderResponse, len(orders))
	for i := range orders {
		response[i] = AdminOrderResponse{
			OrderResponse: newOrderResponse(&orders[i]),
			UserID:        orders[i].UserID,
		}
	}
	c.JSON(http.StatusOK, response)
}

type AdminOrderResponse struct {
	OrderResponse
	UserID string `json:"userId"`
}

type StatusFilterParams struct {
	Status string `binding:"omitempty,max_bytes=32" form:"status"`
}

// FundRequests GET AdminGroup + FundsRoute. Фильтр ?status=pending|approved|rejected.
func (h *AdminHandler) FundRequests(c *gin.Context) {
	var filter StatusFilterParams
	if err := c.ShouldBindQuery(&filter); err != nil {
		abortWithBindError(c, err)
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	requests, err := h.ledgerSvs.AllFundRequests(reqCtx, domain.FundRequestStatus(filter.Status), page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFundRequestsResponse(requests))
}

// ApproveFundRequest POST AdminGroup + FundApproveRoute. Повторное одобрение вернет 409.
func (h *AdminHandler) ApproveFundRequest(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := h.ledgerSvs.ApproveFundRequest(reqCtx, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFundRequestResponse(request))
}

// RejectFundRequest POST AdminGroup + FundRejectRoute.
func (h *AdminHandler) RejectFundRequest(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := h.ledgerSvs.RejectFundRequest(reqCtx, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFundRequestResponse(request))
}

// Withdrawals GET AdminGroup + WithdrawalsRoute. Фильтр ?status=pending|completed|failed.
func (h *AdminHandler) Withdrawals(c *gin.Context) {
	var filter StatusFilterParams
	if err := c.ShouldBindQuery(&filter); err != nil {
		abortWithBindError(c, err)
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawals, err := h.ledgerSvs.AllWithdrawals(reqCtx, domain.WithdrawalStatus(filter.Status), page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWithdrawalsResponse(withdrawals))
}

// CompleteWithdrawal POST AdminGroup + WithdrawalDoneRoute. Выплата произведена вне системы.
func (h *AdminHandler) CompleteWithdrawal(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := h.ledgerSvs.CompleteWithdrawal(reqCtx, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWithdrawalResponse(withdrawal))
}

// FailWithdrawal POST AdminGroup + WithdrawalFailRoute. Выплата не удалась, сумма возвращается в кошелек.
func (h *AdminHandler) FailWithdrawal(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := h.ledgerSvs.FailWithdrawal(reqCtx, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWithdrawalResponse(withdrawal))
}

type MarkupRuleParams struct {
	CategoryKey string            `binding:"required,max_bytes=128"         json:"categoryKey"`
	Type        domain.MarkupType `binding:"required,oneof=percent fixed" json:"type"`
	Value       decimal.Decimal   `json:"value"`
}

type SaveMarkupParams struct {
	Rules []MarkupRuleParams `binding:"dive" json:"rules"`
}

type MarkupRuleResponse struct {
	CategoryKey string            `json:"categoryKey"`
	Type        domain.MarkupType `json:"type"`
	Value       decimal.Decimal   `json:"value"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func newMarkupResponse(rules []domain.MarkupRule) []MarkupRuleResponse {
	response := make([]MarkupRuleResponse, len(rules))
	for i, r := range rules {
		response[i] = MarkupRuleResponse{
			CategoryKey: r.CategoryKey,
			Type:        r.Type,
			Value:       r.Value,
			UpdatedAt:   r.UpdatedAt,
		}
	}
	return response
}

// Markup GET AdminGroup + MarkupRoute.
func (h *AdminHandler) Markup(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rules, err := h.markupSvs.List(reqCtx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newMarkupResponse(rules))
}

// SaveMarkup PUT AdminGroup + MarkupRoute. Заменяет таблицу правил целиком.
func (h *AdminHandler) SaveMarkup(c *gin.Context) {
	var params SaveMarkupParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	rules := make([]domain.MarkupRule, len(params.Rules))
	for i, r := range params.Rules {
		rules[i] = domain.MarkupRule{
			CategoryKey: r.CategoryKey,
			Type:        r.Type,
			Value:       r.Value,
		}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	saved, err := h.markupSvs.Save(reqCtx, rules)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newMarkupResponse(saved))
}

type ProfitEntryResponse struct {
	OrderID     string          `json:"orderId"`
	UserID      string          `json:"userId"`
	Username    string          `json:"username"`
	ServiceID   string          `json:"serviceId"`
	ServiceName string          `json:"serviceName"`
	Profit      decimal.Decimal `json:"profit"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Profit GET AdminGroup + ProfitRoute. Итог и история прибыли.
func (h *AdminHandler) Profit(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.adminSvs.Profit(reqCtx, page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	entries := make([]ProfitEntryResponse, len(report.Entries))
	for i, e := range report.Entries {
		entries[i] = ProfitEntryResponse{
			OrderID:     e.OrderID,
			UserID:      e.UserID,
			Username:    e.Username,
			ServiceID:   e.ServiceID,
			ServiceName: e.ServiceName,
			Profit:      e.Profit,
			CreatedAt:   e.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"total": report.Total, "entries": entries})
}

type ReconciliationResponse struct {
	ID              string                      `json:"id"`
	UserID          string                      `json:"userId"`
	ProviderOrderID string                      `json:"providerOrderId"`
	ServiceID       string                      `json:"serviceId"`
	ServiceName     string                      `json:"serviceName"`
	Link            string                      `json:"link"`
	Quantity        int64                       `json:"quantity"`
	Charge          decimal.Decimal             `json:"charge"`
	Profit          decimal.Decimal             `json:"profit"`
	Coins           int64                       `json:"coins"`
	Reason          string                      `json:"reason"`
	Status          domain.ReconciliationStatus `json:"status"`
	OrderID         *string                     `json:"orderId,omitempty"`
	CreatedAt       time.Time                   `json:"createdAt"`
	ResolvedAt      *time.Time                  `json:"resolvedAt,omitempty"`
}

func newReconciliationResponse(r *domain.Reconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		ProviderOrderID: r.ProviderOrderID,
		ServiceID:       r.ServiceID,
		ServiceName:     r.ServiceName,
		Link:            r.Link,
		Quantity:        r.Quantity,
		Charge:          r.Charge,
		Profit:          r.Profit,
		Coins:           r.Coins,
		Reason:          r.Reason,
		Status:          r.Status,
		OrderID:         r.OrderID,
		CreatedAt:       r.CreatedAt,
		ResolvedAt:      r.ResolvedAt,
	}
}

// Reconciliations GET AdminGroup + ReconciliationsRoute. По умолчанию только pending.
func (h *AdminHandler) Reconciliations(c *gin.Context) {
	var filter StatusFilterParams
	if err := c.ShouldBindQuery(&filter); err != nil {
		abortWithBindError(c, err)
		return
	}
	if filter.Status == "" {
		filter.Status = string(domain.ReconciliationPending)
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	records, err := h.reconSvs.List(reqCtx, domain.ReconciliationStatus(filter.Status), page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]ReconciliationResponse, len(records))
	for i := range records {
		response[i] = newReconciliationResponse(&records[i])
	}
	c.JSON(http.StatusOK, response)
}

type ResolveParams struct {
	Action          string `binding:"required,oneof=commit cancel dismiss" json:"action"`
	ProviderOrderID string `binding:"omitempty,max_bytes=64"              json:"providerOrderId"`
}

// ResolveReconciliation POST AdminGroup + ReconciliationResolveRoute.
func (h *AdminHandler) ResolveReconciliation(c *gin.Context) {
	var params ResolveParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, h.providerTimeout+DefaultServiceTimeout)
	defer cancel()

	record, err := h.reconSvs.Resolve(reqCtx, service.ResolveArgs{
		ID:              c.Param("id"),
		Action:          service.ReconciliationAction(params.Action),
		ProviderOrderID: params.ProviderOrderID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReconciliationResponse(record))
}
