package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BalanceHandler заявки на пополнение баланса и вывод реферального кошелька.
type BalanceHandler struct {
	svs LedgerServicer
}

func NewBalanceHandler(svs LedgerServicer) *BalanceHandler {
	return &BalanceHandler{
		svs: svs,
	}
}

type FundRequestResponse struct {
	ID            string                   `json:"id"`
	UserID        string                   `json:"userId"`
	UserEmail     string                   `json:"userEmail,omitempty"`
	Amount        decimal.Decimal          `json:"amount"`
	TransactionID string                   `json:"transactionId"`
	Status        domain.FundRequestStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
}

func newFundRequestResponse(r *domain.FundRequest) FundRequestResponse {
	return FundRequestResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		UserEmail:     r.UserEmail,
		Amount:        r.Amount,
		TransactionID: r.TransactionID,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

func newFundRequestsResponse(requests []domain.FundRequest) []FundRequestResponse {
	response := make([]FundRequestResponse, len(requests))
	for i := range requests {
		response[i] = newFundRequestResponse(&requests[i])
	}
	return response
}

type WithdrawalResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"userId"`
	UserEmail string                  `json:"userEmail,omitempty"`
	Amount    decimal.Decimal         `json:"amount"`
	UpiID     string                  `json:"upiId"`
	Status    domain.WithdrawalStatus `json:"status"`
	CreatedAt time.Time               `json:"createdAt"`
}

func newWithdrawalResponse(w *domain.WithdrawalRequest) WithdrawalResponse {
	return WithdrawalResponse{
		ID:        w.ID,
		UserID:    w.UserID,
		UserEmail: w.UserEmail,
		Amount:    w.Amount,
		UpiID:     w.UpiID,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
	}
}

func newWithdrawalsResponse(withdrawals []domain.WithdrawalRequest) []WithdrawalResponse {
	response := make([]WithdrawalResponse, len(withdrawals))
	for i := range withdrawals {
		response[i] = newWithdrawalResponse(&withdrawals[i])
	}
	return response
}

type FundRequestParams struct {
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `binding:"required,max_bytes=128" json:"transactionId"`
}

// CreateFundRequest POST RouteGroup + FundsRoute. Заявка на пополнение, ждет подтверждения админом.
func (b *BalanceHandler) CreateFundRequest(c *gin.Context) {
	var params FundRequestParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, err := b.svs.CreateFundRequest(reqCtx, currentUserID(c), params.Amount, params.TransactionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newFundRequestResponse(request))
}

// FundRequests GET RouteGroup + FundsRoute.
func (b *BalanceHandler) FundRequests(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	requests, err := b.svs.ListFundRequests(reqCtx, currentUserID(c), page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFundRequestsResponse(requests))
}

type WithdrawParams struct {
	Amount decimal.Decimal `json:"amount"`
	UpiID  string          `binding:"required,max_bytes=128" json:"upiId"`
}

// Withdraw POST RouteGroup + WithdrawalsRoute. Сумма сразу списывается с реферального кошелька.
func (b *BalanceHandler) Withdraw(c *gin.Context) {
	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := b.svs.CreateWithdrawal(reqCtx, currentUserID(c), params.Amount, params.UpiID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newWithdrawalResponse(withdrawal))
}

// Withdrawals GET RouteGroup + WithdrawalsRoute.
func (b *BalanceHandler) Withdrawals(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawals, err := b.svs.ListWithdrawals(reqCtx, currentUserID(c), page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newWithdrawalsResponse(withdrawals))
}
