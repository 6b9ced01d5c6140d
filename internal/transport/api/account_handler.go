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

type AccountHandler struct {
	accountSvs AccountServicer
}

func NewAccountHandler(accountSvs AccountServicer) *AccountHandler {
	return &AccountHandler{
		accountSvs: accountSvs,
	}
}

type CreateAccountParams struct {
	Username     string `binding:"required,min=1,max_bytes=64" json:"username"`
	Name         string `binding:"omitempty,max_bytes=255"     json:"name"`
	ReferralCode string `binding:"omitempty,max_bytes=32"      json:"referralCode"`
}

type AccountResponse struct {
	ID             string          `json:"id"`
	Email          string          `json:"email"`
	Username       string          `json:"username"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`
	Coins          int64           `json:"coins"`
	ReferralCode   string          `json:"referralCode,omitempty"`
	ReferredBy     *string         `json:"referredBy,omitempty"`
	ReferralWallet decimal.Decimal `json:"referralWallet"`
	IsAdmin        bool            `json:"isAdmin"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func newAccountResponse(u *domain.User, isAdmin bool) AccountResponse {
	return AccountResponse{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		Name:           u.Name,
		Balance:        u.Balance,
		Coins:          u.Coins,
		ReferralCode:   u.ReferralCode,
		ReferredBy:     u.ReferredBy,
		ReferralWallet: u.ReferralWallet,
		IsAdmin:        isAdmin,
		CreatedAt:      u.CreatedAt,
	}
}

// Create POST RouteGroup + AccountRoute. Заводит учетную запись для проверенной identity.
func (h *AccountHandler) Create(c *gin.Context) {
	var params CreateAccountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	identity := currentIdentity(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.accountSvs.CreateAccount(ctx, service.CreateAccountArgs{
		Identity:     identity,
		Username:     params.Username,
		Name:         params.Name,
		ReferralCode: params.ReferralCode,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newAccountResponse(user, identity.IsAdmin))
}

// Show GET RouteGroup + AccountRoute.
func (h *AccountHandler) Show(c *gin.Context) {
	identity := currentIdentity(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.accountSvs.GetAccount(ctx, identity.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(user, identity.IsAdmin))
}

// ReferralCode POST RouteGroup + ReferralCodeRoute. Выдает реферальный код, генерируя его при первом вызове.
func (h *AccountHandler) ReferralCode(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.accountSvs.EnsureReferralCode(ctx, currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"referralCode": user.ReferralCode})
}

type CommissionResponse struct {
	ID               string          `json:"id"`
	ReferredUsername string          `json:"referredUsername"`
	FundedAmount     decimal.Decimal `json:"fundedAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type ReferralsResponse struct {
	ReferralCode   string               `json:"referralCode"`
	ReferralWallet decimal.Decimal      `json:"referralWallet"`
	ReferredCount  int64                `json:"referredCount"`
	Commissions    []CommissionResponse `json:"commissions"`
}

// Referrals GET RouteGroup + ReferralsRoute.
func (h *AccountHandler) Referrals(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	history, err := h.accountSvs.ReferralHistory(ctx, currentUserID(c), page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := ReferralsResponse{
		ReferralCode:   history.ReferralCode,
		ReferralWallet: history.ReferralWallet,
		ReferredCount:  history.ReferredCount,
		Commissions:    make([]CommissionResponse, len(history.Commissions)),
	}
	for i, cm := range history.Commissions {
		response.Commissions[i] = CommissionResponse{
			ID:               cm.ID,
			ReferredUsername: cm.ReferredUsername,
			FundedAmount:     cm.FundedAmount,
			CommissionAmount: cm.CommissionAmount,
			CreatedAt:        cm.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}
