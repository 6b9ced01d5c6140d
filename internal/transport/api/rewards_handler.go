package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type RewardsHandler struct {
	svs             RewardServicer
	providerTimeout time.Duration
}

func NewRewardsHandler(svs RewardServicer, providerTimeout time.Duration) *RewardsHandler {
	return &RewardsHandler{svs: svs, providerTimeout: providerTimeout}
}

type CoinServiceResponse struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Cost     int64  `json:"cost"`
}

// Catalog GET RouteGroup + RewardsRoute. Услуги, доступные за монеты.
func (h *RewardsHandler) Catalog(c *gin.Context) {
	services := h.svs.CoinCatalog()
	response := make([]CoinServiceResponse, len(services))
	for i, s := range services {
		response[i] = CoinServiceResponse{
			Key:      s.Key,
			Name:     s.Name,
			Quantity: s.Quantity,
			Cost:     s.Cost,
		}
	}
	c.JSON(http.StatusOK, response)
}

// IssueToken POST RouteGroup + RewardTokenRoute.
func (h *RewardsHandler) IssueToken(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	token, err := h.svs.IssueToken(reqCtx, currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token.Token})
}

type ClaimParams struct {
	Token string `binding:"required,max_bytes=64" json:"token"`
}

// Claim POST RouteGroup + RewardClaimRoute. Начисляет монеты за токен, каждый токен один раз.
func (h *RewardsHandler) Claim(c *gin.Context) {
	var params ClaimParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.svs.ClaimReward(reqCtx, currentUserID(c), params.Token)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coins": user.Coins})
}

type RedeemParams struct {
	ServiceKey string `binding:"required,max_bytes=64" json:"service"`
	Link       string `binding:"required,smm_link"     json:"link"`
}

// Redeem POST RouteGroup + RewardRedeemRoute. Заказ услуги за монеты.
func (h *RewardsHandler) Redeem(c *gin.Context) {
	var params RedeemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, h.providerTimeout+DefaultServiceTimeout)
	defer cancel()

	order, err := h.svs.RedeemCoins(reqCtx, currentUserID(c), params.ServiceKey, params.Link)
	if err != nil {
		if processingResponse(c, err) {
			return
		}
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newOrderResponse(order))
}
