package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// StatusProcessing ответ на заказ, который принят провайдером, но еще не проведен локально.
const StatusProcessing = "processing"

type OrdersHandler struct {
	orderSvs        OrderServicer
	providerTimeout time.Duration
}

func NewOrdersHandler(orderSvs OrderServicer, providerTimeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orderSvs:        orderSvs,
		providerTimeout: providerTimeout,
	}
}

type OrderResponse struct {
	ID              string          `json:"id"`
	ProviderOrderID string          `json:"providerOrderId"`
	ServiceID       string          `json:"serviceId"`
	ServiceName     string          `json:"serviceName"`
	Link            string          `json:"link"`
	Quantity        int64           `json:"quantity"`
	Charge          decimal.Decimal `json:"charge"`
	Status          string          `json:"status"`
	StartCount      string          `json:"startCount"`
	Remains         string          `json:"remains"`
	RefillID        *string         `json:"refillId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID,
		ProviderOrderID: o.ProviderOrderID,
		ServiceID:       o.ServiceID,
		ServiceName:     o.ServiceName,
		Link:            o.Link,
		Quantity:        o.Quantity,
		Charge:          o.Charge,
		Status:          o.Status,
		StartCount:      o.StartCount,
		Remains:         o.Remains,
		RefillID:        o.RefillID,
		CreatedAt:       o.CreatedAt,
	}
}

func newOrdersResponse(orders []domain.Order) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}
	return response
}

type CreateOrderParams struct {
	ServiceID string `binding:"required,max_bytes=64" json:"serviceId"`
	Link      string `binding:"required,smm_link"     json:"link"`
	Quantity  int64  `binding:"required,gt=0"         json:"quantity"`
}

type PlacedOrderResponse struct {
	Order   OrderResponse   `json:"order"`
	Balance decimal.Decimal `json:"balance"`
}

// Create POST RouteGroup + OrdersRoute. Размещает заказ у провайдера и списывает баланс.
func (o *OrdersHandler) Create(c *gin.Context) {
	var params CreateOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	// Провайдер может отвечать долго, а после его ответа нужно успеть провести заказ.
	reqCtx, cancel := context.WithTimeout(c, o.providerTimeout+DefaultServiceTimeout)
	defer cancel()

	placed, err := o.orderSvs.Place(reqCtx, service.PlaceOrderArgs{
		UserID:    currentUserID(c),
		ServiceID: params.ServiceID,
		Link:      params.Link,
		Quantity:  params.Quantity,
	})
	if err != nil {
		if processingResponse(c, err) {
			return
		}
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PlacedOrderResponse{
		Order:   newOrderResponse(placed.Order),
		Balance: placed.User.Balance,
	})
}

// processingResponse отвечает 202, если заказ ушел в сверку. Для пользователя это "заказ обрабатывается".
func processingResponse(c *gin.Context, err error) bool {
	var pending *domain.ReconciliationPendingError
	if !errors.As(err, &pending) {
		return false
	}
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.JSON(http.StatusAccepted, gin.H{
		"status":           StatusProcessing,
		"message":          "order is processing",
		"providerOrderId":  pending.ProviderOrderID,
		"reconciliationId": pending.ReconciliationID,
	})
	return true
}

// Index GET RouteGroup + OrdersRoute. Заказы юзера, новые первыми.
func (o *OrdersHandler) Index(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.ListOrders(reqCtx, currentUserID(c), page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrdersResponse(orders))
}

// Sync POST RouteGroup + OrdersSyncRoute. Обновляет статусы незавершенных заказов у провайдера.
func (o *OrdersHandler) Sync(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, o.providerTimeout+DefaultServiceTimeout)
	defer cancel()

	orders, err := o.orderSvs.SyncStatuses(reqCtx, currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrdersResponse(orders))
}

// Cancel POST RouteGroup + OrderCancelRoute.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, o.providerTimeout)
	defer cancel()

	if err := o.orderSvs.Cancel(reqCtx, currentUserID(c), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cancel requested"})
}

// Refill POST RouteGroup + OrderRefillRoute.
func (o *OrdersHandler) Refill(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, o.providerTimeout+DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Refill(reqCtx, currentUserID(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

// RefillStatus GET RouteGroup + OrderRefillRoute.
func (o *OrdersHandler) RefillStatus(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, o.providerTimeout)
	defer cancel()

	status, err := o.orderSvs.RefillStatus(reqCtx, currentUserID(c), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
