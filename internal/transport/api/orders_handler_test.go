package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/internal/service"
	"github.com/fsdevblog/smmpanel/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	handlerSuite
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) validParams() CreateOrderParams {
	return CreateOrderParams{
		ServiceID: "1",
		Link:      "https://instagram.com/" + gofakeit.Username(),
		Quantity:  1000,
	}
}

func (s *OrderHandlerTestSuite) TestCreate_Success() {
	params := s.validParams()
	order := &domain.Order{
		ID:              gofakeit.UUID(),
		UserID:          s.user.UserID,
		ProviderOrderID: "555",
		ServiceID:       params.ServiceID,
		ServiceName:     "Followers",
		Link:            params.Link,
		Quantity:        params.Quantity,
		Charge:          decimal.RequireFromString("0.16"),
		Status:          domain.OrderStatusPending,
	}

	s.orderSvs.EXPECT().
		Place(gomock.Any(), service.PlaceOrderArgs{
			UserID:    s.user.UserID,
			ServiceID: params.ServiceID,
			Link:      params.Link,
			Quantity:  params.Quantity,
		}).
		Return(&service.PlacedOrder{
			Order: order,
			User:  &domain.User{ID: s.user.UserID, Balance: decimal.RequireFromString("9.84")},
		}, nil)

	res := s.request(http.MethodPost, RouteGroup+OrdersRoute, params, &s.user)
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	var body PlacedOrderResponse
	s.decode(res, &body)
	s.Equal(order.ID, body.Order.ID)
	s.Equal("555", body.Order.ProviderOrderID)
	s.True(decimal.RequireFromString("0.16").Equal(body.Order.Charge))
	s.True(decimal.RequireFromString("9.84").Equal(body.Balance))
}

func (s *OrderHandlerTestSuite) TestCreate_Unauthenticated() {
	res := s.request(http.MethodPost, RouteGroup+OrdersRoute, s.validParams(), nil)
	s.Equal(http.StatusUnauthorized, res.StatusCode)

	kind, _ := s.errorKind(res)
	s.Equal("Unauthenticated", kind)
}

func (s *OrderHandlerTestSuite) TestCreate_ForeignToken() {
	foreign := testutils.BearerToken(s.T(), s.user, []byte("another secret"))

	res := s.request(http.MethodPost, RouteGroup+OrdersRoute, s.validParams(), nil, testutils.WithBearer(foreign))
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestCreate_InvalidParams() {
	tests := []struct {
		name   string
		params CreateOrderParams
	}{
		{name: "zero quantity", params: CreateOrderParams{ServiceID: "1", Link: "https://t.me/x", Quantity: 0}},
		{name: "negative quantity", params: CreateOrderParams{ServiceID: "1", Link: "https://t.me/x", Quantity: -5}},
		{name: "no service", params: CreateOrderParams{Link: "https://t.me/x", Quantity: 10}},
		{name: "not a link", params: CreateOrderParams{ServiceID: "1", Link: "my channel", Quantity: 10}},
		{name: "ftp link", params: CreateOrderParams{ServiceID: "1", Link: "ftp://t.me/x", Quantity: 10}},
		{
			name: "too long service id",
			params: CreateOrderParams{
				ServiceID: testutils.GenerateOverBytesUnderRunes(20),
				Link:      "https://t.me/x",
				Quantity:  10,
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.request(http.MethodPost, RouteGroup+OrdersRoute, tt.params, &s.user)
			s.Equal(http.StatusBadRequest, res.StatusCode)

			kind, _ := s.errorKind(res)
			s.Equal("InvalidRequest", kind)
		})
	}
}

func (s *OrderHandlerTestSuite) TestCreate_ServiceErrors() {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
		msg    string
	}{
		{
			name:   "insufficient balance",
			err:    fmt.Errorf("place: %w", domain.ErrInsufficientBalance),
			status: http.StatusPaymentRequired,
			kind:   "InsufficientBalance",
		},
		{
			name:   "unknown service",
			err:    fmt.Errorf("place: %w", domain.ErrServiceNotFound),
			status: http.StatusNotFound,
			kind:   "ServiceNotFound",
		},
		{
			name:   "provider rejected",
			err:    domain.NewProviderRejectedError("add", "Quantity less than minimal 100"),
			status: http.StatusUnprocessableEntity,
			kind:   "ProviderRejected",
			msg:    "Quantity less than minimal 100",
		},
		{
			name:   "provider down",
			err:    fmt.Errorf("place: %w", domain.ErrProviderUnavailable),
			status: http.StatusBadGateway,
			kind:   "ProviderUnavailable",
		},
		{
			name:   "internal",
			err:    errors.New("connection reset by peer"),
			status: http.StatusInternalServerError,
			kind:   "Internal",
			msg:    "internal server error",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.orderSvs.EXPECT().Place(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			res := s.request(http.MethodPost, RouteGroup+OrdersRoute, s.validParams(), &s.user)
			s.Equal(tt.status, res.StatusCode)

			kind, msg := s.errorKind(res)
			s.Equal(tt.kind, kind)
			if tt.msg != "" {
				s.Equal(tt.msg, msg)
			}
			s.NotContains(msg, "connection reset")
		})
	}
}

// TestCreate_ReconciliationPending провайдер принял заказ, локальная фиксация не прошла: юзер видит
// "обрабатывается", а не ошибку.
func (s *OrderHandlerTestSuite) TestCreate_ReconciliationPending() {
	s.orderSvs.EXPECT().
		Place(gomock.Any(), gomock.Any()).
		Return(nil, &domain.ReconciliationPendingError{
			ReconciliationID: "rec-1",
			ProviderOrderID:  "777",
			Cause:            errors.New("tx aborted"),
		})

	res := s.request(http.MethodPost, RouteGroup+OrdersRoute, s.validParams(), &s.user)
	s.Require().Equal(http.StatusAccepted, res.StatusCode)

	var body map[string]string
	s.decode(res, &body)
	s.Equal(StatusProcessing, body["status"])
	s.Equal("777", body["providerOrderId"])
	s.Equal("rec-1", body["reconciliationId"])
}

func (s *OrderHandlerTestSuite) TestIndex() {
	orders := []domain.Order{
		{ID: "o-2", UserID: s.user.UserID, Status: domain.OrderStatusPending, Charge: decimal.NewFromInt(2)},
		{ID: "o-1", UserID: s.user.UserID, Status: domain.OrderStatusCompleted, Charge: decimal.NewFromInt(1)},
	}
	s.orderSvs.EXPECT().
		ListOrders(gomock.Any(), s.user.UserID, repoargs.Page{Limit: 10, Offset: 20}).
		Return(orders, nil)

	res := s.request(http.MethodGet, RouteGroup+OrdersRoute+"?limit=10&offset=20", nil, &s.user)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []OrderResponse
	s.decode(res, &body)
	s.Require().Len(body, 2)
	s.Equal("o-2", body[0].ID)
	s.Equal(domain.OrderStatusCompleted, body[1].Status)
}

func (s *OrderHandlerTestSuite) TestIndex_BadPage() {
	res := s.request(http.MethodGet, RouteGroup+OrdersRoute+"?limit=5000", nil, &s.user)
	s.Equal(http.StatusBadRequest, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestSync() {
	s.orderSvs.EXPECT().
		SyncStatuses(gomock.Any(), s.user.UserID).
		Return([]domain.Order{{ID: "o-1", Status: domain.OrderStatusPartial, Remains: "50"}}, nil)

	res := s.request(http.MethodPost, RouteGroup+OrdersSyncRoute, nil, &s.user)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []OrderResponse
	s.decode(res, &body)
	s.Require().Len(body, 1)
	s.Equal("50", body[0].Remains)
}

func (s *OrderHandlerTestSuite) TestCancel() {
	s.orderSvs.EXPECT().Cancel(gomock.Any(), s.user.UserID, "o-1").Return(nil)
	s.orderSvs.EXPECT().
		Cancel(gomock.Any(), s.user.UserID, "o-2").
		Return(fmt.Errorf("cancel: %w", domain.ErrRecordNotFound))

	res := s.request(http.MethodPost, RouteGroup+"/orders/o-1/cancel", nil, &s.user)
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPost, RouteGroup+"/orders/o-2/cancel", nil, &s.user)
	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestRefill() {
	refillID := "r-9"
	s.orderSvs.EXPECT().
		Refill(gomock.Any(), s.user.UserID, "o-1").
		Return(&domain.Order{ID: "o-1", RefillID: &refillID}, nil)
	s.orderSvs.EXPECT().
		RefillStatus(gomock.Any(), s.user.UserID, "o-1").
		Return("Completed", nil)

	res := s.request(http.MethodPost, RouteGroup+"/orders/o-1/refill", nil, &s.user)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var order OrderResponse
	s.decode(res, &order)
	s.Require().NotNil(order.RefillID)
	s.Equal(refillID, *order.RefillID)

	res = s.request(http.MethodGet, RouteGroup+"/orders/o-1/refill", nil, &s.user)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var status map[string]string
	s.decode(res, &status)
	s.Equal("Completed", status["status"])
}
