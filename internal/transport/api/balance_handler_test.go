package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BalanceHandlerTestSuite struct {
	handlerSuite
}

func TestBalanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(BalanceHandlerTestSuite))
}

func (s *BalanceHandlerTestSuite) TestCreateFundRequest() {
	s.ledgerSvs.EXPECT().
		CreateFundRequest(gomock.Any(), s.user.UserID, eqDecimal("250"), "UTR-0001").
		Return(&domain.FundRequest{
			ID:            "f-1",
			UserID:        s.user.UserID,
			Amount:        decimal.NewFromInt(250),
			TransactionID: "UTR-0001",
			Status:        domain.FundRequestPending,
		}, nil)

	res := s.request(http.MethodPost, RouteGroup+FundsRoute,
		`{"amount":"250.00","transactionId":"UTR-0001"}`, &s.user)
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	var body FundRequestResponse
	s.decode(res, &body)
	s.Equal("f-1", body.ID)
	s.Equal(domain.FundRequestPending, body.Status)
}

func (s *BalanceHandlerTestSuite) TestCreateFundRequest_Invalid() {
	s.ledgerSvs.EXPECT().
		CreateFundRequest(gomock.Any(), s.user.UserID, eqDecimal("-1"), "UTR-0002").
		Return(nil, domain.NewInvalidRequestError("amount", "must be positive"))

	res := s.request(http.MethodPost, RouteGroup+FundsRoute, `{"amount":"-1","transactionId":"UTR-0002"}`, &s.user)
	s.Equal(http.StatusBadRequest, res.StatusCode)
	kind, msg := s.errorKind(res)
	s.Equal("InvalidRequest", kind)
	s.Equal("invalid amount: must be positive", msg)

	// без transactionId до сервиса не доходит.
	res = s.request(http.MethodPost, RouteGroup+FundsRoute, `{"amount":"10"}`, &s.user)
	s.Equal(http.StatusBadRequest, res.StatusCode)

	res = s.request(http.MethodPost, RouteGroup+FundsRoute, `{"amount":"ten","transactionId":"x"}`, &s.user)
	s.Equal(http.StatusBadRequest, res.StatusCode)
}

func (s *BalanceHandlerTestSuite) TestWithdraw() {
	s.ledgerSvs.EXPECT().
		CreateWithdrawal(gomock.Any(), s.user.UserID, eqDecimal("100"), "me@upi").
		Return(&domain.WithdrawalRequest{
			ID:     "w-1",
			UserID: s.user.UserID,
			Amount: decimal.NewFromInt(100),
			UpiID:  "me@upi",
			Status: domain.WithdrawalPending,
		}, nil)
	s.ledgerSvs.EXPECT().
		CreateWithdrawal(gomock.Any(), s.user.UserID, eqDecimal("5000"), "me@upi").
		Return(nil, fmt.Errorf("withdraw: %w", domain.ErrInsufficientReferralBalance))

	res := s.request(http.MethodPost, RouteGroup+WithdrawalsRoute, `{"amount":"100","upiId":"me@upi"}`, &s.user)
	s.Require().Equal(http.StatusCreated, res.StatusCode)
	var body WithdrawalResponse
	s.decode(res, &body)
	s.Equal(domain.WithdrawalPending, body.Status)

	res = s.request(http.MethodPost, RouteGroup+WithdrawalsRoute, `{"amount":"5000","upiId":"me@upi"}`, &s.user)
	s.Equal(http.StatusPaymentRequired, res.StatusCode)
	kind, _ := s.errorKind(res)
	s.Equal("InsufficientReferralBalance", kind)
}

func (s *BalanceHandlerTestSuite) TestLists() {
	s.ledgerSvs.EXPECT().
		ListFundRequests(gomock.Any(), s.user.UserID, gomock.Any()).
		Return([]domain.FundRequest{{ID: "f-2"}, {ID: "f-1"}}, nil)
	s.ledgerSvs.EXPECT().
		ListWithdrawals(gomock.Any(), s.user.UserID, gomock.Any()).
		Return([]domain.WithdrawalRequest{}, nil)

	res := s.request(http.MethodGet, RouteGroup+FundsRoute, nil, &s.user)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var funds []FundRequestResponse
	s.decode(res, &funds)
	s.Len(funds, 2)

	res = s.request(http.MethodGet, RouteGroup+WithdrawalsRoute, nil, &s.user)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var withdrawals []WithdrawalResponse
	s.decode(res, &withdrawals)
	s.Empty(withdrawals)
}
