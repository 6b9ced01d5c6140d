package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/internal/service"
	"github.com/fsdevblog/smmpanel/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	handlerSuite
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestCreate() {
	username := gofakeit.Username()
	referrer := "ABC123"

	s.accountSvs.EXPECT().
		CreateAccount(gomock.Any(), service.CreateAccountArgs{
			Identity:     s.user,
			Username:     username,
			ReferralCode: "ABC123",
		}).
		Return(&domain.User{
			ID:         s.user.UserID,
			Email:      s.user.Email,
			Username:   username,
			Coins:      20,
			ReferredBy: &referrer,
		}, nil)

	res := s.request(http.MethodPost, RouteGroup+AccountRoute, CreateAccountParams{
		Username:     username,
		ReferralCode: "ABC123",
	}, &s.user)
	s.Require().Equal(http.StatusCreated, res.StatusCode)

	var body AccountResponse
	s.decode(res, &body)
	s.Equal(s.user.UserID, body.ID)
	s.Equal(username, body.Username)
	s.Equal(int64(20), body.Coins)
	s.False(body.IsAdmin)
}

func (s *AccountHandlerTestSuite) TestCreate_InvalidUsername() {
	tests := []struct {
		name     string
		username string
	}{
		{name: "empty", username: ""},
		{name: "too many bytes", username: testutils.GenerateOverBytesUnderRunes(20)},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.request(http.MethodPost, RouteGroup+AccountRoute, CreateAccountParams{Username: tt.username}, &s.user)
			s.Equal(http.StatusBadRequest, res.StatusCode)
		})
	}
}

func (s *AccountHandlerTestSuite) TestCreate_Duplicate() {
	s.accountSvs.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("create account: %w", domain.ErrDuplicateKey))

	res := s.request(http.MethodPost, RouteGroup+AccountRoute, CreateAccountParams{Username: "taken"}, &s.user)
	s.Equal(http.StatusConflict, res.StatusCode)
}

func (s *AccountHandlerTestSuite) TestShow() {
	s.accountSvs.EXPECT().
		GetAccount(gomock.Any(), s.admin.UserID).
		Return(&domain.User{ID: s.admin.UserID, Balance: decimal.RequireFromString("12.5")}, nil)
	s.accountSvs.EXPECT().
		GetAccount(gomock.Any(), s.user.UserID).
		Return(nil, fmt.Errorf("get account: %w", domain.ErrUserNotFound))

	res := s.request(http.MethodGet, RouteGroup+AccountRoute, nil, &s.admin)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var body AccountResponse
	s.decode(res, &body)
	s.True(body.IsAdmin)
	s.True(decimal.RequireFromString("12.5").Equal(body.Balance))

	res = s.request(http.MethodGet, RouteGroup+AccountRoute, nil, &s.user)
	s.Equal(http.StatusNotFound, res.StatusCode)
	kind, _ := s.errorKind(res)
	s.Equal("UserNotFound", kind)
}

func (s *AccountHandlerTestSuite) TestReferrals() {
	s.accountSvs.EXPECT().
		EnsureReferralCode(gomock.Any(), s.user.UserID).
		Return(&domain.User{ID: s.user.UserID, ReferralCode: "QWE789"}, nil)
	s.accountSvs.EXPECT().
		ReferralHistory(gomock.Any(), s.user.UserID, repoargs.Page{}.Normalize()).
		Return(&service.ReferralHistory{
			ReferralCode:   "QWE789",
			ReferralWallet: decimal.RequireFromString("1.5"),
			ReferredCount:  1,
			Commissions: []domain.ReferralCommission{{
				ID:               "c-1",
				ReferredUsername: "friend",
				FundedAmount:     decimal.NewFromInt(50),
				CommissionAmount: decimal.RequireFromString("1.5"),
			}},
		}, nil)

	res := s.request(http.MethodPost, RouteGroup+ReferralCodeRoute, nil, &s.user)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var code map[string]string
	s.decode(res, &code)
	s.Equal("QWE789", code["referralCode"])

	res = s.request(http.MethodGet, RouteGroup+ReferralsRoute, nil, &s.user)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var history ReferralsResponse
	s.decode(res, &history)
	s.Equal(int64(1), history.ReferredCount)
	s.Require().Len(history.Commissions, 1)
	s.Equal("friend", history.Commissions[0].ReferredUsername)
}

type CatalogHandlerTestSuite struct {
	handlerSuite
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestIndex() {
	s.catalogSvs.EXPECT().
		ListServices(gomock.Any()).
		Return([]domain.CatalogService{{
			ProviderService: domain.ProviderService{
				ID:       "1",
				Name:     "Instagram Followers",
				Category: "Instagram",
				Rate:     decimal.RequireFromString("0.10"),
				Min:      100,
				Max:      10000,
			},
			CategoryKey: "instagram_followers",
			RetailRate:  decimal.RequireFromString("0.16"),
		}}, nil)

	res := s.request(http.MethodGet, RouteGroup+ServicesRoute, nil, &s.user)
	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []ServiceResponse
	s.decode(res, &body)
	s.Require().Len(body, 1)
	s.Equal("1", body[0].ID)
	// клиент видит розничную ставку, оптовая не раскрывается.
	s.True(decimal.RequireFromString("0.16").Equal(body[0].Rate))
}

// TestIndex_ProviderTimeout ожидание провайдера ограничено таймаутом из RouterArgs.
func (s *CatalogHandlerTestSuite) TestIndex_ProviderTimeout() {
	started := time.Now()
	s.catalogSvs.EXPECT().
		ListServices(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]domain.CatalogService, error) {
			deadline, ok := ctx.Deadline()
			s.Require().True(ok)
			s.WithinDuration(started.Add(testProviderTimeout), deadline, time.Second)
			return nil, nil
		})

	res := s.request(http.MethodGet, RouteGroup+ServicesRoute, nil, &s.user)
	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *CatalogHandlerTestSuite) TestIndex_ProviderDown() {
	s.catalogSvs.EXPECT().
		ListServices(gomock.Any()).
		Return(nil, fmt.Errorf("list: %w", domain.ErrProviderUnavailable))

	res := s.request(http.MethodGet, RouteGroup+ServicesRoute, nil, &s.user)
	s.Equal(http.StatusBadGateway, res.StatusCode)
}

func (s *CatalogHandlerTestSuite) TestQuote() {
	quote := &service.OrderQuote{Service: domain.ProviderService{ID: "1", Name: "Followers"}}
	quote.RetailRate = decimal.RequireFromString("0.16")
	quote.Quantity = 1000
	quote.TotalCharge = decimal.RequireFromString("0.16")

	s.catalogSvs.EXPECT().Quote(gomock.Any(), "1", int64(1000)).Return(quote, nil)
	s.catalogSvs.EXPECT().
		Quote(gomock.Any(), "1", int64(1)).
		Return(nil, fmt.Errorf("quote: %w", domain.ErrBelowMinimum))

	res := s.request(http.MethodPost, RouteGroup+QuoteRoute, QuoteParams{ServiceID: "1", Quantity: 1000}, &s.user)
	s.Require().Equal(http.StatusOK, res.StatusCode)
	var body QuoteResponse
	s.decode(res, &body)
	s.Equal("Followers", body.ServiceName)
	s.True(decimal.RequireFromString("0.16").Equal(body.Charge))

	res = s.request(http.MethodPost, RouteGroup+QuoteRoute, QuoteParams{ServiceID: "1", Quantity: 1}, &s.user)
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
	kind, _ := s.errorKind(res)
	s.Equal("BelowMinimum", kind)
}
