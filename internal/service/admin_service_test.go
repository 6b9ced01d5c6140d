package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AdminServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockProvider *mocks.MockProviderGateway
	store        *memStore
	adminService *AdminService
}

func TestAdminServiceSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}

func (s *AdminServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProvider = mocks.NewMockProviderGateway(s.mockCtrl)
	s.store = newMemStore()
	var err error
	s.adminService, err = NewAdminService(s.store, s.mockProvider)
	s.Require().NoError(err)
}

func (s *AdminServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AdminServiceTestSuite) TestStats() {
	user := fakeUser(decimal.NewFromInt(40))
	s.store.putUser(user)
	s.store.putUser(fakeUser(decimal.NewFromInt(2)))

	ledger, err := NewLedgerService(s.store, metrics.New(), DefaultSettings(), testLogger())
	s.Require().NoError(err)
	_, err = ledger.CreateFundRequest(context.Background(), user.ID, decimal.NewFromInt(10), "txn-1")
	s.Require().NoError(err)

	s.store.profit = append(s.store.profit,
		domain.ProfitEntry{Profit: decimal.NewFromInt(6)},
		domain.ProfitEntry{Profit: decimal.RequireFromString("-0.5")},
	)

	stats, err := s.adminService.Stats(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(2), stats.Users.UsersCount)
	s.Equal("42", stats.Users.TotalBalance.String())
	s.Equal("5.5", stats.TotalProfit.String())
	s.Equal(int64(1), stats.PendingFundRequests)
	s.Zero(stats.PendingWithdrawals)
}

func (s *AdminServiceTestSuite) TestSetBalances() {
	user := fakeUser(decimal.NewFromInt(40))
	s.store.putUser(user)

	updated, err := s.adminService.SetBalances(context.Background(), user.ID, decimal.RequireFromString("12.35"), 3)
	s.Require().NoError(err)
	s.Equal("12.35", updated.Balance.String())
	s.Equal(int64(3), updated.Coins)

	_, err = s.adminService.SetBalances(context.Background(), user.ID, decimal.RequireFromString("12.345"), 3)
	s.Require().ErrorIs(err, domain.ErrInvalidRequest)
	s.Equal("12.35", s.store.user(user.ID).Balance.String())

	_, err = s.adminService.SetBalances(context.Background(), user.ID, decimal.NewFromInt(-1), 0)
	s.Require().ErrorIs(err, domain.ErrInvalidRequest)
	_, err = s.adminService.SetBalances(context.Background(), user.ID, decimal.Zero, -1)
	s.Require().ErrorIs(err, domain.ErrInvalidRequest)
	_, err = s.adminService.SetBalances(context.Background(), "missing", decimal.Zero, 0)
	s.Require().ErrorIs(err, domain.ErrUserNotFound)
}

func (s *AdminServiceTestSuite) TestUserDetail() {
	user := fakeUser(decimal.NewFromInt(40))
	s.store.putUser(user)
	s.store.orders = append(s.store.orders, domain.Order{ID: "o-1", UserID: user.ID}, domain.Order{ID: "o-2"})

	detail, err := s.adminService.UserDetail(context.Background(), user.ID, repoargs.Page{})
	s.Require().NoError(err)
	s.Equal(user.ID, detail.User.ID)
	s.Require().Len(detail.Orders, 1)
	s.Equal("o-1", detail.Orders[0].ID)

	users, err := s.adminService.Users(context.Background(), repoargs.Page{})
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(int64(1), users[0].OrdersCount)
}

func (s *AdminServiceTestSuite) TestProviderPassThrough() {
	s.mockProvider.EXPECT().Balance(gomock.Any()).
		Return(&domain.ProviderBalance{Balance: decimal.RequireFromString("100.84"), Currency: "USD"}, nil)
	s.mockProvider.EXPECT().Services(gomock.Any()).Return([]domain.ProviderService{{ID: "1"}}, nil)

	b, err := s.adminService.ProviderBalance(context.Background())
	s.Require().NoError(err)
	s.Equal("USD", b.Currency)

	services, err := s.adminService.ProviderServices(context.Background())
	s.Require().NoError(err)
	s.Len(services, 1)
}
