package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/fsdevblog/smmpanel/internal/pricing"
	"github.com/fsdevblog/smmpanel/internal/service/mocks"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RewardServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockProvider  *mocks.MockProviderGateway
	store         *memStore
	rewardService *RewardService
}

func TestRewardServiceSuite(t *testing.T) {
	suite.Run(t, new(RewardServiceTestSuite))
}

func (s *RewardServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProvider = mocks.NewMockProviderGateway(s.mockCtrl)
	s.store = newMemStore()

	catalog, err := pricing.ParseCatalog([]byte(`
platforms:
  - name: Instagram
    keywords: [instagram]
coinServices:
  - key: followers
    serviceId: "4256"
    quantity: 10
    cost: 10
    name: 10 Followers
`))
	s.Require().NoError(err)

	s.rewardService, err = NewRewardService(RewardServiceArgs{
		UOW:      s.store,
		Locker:   uow.NewKeyedMutex(),
		Provider: s.mockProvider,
		Catalog:  catalog,
		Metrics:  metrics.New(),
		Settings: DefaultSettings(),
		Logger:   testLogger(),
	})
	s.Require().NoError(err)
}

func (s *RewardServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RewardServiceTestSuite) TestClaimReward_ExactlyOnce() {
	user := fakeUser(decimal.Zero)
	s.store.putUser(user)

	token, err := s.rewardService.IssueToken(context.Background(), user.ID)
	s.Require().NoError(err)
	s.False(token.Claimed)

	updated, err := s.rewardService.ClaimReward(context.Background(), user.ID, token.Token)
	s.Require().NoError(err)
	s.Equal(DefaultRewardCoins, updated.Coins)

	_, err = s.rewardService.ClaimReward(context.Background(), user.ID, token.Token)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
	s.Equal(DefaultRewardCoins, s.store.user(user.ID).Coins)
}

func (s *RewardServiceTestSuite) TestClaimReward_Errors() {
	owner := fakeUser(decimal.Zero)
	stranger := fakeUser(decimal.Zero)
	s.store.putUser(owner)
	s.store.putUser(stranger)

	token, err := s.rewardService.IssueToken(context.Background(), owner.ID)
	s.Require().NoError(err)

	_, err = s.rewardService.ClaimReward(context.Background(), stranger.ID, token.Token)
	s.Require().ErrorIs(err, domain.ErrForbidden)

	_, err = s.rewardService.ClaimReward(context.Background(), owner.ID, gofakeit.UUID())
	s.Require().ErrorIs(err, domain.ErrInvalidRequest)

	_, err = s.rewardService.IssueToken(context.Background(), "missing")
	s.Require().ErrorIs(err, domain.ErrUserNotFound)

	s.Zero(s.store.user(stranger.ID).Coins)
}

func (s *RewardServiceTestSuite) TestRedeemCoins() {
	user := fakeUser(decimal.NewFromInt(7))
	user.Coins = 12
	s.store.putUser(user)

	s.mockProvider.EXPECT().AddOrder(gomock.Any(), "4256", gomock.Any(), int64(10)).Return("c-1", nil)

	order, err := s.rewardService.RedeemCoins(context.Background(), user.ID, "followers", gofakeit.URL())
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusCoinPending, order.Status)
	s.True(order.Charge.IsZero())

	stored := s.store.user(user.ID)
	s.Equal(int64(2), stored.Coins)
	s.Equal("7", stored.Balance.String())
	s.Empty(s.store.allProfit())
}

func (s *RewardServiceTestSuite) TestRedeemCoins_Errors() {
	user := fakeUser(decimal.NewFromInt(100))
	user.Coins = 9
	s.store.putUser(user)

	_, err := s.rewardService.RedeemCoins(context.Background(), user.ID, "followers", gofakeit.URL())
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)

	_, err = s.rewardService.RedeemCoins(context.Background(), user.ID, "unknown", gofakeit.URL())
	s.Require().ErrorIs(err, domain.ErrServiceNotFound)

	_, err = s.rewardService.RedeemCoins(context.Background(), user.ID, "followers", "")
	s.Require().ErrorIs(err, domain.ErrInvalidRequest)
}

func (s *RewardServiceTestSuite) TestRedeemCoins_CommitFailure() {
	user := fakeUser(decimal.Zero)
	user.Coins = 10
	s.store.putUser(user)
	s.store.setFailure("CreateOrder", errors.New("disk full"))

	s.mockProvider.EXPECT().AddOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("c-2", nil)

	_, err := s.rewardService.RedeemCoins(context.Background(), user.ID, "followers", gofakeit.URL())
	s.Require().ErrorIs(err, domain.ErrReconciliationPending)
	s.Equal(int64(10), s.store.user(user.ID).Coins)

	recons := s.store.allRecons()
	s.Require().Len(recons, 1)
	s.Equal("c-2", recons[0].ProviderOrderID)
	s.True(recons[0].Charge.IsZero())
	s.Equal(int64(10), recons[0].Coins)
}

// TestRedeemCoins_CommitFailureThenResolve монеты списываются при ручном проведении записи сверки.
func (s *RewardServiceTestSuite) TestRedeemCoins_CommitFailureThenResolve() {
	user := fakeUser(decimal.Zero)
	user.Coins = 10
	s.store.putUser(user)
	s.store.setFailure("CreateOrder", errors.New("disk full"))

	s.mockProvider.EXPECT().AddOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("c-3", nil)

	_, err := s.rewardService.RedeemCoins(context.Background(), user.ID, "followers", gofakeit.URL())
	s.Require().ErrorIs(err, domain.ErrReconciliationPending)
	s.store.clearFailure("CreateOrder")

	reconService, err := NewReconciliationService(s.store, s.mockProvider, DefaultSettings(), testLogger())
	s.Require().NoError(err)

	recons := s.store.allRecons()
	s.Require().Len(recons, 1)
	resolved, err := reconService.Resolve(context.Background(), ResolveArgs{ID: recons[0].ID, Action: ReconcileCommit})
	s.Require().NoError(err)
	s.Equal(domain.ReconciliationCommitted, resolved.Status)

	orders := s.store.allOrders()
	s.Require().Len(orders, 1)
	s.Equal(domain.OrderStatusCoinPending, orders[0].Status)
	s.Zero(s.store.user(user.ID).Coins)
}

func (s *RewardServiceTestSuite) TestCoinCatalog() {
	services := s.rewardService.CoinCatalog()
	s.Require().Len(services, 1)
	s.Equal("followers", services[0].Key)
}
