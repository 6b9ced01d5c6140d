package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/fsdevblog/smmpanel/internal/pricing"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// RewardService монеты: одноразовые токены награды и обмен монет на услуги из каталога.
type RewardService struct {
	uow             uow.UOW
	locker          uow.Locker
	provider        ProviderGateway
	catalog         *pricing.Catalog
	userRepo        UserRepository
	tokenRepo       RewardTokenRepository
	reconRepo       ReconciliationRepository
	metrics         *metrics.Metrics
	rewardCoins     int64
	providerTimeout time.Duration
	log             *logrus.Entry
}

type RewardServiceArgs struct {
	UOW      uow.UOW
	Locker   uow.Locker
	Provider ProviderGateway
	Catalog  *pricing.Catalog
	Metrics  *metrics.Metrics
	Settings Settings
	Logger   *logrus.Logger
}

func NewRewardService(args RewardServiceArgs) (*RewardService, error) {
	userRepo, err := repoFrom[UserRepository](args.UOW, repoargs.UserRepoName)
	if err != nil {
		return nil, err
	}
	tokenRepo, err := repoFrom[RewardTokenRepository](args.UOW, repoargs.RewardTokenRepoName)
	if err != nil {
		return nil, err
	}
	reconRepo, err := repoFrom[ReconciliationRepository](args.UOW, repoargs.ReconciliationRepoName)
	if err != nil {
		return nil, err
	}
	timeout := args.Settings.ProviderTimeout
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &RewardService{
		uow:             args.UOW,
		locker:          args.Locker,
		provider:        args.Provider,
		catalog:         args.Catalog,
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		reconRepo:       reconRepo,
		metrics:         args.Metrics,
		rewardCoins:     args.Settings.RewardCoins,
		providerTimeout: timeout,
		log:             args.Logger.WithFields(logrus.Fields{"component": "service", "module": "reward"}),
	}, nil
}

// CoinCatalog услуги, доступные за монеты.
func (s *RewardService) CoinCatalog() []pricing.CoinService {
	res := make([]pricing.CoinService, len(s.catalog.CoinServices))
	copy(res, s.catalog.CoinServices)
	return res
}

func (s *RewardService) IssueToken(ctx context.Context, userID string) (*domain.RewardToken, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("issuing reward token: %w", userNotFound(err))
	}
	token, err := s.tokenRepo.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("issuing reward token: %w", err)
	}
	return token, nil
}

// ClaimReward погашает токен и начисляет монеты. Токен погашается ровно один раз: повтор дает
// domain.ErrAlreadyProcessed, чужой токен domain.ErrForbidden.
func (s *RewardService) ClaimReward(ctx context.Context, userID, token string) (*domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("claiming reward: %w", domain.NewInvalidRequestError("token", "empty"))
	}

	var user *domain.User
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		tokenRepo, err := txRepo[RewardTokenRepository](tx, repoargs.RewardTokenRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		userRepo, err := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}

		t, err := tokenRepo.FindForUpdate(ctx, token)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return domain.NewInvalidRequestError("token", "unknown reward token")
			}
			return err //nolint:wrapcheck
		}
		if t.UserID != userID {
			return domain.ErrForbidden
		}
		if t.Claimed {
			return domain.ErrAlreadyProcessed
		}
		if _, err = tokenRepo.MarkClaimed(ctx, token); err != nil {
			return err //nolint:wrapcheck
		}
		user, err = userRepo.AddCoins(ctx, userID, s.rewardCoins)
		return userNotFound(err)
	})
	s.metrics.LedgerOperation("claim_reward", ledgerOutcome(err))
	if err != nil {
		return nil, fmt.Errorf("claiming reward: %w", err)
	}
	return user, nil
}

// RedeemCoins размещает заказ услуги из каталога монет. Протокол тот же, что у OrderService.Place:
// провайдер вызывается до локальной транзакции, а неудачная фиксация оставляет запись сверки.
// Нехватка монет дает domain.ErrInsufficientBalance.
func (s *RewardService) RedeemCoins(ctx context.Context, userID, serviceKey, link string) (*domain.Order, error) {
	order, err := s.redeem(ctx, userID, serviceKey, link)
	s.metrics.Settlement(settlementOutcome(err))
	if err != nil {
		return nil, fmt.Errorf("redeeming coins: %w", err)
	}
	return order, nil
}

func (s *RewardService) redeem(ctx context.Context, userID, serviceKey, link string) (*domain.Order, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, domain.NewInvalidRequestError("link", "empty")
	}
	svc, ok := s.catalog.CoinService(serviceKey)
	if !ok {
		return nil, fmt.Errorf("coin service `%s`: %w", serviceKey, domain.ErrServiceNotFound)
	}

	unlock, lockErr := s.locker.Lock(ctx, userLockKey(userID))
	if lockErr != nil {
		return nil, fmt.Errorf("lock user: %w", lockErr)
	}
	defer unlock()

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, userNotFound(err)
	}
	if user.Coins < svc.Cost {
		return nil, fmt.Errorf("coins %d < %d: %w", user.Coins, svc.Cost, domain.ErrInsufficientBalance)
	}

	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	providerOrderID, addErr := s.provider.AddOrder(providerCtx, svc.ServiceID, link, svc.Quantity)
	cancel()
	if addErr != nil {
		if errors.Is(addErr, domain.ErrProviderAmbiguous) {
			return nil, s.pending(ctx, userID, svc, link, "", addErr)
		}
		return nil, addErr //nolint:wrapcheck
	}

	var order *domain.Order
	commitErr := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		userRepo, err := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		orderRepo, err := txRepo[OrderRepository](tx, repoargs.OrderRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		locked, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return userNotFound(err)
		}
		if locked.Coins < svc.Cost {
			return domain.ErrInsufficientBalance
		}
		if _, err = userRepo.AddCoins(ctx, userID, -svc.Cost); err != nil {
			return err //nolint:wrapcheck
		}
		order, err = orderRepo.CreateOrder(ctx, repoargs.CreateOrder{
			UserID:          userID,
			ProviderOrderID: providerOrderID,
			ServiceID:       svc.ServiceID,
			ServiceName:     svc.Name,
			Link:            link,
			Quantity:        svc.Quantity,
			Charge:          decimal.Zero,
			Status:          domain.OrderStatusCoinPending,
		})
		return err //nolint:wrapcheck
	})
	if commitErr != nil {
		return nil, s.pending(ctx, userID, svc, link, providerOrderID, commitErr)
	}
	return order, nil
}

func (s *RewardService) pending(
	ctx context.Context,
	userID string,
	svc pricing.CoinService,
	link string,
	providerOrderID string,
	cause error,
) error {
	return recordReconciliation(ctx, s.reconRepo, s.log, repoargs.CreateReconciliation{
		UserID:          userID,
		ProviderOrderID: providerOrderID,
		ServiceID:       svc.ServiceID,
		ServiceName:     svc.Name,
		Link:            link,
		Quantity:        svc.Quantity,
		Charge:          decimal.Zero,
		Profit:          decimal.Zero,
		Coins:           svc.Cost,
		Reason:          fmt.Sprintf("coin redemption: %v", cause),
	}, cause)
}
