package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/sirupsen/logrus"
)

type ReconciliationAction string

const (
	// ReconcileCommit проводит заказ локально: списание баланса или монет, заказ, запись прибыли.
	ReconcileCommit ReconciliationAction = "commit"
	// ReconcileCancel отменяет заказ у провайдера, локально ничего не списывается.
	ReconcileCancel ReconciliationAction = "cancel"
	// ReconcileDismiss закрывает запись без действий, например когда провайдер заказ не принял.
	ReconcileDismiss ReconciliationAction = "dismiss"
)

type ReconciliationService struct {
	uow             uow.UOW
	provider        ProviderGateway
	reconRepo       ReconciliationRepository
	providerTimeout time.Duration
	log             *logrus.Entry
}

func NewReconciliationService(
	u uow.UOW,
	provider ProviderGateway,
	settings Settings,
	l *logrus.Logger,
) (*ReconciliationService, error) {
	reconRepo, err := repoFrom[ReconciliationRepository](u, repoargs.ReconciliationRepoName)
	if err != nil {
		return nil, err
	}
	timeout := settings.ProviderTimeout
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &ReconciliationService{
		uow:             u,
		provider:        provider,
		reconRepo:       reconRepo,
		providerTimeout: timeout,
		log:             l.WithFields(logrus.Fields{"component": "service", "module": "reconciliation"}),
	}, nil
}

// List записи сверки с указанным статусом. Пустой статус означает все записи.
func (s *ReconciliationService) List(
	ctx context.Context,
	status domain.ReconciliationStatus,
	page repoargs.Page,
) ([]domain.Reconciliation, error) {
	res, err := s.reconRepo.List(ctx, status, page)
	if err != nil {
		return nil, fmt.Errorf("listing reconciliations: %w", err)
	}
	return res, nil
}

type ResolveArgs struct {
	ID     string
	Action ReconciliationAction
	// ProviderOrderID id заказа у провайдера, если в записи его нет (исход запроса был неизвестен).
	ProviderOrderID string
}

// Resolve закрывает запись сверки. Закрыть можно только запись в статусе pending, иначе
// domain.ErrAlreadyProcessed.
func (s *ReconciliationService) Resolve(ctx context.Context, args ResolveArgs) (*domain.Reconciliation, error) {
	var (
		res *domain.Reconciliation
		err error
	)
	switch args.Action {
	case ReconcileCommit:
		res, err = s.commit(ctx, args)
	case ReconcileCancel:
		res, err = s.cancel(ctx, args)
	case ReconcileDismiss:
		res, err = s.close(ctx, args.ID, domain.ReconciliationDismissed, nil)
	default:
		err = domain.NewInvalidRequestError("action", fmt.Sprintf("unsupported action `%s`", args.Action))
	}
	if err != nil {
		return nil, fmt.Errorf("resolving reconciliation: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"reconciliationId": res.ID,
		"action":           args.Action,
	}).Info("reconciliation resolved")
	return res, nil
}

func (s *ReconciliationService) commit(ctx context.Context, args ResolveArgs) (*domain.Reconciliation, error) {
	var res *domain.Reconciliation
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		reconRepo, err := txRepo[ReconciliationRepository](tx, repoargs.ReconciliationRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		userRepo, err := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		orderRepo, err := txRepo[OrderRepository](tx, repoargs.OrderRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		profitRepo, err := txRepo[ProfitRepository](tx, repoargs.ProfitRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}

		rec, err := lockPending(ctx, reconRepo, args.ID)
		if err != nil {
			return err
		}
		providerOrderID := rec.ProviderOrderID
		if providerOrderID == "" {
			providerOrderID = strings.TrimSpace(args.ProviderOrderID)
		}
		if providerOrderID == "" {
			return domain.NewInvalidRequestError("providerOrderId", "required to commit this record")
		}

		user, err := userRepo.FindByIDForUpdate(ctx, rec.UserID)
		if err != nil {
			return userNotFound(err)
		}
		if user.Balance.LessThan(rec.Charge) {
			return domain.ErrInsufficientBalance
		}
		if user.Coins < rec.Coins {
			return fmt.Errorf("coins %d < %d: %w", user.Coins, rec.Coins, domain.ErrInsufficientBalance)
		}
		if rec.Charge.IsPositive() {
			if _, err = userRepo.AddBalance(ctx, rec.UserID, rec.Charge.Neg()); err != nil {
				return err //nolint:wrapcheck
			}
		}
		status := domain.OrderStatusPending
		if rec.Coins > 0 {
			if _, err = userRepo.AddCoins(ctx, rec.UserID, -rec.Coins); err != nil {
				return err //nolint:wrapcheck
			}
		}
		if rec.Coins > 0 || rec.Charge.IsZero() {
			status = domain.OrderStatusCoinPending
		}
		order, err := orderRepo.CreateOrder(ctx, repoargs.CreateOrder{
			UserID:          rec.UserID,
			ProviderOrderID: providerOrderID,
			ServiceID:       rec.ServiceID,
			ServiceName:     rec.ServiceName,
			Link:            rec.Link,
			Quantity:        rec.Quantity,
			Charge:          rec.Charge,
			Status:          status,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		if rec.Charge.IsPositive() {
			if _, err = profitRepo.CreateEntry(ctx, repoargs.CreateProfitEntry{
				OrderID:     order.ID,
				UserID:      rec.UserID,
				Username:    user.Username,
				ServiceID:   rec.ServiceID,
				ServiceName: rec.ServiceName,
				Profit:      rec.Profit,
			}); err != nil {
				return err //nolint:wrapcheck
			}
		}
		res, err = reconRepo.Resolve(ctx, repoargs.ResolveReconciliation{
			ID:      rec.ID,
			Status:  domain.ReconciliationCommitted,
			OrderID: &order.ID,
		})
		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return res, nil
}

func (s *ReconciliationService) cancel(ctx context.Context, args ResolveArgs) (*domain.Reconciliation, error) {
	rec, err := s.reconRepo.FindByIDForUpdate(ctx, args.ID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if rec.Status != domain.ReconciliationPending {
		return nil, fmt.Errorf("reconciliation is %s: %w", rec.Status, domain.ErrAlreadyProcessed)
	}
	providerOrderID := rec.ProviderOrderID
	if providerOrderID == "" {
		providerOrderID = strings.TrimSpace(args.ProviderOrderID)
	}
	if providerOrderID == "" {
		return nil, domain.NewInvalidRequestError("providerOrderId", "required to cancel this record")
	}

	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()
	if err = s.provider.Cancel(providerCtx, providerOrderID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return s.close(ctx, args.ID, domain.ReconciliationCanceled, nil)
}

func (s *ReconciliationService) close(
	ctx context.Context,
	id string,
	status domain.ReconciliationStatus,
	orderID *string,
) (*domain.Reconciliation, error) {
	var res *domain.Reconciliation
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		reconRepo, err := txRepo[ReconciliationRepository](tx, repoargs.ReconciliationRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = lockPending(ctx, reconRepo, id); err != nil {
			return err
		}
		res, err = reconRepo.Resolve(ctx, repoargs.ResolveReconciliation{ID: id, Status: status, OrderID: orderID})
		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return res, nil
}

func lockPending(ctx context.Context, repo ReconciliationRepository, id string) (*domain.Reconciliation, error) {
	rec, err := repo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if rec.Status != domain.ReconciliationPending {
		return nil, fmt.Errorf("reconciliation is %s: %w", rec.Status, domain.ErrAlreadyProcessed)
	}
	return rec, nil
}
