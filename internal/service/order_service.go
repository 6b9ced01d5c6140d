package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/sirupsen/logrus"
)

type quoter interface {
	Quote(ctx context.Context, serviceID string, quantity int64) (*OrderQuote, error)
}

// OrderService размещение заказов и операции над ними.
//
// Размещение идет в порядке: котировка, проверка баланса, заказ у провайдера, одна локальная транзакция
// (списание, заказ, запись прибыли). Провайдер никогда не вызывается внутри транзакции, потому что
// транзакция может повторяться. Все шаги одного юзера сериализованы блокировкой userLockKey.
type OrderService struct {
	uow             uow.UOW
	locker          uow.Locker
	provider        ProviderGateway
	catalog         quoter
	orderRepo       OrderRepository
	userRepo        UserRepository
	reconRepo       ReconciliationRepository
	metrics         *metrics.Metrics
	providerTimeout time.Duration
	log             *logrus.Entry
}

type OrderServiceArgs struct {
	UOW      uow.UOW
	Locker   uow.Locker
	Provider ProviderGateway
	Catalog  quoter
	Metrics  *metrics.Metrics
	Settings Settings
	Logger   *logrus.Logger
}

func NewOrderService(args OrderServiceArgs) (*OrderService, error) {
	orderRepo, err := repoFrom[OrderRepository](args.UOW, repoargs.OrderRepoName)
	if err != nil {
		return nil, err
	}
	userRepo, err := repoFrom[UserRepository](args.UOW, repoargs.UserRepoName)
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
	return &OrderService{
		uow:             args.UOW,
		locker:          args.Locker,
		provider:        args.Provider,
		catalog:         args.Catalog,
		orderRepo:       orderRepo,
		userRepo:        userRepo,
		reconRepo:       reconRepo,
		metrics:         args.Metrics,
		providerTimeout: timeout,
		log:             args.Logger.WithFields(logrus.Fields{"component": "service", "module": "order"}),
	}, nil
}

type PlaceOrderArgs struct {
	UserID    string
	ServiceID string
	Link      string
	Quantity  int64
}

type PlacedOrder struct {
	Order *domain.Order
	Quote *OrderQuote
	User  *domain.User
}

// Place размещает заказ. Ошибки:
//   - domain.ErrUserNotFound, domain.ErrServiceNotFound, domain.ErrInvalidRequest;
//   - domain.ErrInsufficientBalance, если баланс меньше списания;
//   - domain.ErrProviderUnavailable и *domain.ProviderRejectedError без изменения состояния;
//   - *domain.ReconciliationPendingError, если провайдер принял заказ (или исход неизвестен), а локальная
//     фиксация не удалась. Запись сверки при этом сохранена.
func (s *OrderService) Place(ctx context.Context, args PlaceOrderArgs) (*PlacedOrder, error) {
	res, err := s.place(ctx, args)
	s.metrics.Settlement(settlementOutcome(err))
	if err != nil {
		return nil, fmt.Errorf("placing order: %w", err)
	}
	return res, nil
}

func (s *OrderService) place(ctx context.Context, args PlaceOrderArgs) (*PlacedOrder, error) {
	args.Link = strings.TrimSpace(args.Link)
	if args.Link == "" {
		return nil, domain.NewInvalidRequestError("link", "empty")
	}
	if args.ServiceID == "" {
		return nil, domain.NewInvalidRequestError("serviceId", "empty")
	}

	unlock, lockErr := s.locker.Lock(ctx, userLockKey(args.UserID))
	if lockErr != nil {
		return nil, fmt.Errorf("lock user: %w", lockErr)
	}
	defer unlock()

	user, userErr := s.userRepo.FindByID(ctx, args.UserID)
	if userErr != nil {
		return nil, userNotFound(userErr)
	}

	quote, quoteErr := s.catalog.Quote(ctx, args.ServiceID, args.Quantity)
	if quoteErr != nil {
		return nil, quoteErr //nolint:wrapcheck
	}
	if user.Balance.LessThan(quote.TotalCharge) {
		return nil, domain.ErrInsufficientBalance
	}

	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	providerOrderID, addErr := s.provider.AddOrder(providerCtx, args.ServiceID, args.Link, args.Quantity)
	cancel()
	if addErr != nil {
		if errors.Is(addErr, domain.ErrProviderAmbiguous) {
			return nil, s.pending(ctx, args, quote, "", addErr)
		}
		return nil, addErr //nolint:wrapcheck
	}

	var placed PlacedOrder
	commitErr := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		return s.commit(ctx, tx, args, quote, providerOrderID, &placed)
	})
	if commitErr != nil {
		return nil, s.pending(ctx, args, quote, providerOrderID, commitErr)
	}
	placed.Quote = quote
	return &placed, nil
}

// commit списывает баланс и сохраняет заказ с записью прибыли. Баланс перепроверяется под блокировкой
// строки.
func (s *OrderService) commit(
	ctx context.Context,
	tx uow.TX,
	args PlaceOrderArgs,
	quote *OrderQuote,
	providerOrderID string,
	placed *PlacedOrder,
) error {
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

	user, err := userRepo.FindByIDForUpdate(ctx, args.UserID)
	if err != nil {
		return userNotFound(err)
	}
	if user.Balance.LessThan(quote.TotalCharge) {
		return domain.ErrInsufficientBalance
	}
	if user, err = userRepo.AddBalance(ctx, args.UserID, quote.TotalCharge.Neg()); err != nil {
		return err //nolint:wrapcheck
	}

	order, err := orderRepo.CreateOrder(ctx, repoargs.CreateOrder{
		UserID:          args.UserID,
		ProviderOrderID: providerOrderID,
		ServiceID:       args.ServiceID,
		ServiceName:     quote.Service.Name,
		Link:            args.Link,
		Quantity:        args.Quantity,
		Charge:          quote.TotalCharge,
		Status:          domain.OrderStatusPending,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	if _, err = profitRepo.CreateEntry(ctx, repoargs.CreateProfitEntry{
		OrderID:     order.ID,
		UserID:      args.UserID,
		Username:    user.Username,
		ServiceID:   args.ServiceID,
		ServiceName: quote.Service.Name,
		Profit:      quote.Profit,
	}); err != nil {
		return err //nolint:wrapcheck
	}

	placed.Order = order
	placed.User = user
	return nil
}

// pending сохраняет запись сверки для заказа, принятого провайдером (или с неизвестным исходом),
// и возвращает *domain.ReconciliationPendingError.
func (s *OrderService) pending(
	ctx context.Context,
	args PlaceOrderArgs,
	quote *OrderQuote,
	providerOrderID string,
	cause error,
) error {
	reason := "provider outcome unknown"
	if providerOrderID != "" {
		reason = "local commit failed"
	}
	return recordReconciliation(ctx, s.reconRepo, s.log, repoargs.CreateReconciliation{
		UserID:          args.UserID,
		ProviderOrderID: providerOrderID,
		ServiceID:       args.ServiceID,
		ServiceName:     quote.Service.Name,
		Link:            args.Link,
		Quantity:        args.Quantity,
		Charge:          quote.TotalCharge,
		Profit:          quote.Profit,
		Reason:          reason + ": " + cause.Error(),
	}, cause)
}

// ListOrders заказы юзера, новые первыми.
func (s *OrderService) ListOrders(ctx context.Context, userID string, page repoargs.Page) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}

// SyncStatuses запрашивает у провайдера статусы незавершенных заказов юзера и сохраняет их одной
// транзакцией. Возвращает обновленные заказы.
func (s *OrderService) SyncStatuses(ctx context.Context, userID string) ([]domain.Order, error) {
	active, err := s.orderRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("syncing statuses: %w", err)
	}
	if len(active) == 0 {
		return []domain.Order{}, nil
	}

	ids := make([]string, len(active))
	for i, o := range active {
		ids[i] = o.ProviderOrderID
	}
	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	statuses, statusErr := s.provider.Status(providerCtx, ids)
	cancel()
	if statusErr != nil {
		return nil, fmt.Errorf("syncing statuses: %w", statusErr)
	}

	updates := StatusUpdatesFor(active, statuses)
	if err = s.ApplyStatuses(ctx, updates); err != nil {
		return nil, fmt.Errorf("syncing statuses: %w", err)
	}

	byID := make(map[string]repoargs.UpdateOrderStatus, len(updates))
	for _, u := range updates {
		byID[u.ID] = u
	}
	for i := range active {
		if u, ok := byID[active[i].ID]; ok {
			active[i].Status = u.Status
			active[i].StartCount = u.StartCount
			active[i].Remains = u.Remains
		}
	}
	return active, nil
}

// StatusUpdatesFor сопоставляет заказы со статусами провайдера. Заказы без статуса или с ошибкой
// провайдера пропускаются.
func StatusUpdatesFor(
	orders []domain.Order,
	statuses map[string]domain.ProviderOrderStatus,
) []repoargs.UpdateOrderStatus {
	updates := make([]repoargs.UpdateOrderStatus, 0, len(orders))
	for _, o := range orders {
		st, ok := statuses[o.ProviderOrderID]
		if !ok || st.Err != "" || st.Status == "" {
			continue
		}
		updates = append(updates, repoargs.UpdateOrderStatus{
			ID:         o.ID,
			Status:     st.Status,
			StartCount: st.StartCount,
			Remains:    st.Remains,
		})
	}
	return updates
}

// ApplyStatuses сохраняет статусы провайдера одной транзакцией. Меняются только поля статуса.
func (s *OrderService) ApplyStatuses(ctx context.Context, updates []repoargs.UpdateOrderStatus) error {
	if len(updates) == 0 {
		return nil
	}
	txErr := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		orderRepo, err := txRepo[OrderRepository](tx, repoargs.OrderRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		var errs []error
		orderRepo.BatchUpdateStatus(ctx, updates, func(_ int, err error) {
			if err != nil {
				errs = append(errs, err)
			}
		})
		return errors.Join(errs...)
	})
	if txErr != nil {
		return fmt.Errorf("applying statuses: %w", txErr)
	}
	return nil
}

// ListForSync незавершенные заказы всех юзеров для фоновой синхронизации.
func (s *OrderService) ListForSync(ctx context.Context, limit uint) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListForSync(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing orders for sync: %w", err)
	}
	return orders, nil
}

// MarkSynced отмечает заказы, по которым провайдер не вернул статус, чтобы они не блокировали очередь.
func (s *OrderService) MarkSynced(ctx context.Context, orderIDs []string) error {
	if len(orderIDs) == 0 {
		return nil
	}
	if err := s.orderRepo.MarkSynced(ctx, orderIDs); err != nil {
		return fmt.Errorf("marking orders synced: %w", err)
	}
	return nil
}

// Cancel просит провайдера отменить заказ. Локальный статус меняется при следующей синхронизации.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID string) error {
	order, err := s.ownOrder(ctx, userID, orderID)
	if err != nil {
		return fmt.Errorf("canceling order: %w", err)
	}
	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()
	if err = s.provider.Cancel(providerCtx, order.ProviderOrderID); err != nil {
		return fmt.Errorf("canceling order: %w", err)
	}
	return nil
}

// Refill запрашивает докрутку и сохраняет id заявки в заказе.
func (s *OrderService) Refill(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.ownOrder(ctx, userID, orderID)
	if err != nil {
		return nil, fmt.Errorf("requesting refill: %w", err)
	}
	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	refillID, refillErr := s.provider.Refill(providerCtx, order.ProviderOrderID)
	cancel()
	if refillErr != nil {
		return nil, fmt.Errorf("requesting refill: %w", refillErr)
	}
	updated, err := s.orderRepo.SetRefillID(ctx, order.ID, refillID)
	if err != nil {
		return nil, fmt.Errorf("requesting refill: %w", err)
	}
	return updated, nil
}

func (s *OrderService) RefillStatus(ctx context.Context, userID, orderID string) (string, error) {
	order, err := s.ownOrder(ctx, userID, orderID)
	if err != nil {
		return "", fmt.Errorf("getting refill status: %w", err)
	}
	if order.RefillID == nil || *order.RefillID == "" {
		return "", fmt.Errorf("getting refill status: %w",
			domain.NewInvalidRequestError("refill", "no refill requested for this order"))
	}
	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()
	status, err := s.provider.RefillStatus(providerCtx, *order.RefillID)
	if err != nil {
		return "", fmt.Errorf("getting refill status: %w", err)
	}
	return status, nil
}

// ownOrder находит заказ юзера. Чужой заказ дает domain.ErrForbidden.
func (s *OrderService) ownOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// recordReconciliation сохраняет запись сверки на отвязанном контексте и логирует заказ целиком.
// Если сохранить не удалось, запись остается только в логе.
func recordReconciliation(
	ctx context.Context,
	repo ReconciliationRepository,
	log *logrus.Entry,
	args repoargs.CreateReconciliation,
	cause error,
) error {
	fields := logrus.Fields{
		"userId":          args.UserID,
		"providerOrderId": args.ProviderOrderID,
		"serviceId":       args.ServiceID,
		"serviceName":     args.ServiceName,
		"link":            args.Link,
		"quantity":        args.Quantity,
		"charge":          args.Charge.String(),
		"profit":          args.Profit.String(),
	}

	saveCtx, cancel := detached(ctx)
	defer cancel()
	rec, err := repo.Create(saveCtx, args)
	if err != nil {
		log.WithError(errors.Join(cause, err)).WithFields(fields).
			Error("order requires reconciliation, record was not persisted")
		return &domain.ReconciliationPendingError{
			ProviderOrderID: args.ProviderOrderID,
			Cause:           errors.Join(cause, err),
		}
	}

	log.WithError(cause).WithFields(fields).WithField("reconciliationId", rec.ID).
		Error("order requires reconciliation")
	return &domain.ReconciliationPendingError{
		ReconciliationID: rec.ID,
		ProviderOrderID:  args.ProviderOrderID,
		Cause:            cause,
	}
}

func settlementOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.SettlementSuccess
	case errors.Is(err, domain.ErrReconciliationPending):
		return metrics.SettlementReconciliation
	case errors.Is(err, domain.ErrInsufficientBalance):
		return metrics.SettlementInsufficient
	case errors.Is(err, domain.ErrProviderRejected):
		return metrics.SettlementRejected
	case errors.Is(err, domain.ErrProviderUnavailable):
		return metrics.SettlementUnavailable
	default:
		return metrics.SettlementValidationFailure
	}
}
