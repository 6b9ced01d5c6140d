package service

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// ProviderGateway вышестоящий SMM провайдер. Ошибки нормализованы к domain.ErrProviderUnavailable,
// *domain.ProviderRejectedError и *domain.ProviderAmbiguousError.
type ProviderGateway interface {
	Services(ctx context.Context) ([]domain.ProviderService, error)
	AddOrder(ctx context.Context, serviceID, link string, quantity int64) (string, error)
	Status(ctx context.Context, orderIDs []string) (map[string]domain.ProviderOrderStatus, error)
	Cancel(ctx context.Context, orderID string) error
	Refill(ctx context.Context, orderID string) (string, error)
	RefillStatus(ctx context.Context, refillID string) (string, error)
	Balance(ctx context.Context) (*domain.ProviderBalance, error)
}

// MarkupCache кэш таблицы правил наценки.
type MarkupCache interface {
	Load(ctx context.Context) ([]domain.MarkupRule, bool, error)
	Store(ctx context.Context, rules []domain.MarkupRule) error
	Invalidate(ctx context.Context) error
}
