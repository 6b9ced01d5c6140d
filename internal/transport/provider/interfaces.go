package provider

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
)

type StatusClient interface {
	Status(ctx context.Context, orderIDs []string) (map[string]domain.ProviderOrderStatus, error)
}

type Servicer interface {
	ListForSync(ctx context.Context, limit uint) ([]domain.Order, error)
	ApplyStatuses(ctx context.Context, updates []repoargs.UpdateOrderStatus) error
	MarkSynced(ctx context.Context, orderIDs []string) error
}
