package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/pricing"
	"golang.org/x/sync/errgroup"
)

type markupSource interface {
	Rules(ctx context.Context) (map[string]domain.MarkupRule, error)
}

// CatalogService каталог услуг провайдера в розничных ценах.
type CatalogService struct {
	provider ProviderGateway
	markup   markupSource
	resolver *pricing.Resolver
}

func NewCatalogService(provider ProviderGateway, markup markupSource, resolver *pricing.Resolver) *CatalogService {
	return &CatalogService{provider: provider, markup: markup, resolver: resolver}
}

// OrderQuote цена конкретного заказа.
type OrderQuote struct {
	Service     domain.ProviderService
	CategoryKey string
	pricing.Quote
}

// ListServices возвращает все услуги провайдера с розничной ставкой, округленной для показа.
func (s *CatalogService) ListServices(ctx context.Context) ([]domain.CatalogService, error) {
	services, rules, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}

	res := make([]domain.CatalogService, len(services))
	for i, svc := range services {
		key, _ := s.resolver.ResolveCategoryKey(svc.Category, svc.Name)
		res[i] = domain.CatalogService{
			ProviderService: svc,
			CategoryKey:     key,
			RetailRate: s.resolver.
				RetailRate(svc.Category, svc.Name, svc.Rate, rules).
				Round(pricing.RatePlaces),
		}
	}
	return res, nil
}

// Quote считает цену заказа по свежему каталогу провайдера. Возвращает domain.ErrServiceNotFound, если
// услуги нет в каталоге, и domain.ErrInvalidRequest, если количество вне допустимых границ.
func (s *CatalogService) Quote(ctx context.Context, serviceID string, quantity int64) (*OrderQuote, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quoting: %w", domain.NewInvalidRequestError("quantity", "must be positive"))
	}

	services, rules, err := s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("quoting: %w", err)
	}

	var svc *domain.ProviderService
	for i := range services {
		if services[i].ID == serviceID {
			svc = &services[i]
			break
		}
	}
	if svc == nil {
		return nil, fmt.Errorf("quoting service `%s`: %w", serviceID, domain.ErrServiceNotFound)
	}
	if svc.Min > 0 && quantity < svc.Min {
		return nil, fmt.Errorf("quoting: %w",
			domain.NewInvalidRequestError("quantity", fmt.Sprintf("minimum is %d", svc.Min)))
	}
	if svc.Max > 0 && quantity > svc.Max {
		return nil, fmt.Errorf("quoting: %w",
			domain.NewInvalidRequestError("quantity", fmt.Sprintf("maximum is %d", svc.Max)))
	}

	key, _ := s.resolver.ResolveCategoryKey(svc.Category, svc.Name)
	retail := s.resolver.RetailRate(svc.Category, svc.Name, svc.Rate, rules)

	return &OrderQuote{
		Service:     *svc,
		CategoryKey: key,
		Quote:       pricing.Price(svc.Rate, retail, quantity),
	}, nil
}

// fetch параллельно загружает каталог провайдера и правила наценки.
func (s *CatalogService) fetch(ctx context.Context) ([]domain.ProviderService, map[string]domain.MarkupRule, error) {
	var (
		services []domain.ProviderService
		rules    map[string]domain.MarkupRule
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		services, err = s.provider.Services(gCtx)
		return err //nolint:wrapcheck
	})
	g.Go(func() error {
		var err error
		rules, err = s.markup.Rules(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	return services, rules, nil
}
