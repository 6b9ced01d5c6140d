package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/sirupsen/logrus"
)

// MarkupService правила наценки. Таблица читается на каждую котировку, поэтому при наличии кэша
// читается через него. Ошибки кэша не фатальны.
type MarkupService struct {
	uow   uow.UOW
	repo  MarkupRuleRepository
	cache MarkupCache
	log   *logrus.Entry
}

// NewMarkupService cache может быть nil.
func NewMarkupService(u uow.UOW, cache MarkupCache, l *logrus.Logger) (*MarkupService, error) {
	repo, err := repoFrom[MarkupRuleRepository](u, repoargs.MarkupRuleRepoName)
	if err != nil {
		return nil, err
	}
	return &MarkupService{
		uow:   u,
		repo:  repo,
		cache: cache,
		log:   l.WithFields(logrus.Fields{"component": "service", "module": "markup"}),
	}, nil
}

func (s *MarkupService) List(ctx context.Context) ([]domain.MarkupRule, error) {
	if s.cache != nil {
		rules, ok, err := s.cache.Load(ctx)
		if err != nil {
			s.log.WithError(err).Warn("markup cache load failed, reading storage")
		}
		if ok {
			return rules, nil
		}
	}

	rules, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing markup rules: %w", err)
	}
	if s.cache != nil {
		if storeErr := s.cache.Store(ctx, rules); storeErr != nil {
			s.log.WithError(storeErr).Warn("markup cache store failed")
		}
	}
	return rules, nil
}

// Rules возвращает правила по ключу категории.
func (s *MarkupService) Rules(ctx context.Context) (map[string]domain.MarkupRule, error) {
	rules, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[string]domain.MarkupRule, len(rules))
	for _, r := range rules {
		res[r.CategoryKey] = r
	}
	return res, nil
}

// Save заменяет таблицу правил целиком и сбрасывает кэш.
func (s *MarkupService) Save(ctx context.Context, rules []domain.MarkupRule) ([]domain.MarkupRule, error) {
	seen := make(map[string]struct{}, len(rules))
	for i, r := range rules {
		key := strings.TrimSpace(r.CategoryKey)
		if key == "" {
			return nil, fmt.Errorf("saving markup rules: %w", domain.NewInvalidRequestError("categoryKey", "empty"))
		}
		if r.Type != domain.MarkupPercent && r.Type != domain.MarkupFixed {
			return nil, fmt.Errorf("saving markup rules: %w",
				domain.NewInvalidRequestError("type", fmt.Sprintf("unsupported markup type `%s`", r.Type)))
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("saving markup rules: %w",
				domain.NewInvalidRequestError("categoryKey", fmt.Sprintf("`%s` defined twice", key)))
		}
		seen[key] = struct{}{}
		rules[i].CategoryKey = key
	}

	txErr := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, err := txRepo[MarkupRuleRepository](tx, repoargs.MarkupRuleRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		return repo.ReplaceAll(ctx, rules) //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("saving markup rules: %w", txErr)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.WithError(err).Error("markup cache invalidation failed, stale rules until ttl")
		}
	}
	return s.List(ctx)
}
