// Package rediscache кэширует таблицу правил наценки в redis. Таблица читается на каждую котировку и
// меняется только админом, поэтому кэшируется целиком под одним ключом.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

const (
	DefaultKey = "smmpanel:markup_rules"
	DefaultTTL = 10 * time.Minute
)

type cachedRule struct {
	CategoryKey string          `json:"categoryKey"`
	Type        string          `json:"type"`
	Value       decimal.Decimal `json:"value"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type MarkupCache struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

func NewMarkupCache(client redis.UniversalClient, ttl time.Duration) *MarkupCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MarkupCache{client: client, key: DefaultKey, ttl: ttl}
}

// Connect разбирает url вида redis://host:port/db и проверяет соединение.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %s", err.Error())
	}
	client := redis.NewClient(opts)
	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %s", pingErr.Error())
	}
	return client, nil
}

// Load возвращает правила из кэша. Второй результат false, если кэш пуст.
func (m *MarkupCache) Load(ctx context.Context) ([]domain.MarkupRule, bool, error) {
	raw, err := m.client.Get(ctx, m.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("[rediscache] load markup rules: %w", err)
	}

	var cached []cachedRule
	if unmarshalErr := json.Unmarshal(raw, &cached); unmarshalErr != nil {
		return nil, false, fmt.Errorf("[rediscache] decode markup rules: %w", unmarshalErr)
	}
	rules := make([]domain.MarkupRule, len(cached))
	for i, c := range cached {
		rules[i] = domain.MarkupRule{
			CategoryKey: c.CategoryKey,
			Type:        domain.MarkupType(c.Type),
			Value:       c.Value,
			UpdatedAt:   c.UpdatedAt,
		}
	}
	return rules, true, nil
}

func (m *MarkupCache) Store(ctx context.Context, rules []domain.MarkupRule) error {
	cached := make([]cachedRule, len(rules))
	for i, r := range rules {
		cached[i] = cachedRule{
			CategoryKey: r.CategoryKey,
			Type:        string(r.Type),
			Value:       r.Value,
			UpdatedAt:   r.UpdatedAt,
		}
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("[rediscache] encode markup rules: %w", err)
	}
	if setErr := m.client.Set(ctx, m.key, raw, m.ttl).Err(); setErr != nil {
		return fmt.Errorf("[rediscache] store markup rules: %w", setErr)
	}
	return nil
}

func (m *MarkupCache) Invalidate(ctx context.Context) error {
	if err := m.client.Del(ctx, m.key).Err(); err != nil {
		return fmt.Errorf("[rediscache] invalidate markup rules: %w", err)
	}
	return nil
}
