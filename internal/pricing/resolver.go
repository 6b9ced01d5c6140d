// Package pricing переводит оптовую ставку провайдера в розничную цену и считает списание и прибыль.
package pricing

import (
	"strings"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Resolver классифицирует услугу провайдера по (платформа, подкатегория) и применяет правило наценки.
//
// Платформа определяется по первому совпадению в упорядоченной таблице, а не по лучшему. Ключевые
// слова разных платформ должны быть непересекающимися, иначе результат зависит от порядка в таблице
// (например, "ig" находится и внутри "digital").
type Resolver struct {
	platforms     []KeywordSet
	subCategories []KeywordSet
	defaultFactor decimal.Decimal
}

func NewResolver(catalog *Catalog, defaultFactor decimal.Decimal) *Resolver {
	return &Resolver{
		platforms:     catalog.Platforms,
		subCategories: catalog.SubCategories,
		defaultFactor: defaultFactor,
	}
}

// Platform возвращает платформу по категории провайдера или false, если совпадений нет.
func (r *Resolver) Platform(providerCategory string) (string, bool) {
	return firstMatch(r.platforms, providerCategory)
}

// SubCategory возвращает подкатегорию по названию услуги. Всегда успешна, по умолчанию SubCategoryOther.
func (r *Resolver) SubCategory(providerServiceName string) string {
	if name, ok := firstMatch(r.subCategories, providerServiceName); ok {
		return name
	}
	return SubCategoryOther
}

// ResolveCategoryKey возвращает ключ правила наценки вида "<платформа>_<подкатегория>". Если платформа
// не определена, второй результат false и конкретное правило применяться не может.
func (r *Resolver) ResolveCategoryKey(providerCategory, providerServiceName string) (string, bool) {
	platform, ok := r.Platform(providerCategory)
	if !ok {
		return "", false
	}
	return platform + "_" + r.SubCategory(providerServiceName), true
}

// ApplyMarkup применяет правило к оптовой ставке за 1000. Без правила ставка умножается на множитель
// по умолчанию, неизвестный тип правила оставляет ставку без изменений.
func (r *Resolver) ApplyMarkup(wholesalePer1000 decimal.Decimal, rule *domain.MarkupRule) decimal.Decimal {
	if rule == nil {
		return wholesalePer1000.Mul(r.defaultFactor)
	}
	switch rule.Type {
	case domain.MarkupPercent:
		return wholesalePer1000.Mul(decimal.NewFromInt(1).Add(rule.Value.Div(hundred)))
	case domain.MarkupFixed:
		return wholesalePer1000.Add(rule.Value)
	default:
		return wholesalePer1000
	}
}

// RetailRate находит правило для услуги в rules и возвращает розничную ставку за 1000.
func (r *Resolver) RetailRate(
	providerCategory string,
	providerServiceName string,
	wholesalePer1000 decimal.Decimal,
	rules map[string]domain.MarkupRule,
) decimal.Decimal {
	var rule *domain.MarkupRule
	if key, ok := r.ResolveCategoryKey(providerCategory, providerServiceName); ok {
		if found, exist := rules[key]; exist {
			rule = &found
		}
	}
	return r.ApplyMarkup(wholesalePer1000, rule)
}

func firstMatch(sets []KeywordSet, value string) (string, bool) {
	if value == "" {
		return "", false
	}
	lowered := strings.ToLower(value)
	for _, set := range sets {
		for _, kw := range set.Keywords {
			if strings.Contains(lowered, kw) {
				return set.Name, true
			}
		}
	}
	return "", false
}
