package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/shopspring/decimal"
)

// Значения по умолчанию бизнес-настроек.
var (
	DefaultMarkupFactor       = decimal.RequireFromString("1.6")
	DefaultReferralCommission = decimal.RequireFromString("0.03")
	DefaultMinWithdrawal      = decimal.NewFromInt(50)
)

const (
	DefaultSignupCoins     int64 = 2
	DefaultRewardCoins     int64 = 1
	DefaultProviderTimeout       = 15 * time.Second
	// DefaultServiceTimeout таймаут фоновой записи после того, как контекст запроса уже мог быть отменен.
	DefaultServiceTimeout = 5 * time.Second
	// MoneyPlaces знаков после запятой в денежных колонках.
	MoneyPlaces int32 = 2
)

// Settings бизнес-настройки сервисов.
type Settings struct {
	DefaultMarkup      decimal.Decimal
	ReferralCommission decimal.Decimal
	MinWithdrawal      decimal.Decimal
	SignupCoins        int64
	RewardCoins        int64
	ProviderTimeout    time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		DefaultMarkup:      DefaultMarkupFactor,
		ReferralCommission: DefaultReferralCommission,
		MinWithdrawal:      DefaultMinWithdrawal,
		SignupCoins:        DefaultSignupCoins,
		RewardCoins:        DefaultRewardCoins,
		ProviderTimeout:    DefaultProviderTimeout,
	}
}

// validateAmount сумма должна быть положительной и храниться в денежной колонке без округления.
func validateAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.NewInvalidRequestError(field, "must be positive")
	}
	return validatePlaces(field, amount)
}

func validatePlaces(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(MoneyPlaces)) {
		return domain.NewInvalidRequestError(field, fmt.Sprintf("more than %d decimal places", MoneyPlaces))
	}
	return nil
}

// userLockKey ключ блокировки, сериализующей операции над балансом одного юзера.
func userLockKey(userID string) string {
	return "user:" + userID
}

func repoFrom[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	return uow.GetRepositoryAs[T](u, uow.RepositoryName(name))
}

func txRepo[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	return uow.GetAs[T](tx, uow.RepositoryName(name))
}

// userNotFound заменяет ErrRecordNotFound на ErrUserNotFound.
func userNotFound(err error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return errors.Join(domain.ErrUserNotFound, err)
	}
	return err
}

// detached возвращает контекст, переживающий отмену ctx, для записей, которые нельзя потерять.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), DefaultServiceTimeout)
}
