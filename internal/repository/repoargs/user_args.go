package repoargs

import (
	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateUser struct {
	ID           string
	Email        string
	Username     string
	Name         string
	Coins        int64
	ReferralCode string
	ReferredBy   *string
}

// UserWithStats пользователь с количеством его заказов, для админки.
type UserWithStats struct {
	domain.User
	OrdersCount int64
}

// UserTotals агрегаты по всем пользователям.
type UserTotals struct {
	UsersCount     int64
	TotalBalance   decimal.Decimal
	TotalReferral  decimal.Decimal
	ReferredsCount int64
}
