package repoargs

import (
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	UserID          string
	ProviderOrderID string
	ServiceID       string
	ServiceName     string
	Link            string
	Quantity        int64
	Charge          decimal.Decimal
	Status          string
}

// UpdateOrderStatus новое состояние заказа от провайдера. Меняются только поля статуса.
type UpdateOrderStatus struct {
	ID         string
	Status     string
	StartCount string
	Remains    string
}

type OrderBatchQueryRow func(i int, err error)

type CreateProfitEntry struct {
	OrderID     string
	UserID      string
	Username    string
	ServiceID   string
	ServiceName string
	Profit      decimal.Decimal
}

// OrderTotals агрегаты по заказам для дашборда.
type OrderTotals struct {
	OrdersCount  int64
	ActiveCount  int64
	TotalCharged decimal.Decimal
}
