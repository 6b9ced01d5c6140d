package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Identity проверенная личность пользователя, полученная от провайдера аутентификации.
type Identity struct {
	UserID  string
	Email   string
	IsAdmin bool
}

type User struct {
	ID             string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Email          string
	Username       string
	Name           string
	Balance        decimal.Decimal
	Coins          int64
	ReferralCode   string
	ReferredBy     *string
	ReferralWallet decimal.Decimal
}

type MarkupRule struct {
	CategoryKey string
	Type        MarkupType
	Value       decimal.Decimal
	UpdatedAt   time.Time
}

type Order struct {
	ID              string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UserID          string
	ProviderOrderID string
	ServiceID       string
	ServiceName     string
	Link            string
	Quantity        int64
	Charge          decimal.Decimal
	Status          string
	StartCount      string
	Remains         string
	RefillID        *string
}

type ProfitEntry struct {
	ID          string
	CreatedAt   time.Time
	OrderID     string
	UserID      string
	Username    string
	ServiceID   string
	ServiceName string
	Profit      decimal.Decimal
}

type FundRequest struct {
	ID            string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        string
	UserEmail     string
	Amount        decimal.Decimal
	TransactionID string
	Status        FundRequestStatus
}

type WithdrawalRequest struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string
	UserEmail string
	Amount    decimal.Decimal
	UpiID     string
	Status    WithdrawalStatus
}

type ReferralCommission struct {
	ID               string
	CreatedAt        time.Time
	ReferrerID       string
	ReferredUserID   string
	ReferredUsername string
	FundRequestID    string
	FundedAmount     decimal.Decimal
	CommissionAmount decimal.Decimal
}

// Reconciliation заказ, принятый провайдером (или с неизвестным исходом), но не проведенный локально.
type Reconciliation struct {
	ID              string
	CreatedAt       time.Time
	ResolvedAt      *time.Time
	UserID          string
	ProviderOrderID string
	ServiceID       string
	ServiceName     string
	Link            string
	Quantity        int64
	Charge          decimal.Decimal
	Profit          decimal.Decimal
	Coins           int64
	Reason          string
	Status          ReconciliationStatus
	OrderID         *string
}

type Payment struct {
	PaymentID string
	CreatedAt time.Time
	Source    string
	UserID    string
	Amount    decimal.Decimal
}

type RewardToken struct {
	Token     string
	CreatedAt time.Time
	ClaimedAt *time.Time
	UserID    string
	Claimed   bool
}

// ProviderService услуга из каталога провайдера. Rate оптовая ставка за 1000 единиц.
type ProviderService struct {
	ID       string
	Name     string
	Category string
	Type     string
	Rate     decimal.Decimal
	Min      int64
	Max      int64
	Refill   bool
	Cancel   bool
}

// CatalogService услуга провайдера с розничной ставкой для показа пользователю.
type CatalogService struct {
	ProviderService
	CategoryKey string
	RetailRate  decimal.Decimal
}

// ProviderOrderStatus состояние заказа у провайдера. Err заполнен, если провайдер не знает заказ.
type ProviderOrderStatus struct {
	Status     string
	StartCount string
	Remains    string
	Charge     decimal.Decimal
	Currency   string
	Err        string
}

type ProviderBalance struct {
	Balance  decimal.Decimal
	Currency string
}
