package repoargs

import (
	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateFundRequest struct {
	UserID        string
	UserEmail     string
	Amount        decimal.Decimal
	TransactionID string
}

type CreateWithdrawal struct {
	UserID    string
	UserEmail string
	Amount    decimal.Decimal
	UpiID     string
}

type CreateReferralCommission struct {
	ReferrerID       string
	ReferredUserID   string
	ReferredUsername string
	FundRequestID    string
	FundedAmount     decimal.Decimal
	CommissionAmount decimal.Decimal
}

type CreateReconciliation struct {
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
}

type ResolveReconciliation struct {
	ID      string
	Status  domain.ReconciliationStatus
	OrderID *string
}

type CreatePayment struct {
	PaymentID string
	Source    string
	UserID    string
	Amount    decimal.Decimal
}
