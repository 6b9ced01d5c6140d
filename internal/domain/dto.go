package domain

type MarkupType string

const (
	MarkupPercent MarkupType = "percent"
	MarkupFixed   MarkupType = "fixed"
)

// Статусы заказа приходят от провайдера в свободной форме, ниже только те, что выставляем мы сами.
const (
	OrderStatusPending     = "Pending"
	OrderStatusCoinPending = "Pending (Coin Order)"
	OrderStatusCompleted   = "Completed"
	OrderStatusPartial     = "Partial"
	OrderStatusCanceled    = "Canceled"

	NotAvailable = "N/A"
)

type FundRequestStatus string

const (
	FundRequestPending  FundRequestStatus = "pending"
	FundRequestApproved FundRequestStatus = "approved"
	FundRequestRejected FundRequestStatus = "rejected"
)

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalFailed    WithdrawalStatus = "failed"
)

type ReconciliationStatus string

const (
	ReconciliationPending   ReconciliationStatus = "pending"
	ReconciliationCommitted ReconciliationStatus = "committed"
	ReconciliationCanceled  ReconciliationStatus = "canceled"
	ReconciliationDismissed ReconciliationStatus = "dismissed"
)

// IsTerminalOrderStatus сообщает, что провайдер больше не будет менять статус заказа.
func IsTerminalOrderStatus(status string) bool {
	switch status {
	case OrderStatusCompleted, OrderStatusPartial, OrderStatusCanceled, "Cancelled", "Refunded":
		return true
	default:
		return false
	}
}
