package repoargs

type RepositoryName string

const (
	UserRepoName               RepositoryName = "user"
	MarkupRuleRepoName         RepositoryName = "markup_rule"
	OrderRepoName              RepositoryName = "order"
	ProfitRepoName             RepositoryName = "profit"
	FundRequestRepoName        RepositoryName = "fund_request"
	WithdrawalRepoName         RepositoryName = "withdrawal"
	ReferralCommissionRepoName RepositoryName = "referral_commission"
	ReconciliationRepoName     RepositoryName = "reconciliation"
	PaymentRepoName            RepositoryName = "payment"
	RewardTokenRepoName        RepositoryName = "reward_token"
)

// Page параметры постраничной выборки. Нулевой Limit означает DefaultLimit.
type Page struct {
	Limit  uint
	Offset uint
}

const (
	DefaultLimit uint = 100
	MaxLimit     uint = 1000
)

// Normalize возвращает Page с лимитом в допустимых границах.
func (p Page) Normalize() Page {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
