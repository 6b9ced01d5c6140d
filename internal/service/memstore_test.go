package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore хранилище в памяти с семантикой unit of work: Do выполняется под общей блокировкой,
// при ошибке состояние откатывается к снимку. Этого достаточно, чтобы проверять инварианты
// баланса при конкурентных вызовах.
type memStore struct {
	mu          sync.Mutex
	users       map[string]domain.User
	rules       map[string]domain.MarkupRule
	orders      []domain.Order
	profit      []domain.ProfitEntry
	funds       map[string]domain.FundRequest
	withdrawals map[string]domain.WithdrawalRequest
	commissions []domain.ReferralCommission
	recons      map[string]domain.Reconciliation
	payments    map[string]domain.Payment
	tokens      map[string]domain.RewardToken
	// failures ошибка, которую вернет операция с указанным именем.
	failures map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[string]domain.User),
		rules:       make(map[string]domain.MarkupRule),
		funds:       make(map[string]domain.FundRequest),
		withdrawals: make(map[string]domain.WithdrawalRequest),
		recons:      make(map[string]domain.Reconciliation),
		payments:    make(map[string]domain.Payment),
		tokens:      make(map[string]domain.RewardToken),
		failures:    make(map[string]error),
	}
}

type memSnapshot struct {
	users       map[string]domain.User
	rules       map[string]domain.MarkupRule
	orders      []domain.Order
	profit      []domain.ProfitEntry
	funds       map[string]domain.FundRequest
	withdrawals map[string]domain.WithdrawalRequest
	commissions []domain.ReferralCommission
	recons      map[string]domain.Reconciliation
	payments    map[string]domain.Payment
	tokens      map[string]domain.RewardToken
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		users:       maps.Clone(s.users),
		rules:       maps.Clone(s.rules),
		orders:      slices.Clone(s.orders),
		profit:      slices.Clone(s.profit),
		funds:       maps.Clone(s.funds),
		withdrawals: maps.Clone(s.withdrawals),
		commissions: slices.Clone(s.commissions),
		recons:      maps.Clone(s.recons),
		payments:    maps.Clone(s.payments),
		tokens:      maps.Clone(s.tokens),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.users = snap.users
	s.rules = snap.rules
	s.orders = snap.orders
	s.profit = snap.profit
	s.funds = snap.funds
	s.withdrawals = snap.withdrawals
	s.commissions = snap.commissions
	s.recons = snap.recons
	s.payments = snap.payments
	s.tokens = snap.tokens
}

func (s *memStore) Register(uow.RepositoryName, uow.RepositoryFactory) error {
	return nil
}

func (s *memStore) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return s.repo(name, false)
}

func (s *memStore) Do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshot()
	if err := fn(ctx, memTX{s: s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type memTX struct {
	s *memStore
}

func (t memTX) Get(name uow.RepositoryName) (uow.Repository, error) {
	return t.s.repo(name, true)
}

func (s *memStore) repo(name uow.RepositoryName, inTx bool) (uow.Repository, error) {
	c := memConn{s: s, inTx: inTx}
	switch repoargs.RepositoryName(name) {
	case repoargs.UserRepoName:
		return memUserRepo{c}, nil
	case repoargs.MarkupRuleRepoName:
		return memMarkupRepo{c}, nil
	case repoargs.OrderRepoName:
		return memOrderRepo{c}, nil
	case repoargs.ProfitRepoName:
		return memProfitRepo{c}, nil
	case repoargs.FundRequestRepoName:
		return memFundRepo{c}, nil
	case repoargs.WithdrawalRepoName:
		return memWithdrawalRepo{c}, nil
	case repoargs.ReferralCommissionRepoName:
		return memCommissionRepo{c}, nil
	case repoargs.ReconciliationRepoName:
		return memReconRepo{c}, nil
	case repoargs.PaymentRepoName:
		return memPaymentRepo{c}, nil
	case repoargs.RewardTokenRepoName:
		return memTokenRepo{c}, nil
	}
	return nil, uow.ErrRepositoryNotRegistered
}

// setFailure задает ошибку операции op. Вызывать до запуска сервиса.
func (s *memStore) setFailure(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *memStore) clearFailure(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, op)
}

func (s *memStore) putUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *memStore) user(id string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id]
}

func (s *memStore) allOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.orders)
}

func (s *memStore) allProfit() []domain.ProfitEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.profit)
}

func (s *memStore) allRecons() []domain.Reconciliation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.recons))
}

func (s *memStore) allCommissions() []domain.ReferralCommission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.commissions)
}

type memConn struct {
	s    *memStore
	inTx bool
}

// enter берет блокировку хранилища для вызова вне транзакции.
func (c memConn) enter() func() {
	if c.inTx {
		return func() {}
	}
	c.s.mu.Lock()
	return c.s.mu.Unlock
}

func (c memConn) fail(op string) error {
	if err, ok := c.s.failures[op]; ok {
		return err
	}
	return nil
}

func notFound(what, id string) error {
	return fmt.Errorf("[memory/%s] %w: `%s`", what, domain.ErrRecordNotFound, id)
}

func paginate[T any](items []T, p repoargs.Page) []T {
	p = p.Normalize()
	if int(p.Offset) >= len(items) {
		return []T{}
	}
	end := min(int(p.Offset+p.Limit), len(items))
	return items[p.Offset:end]
}

// newestFirst возвращает копию items в обратном порядке вставки.
func newestFirst[T any](items []T) []T {
	res := slices.Clone(items)
	slices.Reverse(res)
	return res
}

type memUserRepo struct{ memConn }

func (r memUserRepo) CreateUser(_ context.Context, args repoargs.CreateUser) (*domain.User, error) {
	defer r.enter()()
	if err := r.fail("CreateUser"); err != nil {
		return nil, err
	}
	if _, ok := r.s.users[args.ID]; ok {
		return nil, domain.ErrDuplicateKey
	}
	for _, u := range r.s.users {
		if args.ReferralCode != "" && u.ReferralCode == args.ReferralCode {
			return nil, domain.ErrDuplicateKey
		}
	}
	u := domain.User{
		ID:           args.ID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Email:        args.Email,
		Username:     args.Username,
		Name:         args.Name,
		Coins:        args.Coins,
		ReferralCode: args.ReferralCode,
		ReferredBy:   args.ReferredBy,
	}
	r.s.users[u.ID] = u
	return &u, nil
}

func (r memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	defer r.enter()()
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	return &u, nil
}

func (r memUserRepo) FindByIDForUpdate(ctx context.Context, id string) (*domain.User, error) {
	return r.FindByID(ctx, id)
}

func (r memUserRepo) FindByReferralCode(_ context.Context, code string) (*domain.User, error) {
	defer r.enter()()
	for _, u := range r.s.users {
		if u.ReferralCode != "" && u.ReferralCode == code {
			return &u, nil
		}
	}
	return nil, notFound("user", code)
}

func (r memUserRepo) SetReferralCode(_ context.Context, id, code string) (*domain.User, error) {
	defer r.enter()()
	for _, u := range r.s.users {
		if u.ID != id && u.ReferralCode == code {
			return nil, domain.ErrDuplicateKey
		}
	}
	return r.update(id, func(u *domain.User) error {
		u.ReferralCode = code
		return nil
	})
}

func (r memUserRepo) AddBalance(_ context.Context, id string, delta decimal.Decimal) (*domain.User, error) {
	defer r.enter()()
	return r.update(id, func(u *domain.User) error {
		u.Balance = u.Balance.Add(delta)
		if u.Balance.IsNegative() {
			return fmt.Errorf("balance check: %w", domain.ErrUnknown)
		}
		return nil
	})
}

func (r memUserRepo) AddCoins(_ context.Context, id string, delta int64) (*domain.User, error) {
	defer r.enter()()
	return r.update(id, func(u *domain.User) error {
		u.Coins += delta
		if u.Coins < 0 {
			return fmt.Errorf("coins check: %w", domain.ErrUnknown)
		}
		return nil
	})
}

func (r memUserRepo) AddReferralWallet(_ context.Context, id string, delta decimal.Decimal) (*domain.User, error) {
	defer r.enter()()
	return r.update(id, func(u *domain.User) error {
		u.ReferralWallet = u.ReferralWallet.Add(delta)
		if u.ReferralWallet.IsNegative() {
			return fmt.Errorf("referral wallet check: %w", domain.ErrUnknown)
		}
		return nil
	})
}

func (r memUserRepo) SetBalances(
	_ context.Context,
	id string,
	balance decimal.Decimal,
	coins int64,
) (*domain.User, error) {
	defer r.enter()()
	return r.update(id, func(u *domain.User) error {
		u.Balance = balance
		u.Coins = coins
		return nil
	})
}

func (r memUserRepo) update(id string, fn func(u *domain.User) error) (*domain.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	if err := fn(&u); err != nil {
		return nil, err
	}
	u.UpdatedAt = time.Now()
	r.s.users[id] = u
	return &u, nil
}

func (r memUserRepo) List(_ context.Context, p repoargs.Page) ([]repoargs.UserWithStats, error) {
	defer r.enter()()
	ids := slices.Sorted(maps.Keys(r.s.users))
	res := make([]repoargs.UserWithStats, 0, len(ids))
	for _, id := range ids {
		var n int64
		for _, o := range r.s.orders {
			if o.UserID == id {
				n++
			}
		}
		res = append(res, repoargs.UserWithStats{User: r.s.users[id], OrdersCount: n})
	}
	return paginate(res, p), nil
}

func (r memUserRepo) CountReferred(_ context.Context, referrerID string) (int64, error) {
	defer r.enter()()
	var n int64
	for _, u := range r.s.users {
		if u.ReferredBy != nil && *u.ReferredBy == referrerID {
			n++
		}
	}
	return n, nil
}

func (r memUserRepo) Totals(_ context.Context) (*repoargs.UserTotals, error) {
	defer r.enter()()
	t := repoargs.UserTotals{}
	for _, u := range r.s.users {
		t.UsersCount++
		t.TotalBalance = t.TotalBalance.Add(u.Balance)
		t.TotalReferral = t.TotalReferral.Add(u.ReferralWallet)
		if u.ReferredBy != nil {
			t.ReferredsCount++
		}
	}
	return &t, nil
}

type memMarkupRepo struct{ memConn }

func (r memMarkupRepo) All(_ context.Context) ([]domain.MarkupRule, error) {
	defer r.enter()()
	keys := slices.Sorted(maps.Keys(r.s.rules))
	res := make([]domain.MarkupRule, 0, len(keys))
	for _, k := range keys {
		res = append(res, r.s.rules[k])
	}
	return res, nil
}

func (r memMarkupRepo) ReplaceAll(_ context.Context, rules []domain.MarkupRule) error {
	defer r.enter()()
	r.s.rules = make(map[string]domain.MarkupRule, len(rules))
	for _, rule := range rules {
		rule.UpdatedAt = time.Now()
		r.s.rules[rule.CategoryKey] = rule
	}
	return nil
}

type memOrderRepo struct{ memConn }

func (r memOrderRepo) CreateOrder(_ context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	defer r.enter()()
	if err := r.fail("CreateOrder"); err != nil {
		return nil, err
	}
	for _, o := range r.s.orders {
		if o.ProviderOrderID == args.ProviderOrderID {
			return nil, domain.ErrDuplicateKey
		}
	}
	o := domain.Order{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
		UserID:          args.UserID,
		ProviderOrderID: args.ProviderOrderID,
		ServiceID:       args.ServiceID,
		ServiceName:     args.ServiceName,
		Link:            args.Link,
		Quantity:        args.Quantity,
		Charge:          args.Charge,
		Status:          args.Status,
		StartCount:      domain.NotAvailable,
		Remains:         domain.NotAvailable,
	}
	r.s.orders = append(r.s.orders, o)
	return &o, nil
}

func (r memOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	defer r.enter()()
	for _, o := range r.s.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, notFound("order", id)
}

func (r memOrderRepo) ListByUser(_ context.Context, userID string, p repoargs.Page) ([]domain.Order, error) {
	defer r.enter()()
	var res []domain.Order
	for _, o := range newestFirst(r.s.orders) {
		if o.UserID == userID {
			res = append(res, o)
		}
	}
	return paginate(res, p), nil
}

func (r memOrderRepo) List(_ context.Context, p repoargs.Page) ([]domain.Order, error) {
	defer r.enter()()
	return paginate(newestFirst(r.s.orders), p), nil
}

func (r memOrderRepo) ListActiveByUser(_ context.Context, userID string) ([]domain.Order, error) {
	defer r.enter()()
	var res []domain.Order
	for _, o := range r.s.orders {
		if o.UserID == userID && !domain.IsTerminalOrderStatus(o.Status) {
			res = append(res, o)
		}
	}
	return res, nil
}

func (r memOrderRepo) ListForSync(_ context.Context, limit uint) ([]domain.Order, error) {
	defer r.enter()()
	var res []domain.Order
	for _, o := range r.s.orders {
		if uint(len(res)) >= limit {
			break
		}
		if !domain.IsTerminalOrderStatus(o.Status) {
			res = append(res, o)
		}
	}
	return res, nil
}

func (r memOrderRepo) BatchUpdateStatus(
	_ context.Context,
	updates []repoargs.UpdateOrderStatus,
	fn repoargs.OrderBatchQueryRow,
) {
	defer r.enter()()
	for i, u := range updates {
		idx := slices.IndexFunc(r.s.orders, func(o domain.Order) bool { return o.ID == u.ID })
		if idx < 0 {
			fn(i, notFound("order", u.ID))
			continue
		}
		r.s.orders[idx].Status = u.Status
		r.s.orders[idx].StartCount = u.StartCount
		r.s.orders[idx].Remains = u.Remains
		r.s.orders[idx].UpdatedAt = time.Now()
		fn(i, nil)
	}
}

func (r memOrderRepo) MarkSynced(_ context.Context, _ []string) error {
	return nil
}

func (r memOrderRepo) SetRefillID(_ context.Context, id, refillID string) (*domain.Order, error) {
	defer r.enter()()
	idx := slices.IndexFunc(r.s.orders, func(o domain.Order) bool { return o.ID == id })
	if idx < 0 {
		return nil, notFound("order", id)
	}
	r.s.orders[idx].RefillID = &refillID
	o := r.s.orders[idx]
	return &o, nil
}

func (r memOrderRepo) Totals(_ context.Context) (*repoargs.OrderTotals, error) {
	defer r.enter()()
	t := repoargs.OrderTotals{}
	for _, o := range r.s.orders {
		t.OrdersCount++
		t.TotalCharged = t.TotalCharged.Add(o.Charge)
		if !domain.IsTerminalOrderStatus(o.Status) {
			t.ActiveCount++
		}
	}
	return &t, nil
}

type memProfitRepo struct{ memConn }

func (r memProfitRepo) CreateEntry(_ context.Context, args repoargs.CreateProfitEntry) (*domain.ProfitEntry, error) {
	defer r.enter()()
	if err := r.fail("CreateEntry"); err != nil {
		return nil, err
	}
	e := domain.ProfitEntry{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		OrderID:     args.OrderID,
		UserID:      args.UserID,
		Username:    args.Username,
		ServiceID:   args.ServiceID,
		ServiceName: args.ServiceName,
		Profit:      args.Profit,
	}
	r.s.profit = append(r.s.profit, e)
	return &e, nil
}

func (r memProfitRepo) List(_ context.Context, p repoargs.Page) ([]domain.ProfitEntry, error) {
	defer r.enter()()
	return paginate(newestFirst(r.s.profit), p), nil
}

func (r memProfitRepo) Total(_ context.Context) (decimal.Decimal, error) {
	defer r.enter()()
	total := decimal.Zero
	for _, e := range r.s.profit {
		total = total.Add(e.Profit)
	}
	return total, nil
}

type memFundRepo struct{ memConn }

func (r memFundRepo) Create(_ context.Context, args repoargs.CreateFundRequest) (*domain.FundRequest, error) {
	defer r.enter()()
	f := domain.FundRequest{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
		UserID:        args.UserID,
		UserEmail:     args.UserEmail,
		Amount:        args.Amount,
		TransactionID: args.TransactionID,
		Status:        domain.FundRequestPending,
	}
	r.s.funds[f.ID] = f
	return &f, nil
}

func (r memFundRepo) FindByIDForUpdate(_ context.Context, id string) (*domain.FundRequest, error) {
	defer r.enter()()
	f, ok := r.s.funds[id]
	if !ok {
		return nil, notFound("fund_request", id)
	}
	return &f, nil
}

func (r memFundRepo) SetStatus(
	_ context.Context,
	id string,
	status domain.FundRequestStatus,
) (*domain.FundRequest, error) {
	defer r.enter()()
	f, ok := r.s.funds[id]
	if !ok {
		return nil, notFound("fund_request", id)
	}
	f.Status = status
	f.UpdatedAt = time.Now()
	r.s.funds[id] = f
	return &f, nil
}

func (r memFundRepo) ListByUser(_ context.Context, userID string, p repoargs.Page) ([]domain.FundRequest, error) {
	defer r.enter()()
	var res []domain.FundRequest
	for _, f := range r.s.funds {
		if f.UserID == userID {
			res = append(res, f)
		}
	}
	return paginate(res, p), nil
}

func (r memFundRepo) List(
	_ context.Context,
	status domain.FundRequestStatus,
	p repoargs.Page,
) ([]domain.FundRequest, error) {
	defer r.enter()()
	var res []domain.FundRequest
	for _, f := range r.s.funds {
		if status == "" || f.Status == status {
			res = append(res, f)
		}
	}
	return paginate(res, p), nil
}

func (r memFundRepo) CountByStatus(_ context.Context, status domain.FundRequestStatus) (int64, error) {
	defer r.enter()()
	var n int64
	for _, f := range r.s.funds {
		if f.Status == status {
			n++
		}
	}
	return n, nil
}

type memWithdrawalRepo struct{ memConn }

func (r memWithdrawalRepo) Create(
	_ context.Context,
	args repoargs.CreateWithdrawal,
) (*domain.WithdrawalRequest, error) {
	defer r.enter()()
	w := domain.WithdrawalRequest{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		UserID:    args.UserID,
		UserEmail: args.UserEmail,
		Amount:    args.Amount,
		UpiID:     args.UpiID,
		Status:    domain.WithdrawalPending,
	}
	r.s.withdrawals[w.ID] = w
	return &w, nil
}

func (r memWithdrawalRepo) FindByIDForUpdate(_ context.Context, id string) (*domain.WithdrawalRequest, error) {
	defer r.enter()()
	w, ok := r.s.withdrawals[id]
	if !ok {
		return nil, notFound("withdrawal", id)
	}
	return &w, nil
}

func (r memWithdrawalRepo) SetStatus(
	_ context.Context,
	id string,
	status domain.WithdrawalStatus,
) (*domain.WithdrawalRequest, error) {
	defer r.enter()()
	w, ok := r.s.withdrawals[id]
	if !ok {
		return nil, notFound("withdrawal", id)
	}
	w.Status = status
	w.UpdatedAt = time.Now()
	r.s.withdrawals[id] = w
	return &w, nil
}

func (r memWithdrawalRepo) ListByUser(
	_ context.Context,
	userID string,
	p repoargs.Page,
) ([]domain.WithdrawalRequest, error) {
	defer r.enter()()
	var res []domain.WithdrawalRequest
	for _, w := range r.s.withdrawals {
		if w.UserID == userID {
			res = append(res, w)
		}
	}
	return paginate(res, p), nil
}

func (r memWithdrawalRepo) List(
	_ context.Context,
	status domain.WithdrawalStatus,
	p repoargs.Page,
) ([]domain.WithdrawalRequest, error) {
	defer r.enter()()
	var res []domain.WithdrawalRequest
	for _, w := range r.s.withdrawals {
		if status == "" || w.Status == status {
			res = append(res, w)
		}
	}
	return paginate(res, p), nil
}

func (r memWithdrawalRepo) CountByStatus(_ context.Context, status domain.WithdrawalStatus) (int64, error) {
	defer r.enter()()
	var n int64
	for _, w := range r.s.withdrawals {
		if w.Status == status {
			n++
		}
	}
	return n, nil
}

type memCommissionRepo struct{ memConn }

func (r memCommissionRepo) Create(
	_ context.Context,
	args repoargs.CreateReferralCommission,
) (*domain.ReferralCommission, error) {
	defer r.enter()()
	for _, c := range r.s.commissions {
		if c.FundRequestID == args.FundRequestID {
			return nil, domain.ErrDuplicateKey
		}
	}
	c := domain.ReferralCommission{
		ID:               uuid.NewString(),
		CreatedAt:        time.Now(),
		ReferrerID:       args.ReferrerID,
		ReferredUserID:   args.ReferredUserID,
		ReferredUsername: args.ReferredUsername,
		FundRequestID:    args.FundRequestID,
		FundedAmount:     args.FundedAmount,
		CommissionAmount: args.CommissionAmount,
	}
	r.s.commissions = append(r.s.commissions, c)
	return &c, nil
}

func (r memCommissionRepo) ListByReferrer(
	_ context.Context,
	referrerID string,
	p repoargs.Page,
) ([]domain.ReferralCommission, error) {
	defer r.enter()()
	var res []domain.ReferralCommission
	for _, c := range newestFirst(r.s.commissions) {
		if c.ReferrerID == referrerID {
			res = append(res, c)
		}
	}
	return paginate(res, p), nil
}

type memReconRepo struct{ memConn }

func (r memReconRepo) Create(
	_ context.Context,
	args repoargs.CreateReconciliation,
) (*domain.Reconciliation, error) {
	defer r.enter()()
	if err := r.fail("CreateReconciliation"); err != nil {
		return nil, err
	}
	rec := domain.Reconciliation{
		ID:              uuid.NewString(),
		CreatedAt:       time.Now(),
		UserID:          args.UserID,
		ProviderOrderID: args.ProviderOrderID,
		ServiceID:       args.ServiceID,
		ServiceName:     args.ServiceName,
		Link:            args.Link,
		Quantity:        args.Quantity,
		Charge:          args.Charge,
		Profit:          args.Profit,
		Coins:           args.Coins,
		Reason:          args.Reason,
		Status:          domain.ReconciliationPending,
	}
	r.s.recons[rec.ID] = rec
	return &rec, nil
}

func (r memReconRepo) FindByIDForUpdate(_ context.Context, id string) (*domain.Reconciliation, error) {
	defer r.enter()()
	rec, ok := r.s.recons[id]
	if !ok {
		return nil, notFound("reconciliation", id)
	}
	return &rec, nil
}

func (r memReconRepo) List(
	_ context.Context,
	status domain.ReconciliationStatus,
	p repoargs.Page,
) ([]domain.Reconciliation, error) {
	defer r.enter()()
	var res []domain.Reconciliation
	for _, rec := range r.s.recons {
		if status == "" || rec.Status == status {
			res = append(res, rec)
		}
	}
	return paginate(res, p), nil
}

func (r memReconRepo) Resolve(
	_ context.Context,
	args repoargs.ResolveReconciliation,
) (*domain.Reconciliation, error) {
	defer r.enter()()
	rec, ok := r.s.recons[args.ID]
	if !ok {
		return nil, notFound("reconciliation", args.ID)
	}
	now := time.Now()
	rec.Status = args.Status
	rec.OrderID = args.OrderID
	rec.ResolvedAt = &now
	r.s.recons[args.ID] = rec
	return &rec, nil
}

func (r memReconRepo) CountByStatus(_ context.Context, status domain.ReconciliationStatus) (int64, error) {
	defer r.enter()()
	var n int64
	for _, rec := range r.s.recons {
		if rec.Status == status {
			n++
		}
	}
	return n, nil
}

type memPaymentRepo struct{ memConn }

func (r memPaymentRepo) Create(_ context.Context, args repoargs.CreatePayment) (*domain.Payment, error) {
	defer r.enter()()
	if _, ok := r.s.payments[args.PaymentID]; ok {
		return nil, fmt.Errorf("[memory/payment] %w", domain.ErrDuplicateKey)
	}
	p := domain.Payment{
		PaymentID: args.PaymentID,
		CreatedAt: time.Now(),
		Source:    args.Source,
		UserID:    args.UserID,
		Amount:    args.Amount,
	}
	r.s.payments[p.PaymentID] = p
	return &p, nil
}

type memTokenRepo struct{ memConn }

func (r memTokenRepo) Create(_ context.Context, userID string) (*domain.RewardToken, error) {
	defer r.enter()()
	t := domain.RewardToken{Token: uuid.NewString(), CreatedAt: time.Now(), UserID: userID}
	r.s.tokens[t.Token] = t
	return &t, nil
}

func (r memTokenRepo) FindForUpdate(_ context.Context, token string) (*domain.RewardToken, error) {
	defer r.enter()()
	t, ok := r.s.tokens[token]
	if !ok {
		return nil, notFound("reward_token", token)
	}
	return &t, nil
}

func (r memTokenRepo) MarkClaimed(_ context.Context, token string) (*domain.RewardToken, error) {
	defer r.enter()()
	t, ok := r.s.tokens[token]
	if !ok || t.Claimed {
		return nil, notFound("reward_token", token)
	}
	now := time.Now()
	t.Claimed = true
	t.ClaimedAt = &now
	r.s.tokens[token] = t
	return &t, nil
}
