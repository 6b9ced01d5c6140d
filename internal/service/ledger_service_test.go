package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	store         *memStore
	ledgerService *LedgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.store = newMemStore()
	var err error
	s.ledgerService, err = NewLedgerService(s.store, metrics.New(), DefaultSettings(), testLogger())
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) fundRequest(userID string, amount int64) *domain.FundRequest {
	req, err := s.ledgerService.CreateFundRequest(
		context.Background(), userID, decimal.NewFromInt(amount), gofakeit.UUID(),
	)
	s.Require().NoError(err)
	s.Equal(domain.FundRequestPending, req.Status)
	return req
}

func (s *LedgerServiceTestSuite) TestApprove_CreditsBalanceAndCommission() {
	referrer := fakeUser(decimal.Zero)
	user := fakeUser(decimal.NewFromInt(5))
	user.ReferredBy = &referrer.ID
	s.store.putUser(referrer)
	s.store.putUser(user)

	req := s.fundRequest(user.ID, 500)
	// до одобрения баланс не меняется
	s.Equal("5", s.store.user(user.ID).Balance.String())

	approved, err := s.ledgerService.ApproveFundRequest(context.Background(), req.ID)
	s.Require().NoError(err)
	s.Equal(domain.FundRequestApproved, approved.Status)
	s.Equal("505", s.store.user(user.ID).Balance.String())
	s.Equal("15", s.store.user(referrer.ID).ReferralWallet.String())

	commissions := s.store.allCommissions()
	s.Require().Len(commissions, 1)
	s.Equal(req.ID, commissions[0].FundRequestID)
	s.Equal(user.Username, commissions[0].ReferredUsername)
	s.Equal("15", commissions[0].CommissionAmount.String())
}

func (s *LedgerServiceTestSuite) TestApprove_CommissionRounding() {
	referrer := fakeUser(decimal.Zero)
	user := fakeUser(decimal.Zero)
	user.ReferredBy = &referrer.ID
	s.store.putUser(referrer)
	s.store.putUser(user)

	req, err := s.ledgerService.CreateFundRequest(
		context.Background(), user.ID, decimal.RequireFromString("333.50"), "txn-1",
	)
	s.Require().NoError(err)
	_, err = s.ledgerService.ApproveFundRequest(context.Background(), req.ID)
	s.Require().NoError(err)

	// 333.50 * 0.03 = 10.005 -> 10.01
	s.Equal("10.01", s.store.user(referrer.ID).ReferralWallet.String())
}

func (s *LedgerServiceTestSuite) TestApprove_WithoutReferrer() {
	user := fakeUser(decimal.Zero)
	s.store.putUser(user)
	req := s.fundRequest(user.ID, 100)

	_, err := s.ledgerService.ApproveFundRequest(context.Background(), req.ID)
	s.Require().NoError(err)
	s.Equal("100", s.store.user(user.ID).Balance.String())
	s.Empty(s.store.allCommissions())
}

func (s *LedgerServiceTestSuite) TestApprove_ExactlyOnce() {
	referrer := fakeUser(decimal.Zero)
	user := fakeUser(decimal.Zero)
	user.ReferredBy = &referrer.ID
	s.store.putUser(referrer)
	s.store.putUser(user)
	req := s.fundRequest(user.ID, 100)

	const n = 8
	var (
		wg        sync.WaitGroup
		approved  atomic.Int64
		processed atomic.Int64
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ledgerService.ApproveFundRequest(context.Background(), req.ID)
			switch {
			case err == nil:
				approved.Add(1)
			case errors.Is(err, domain.ErrAlreadyProcessed):
				processed.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int64(1), approved.Load())
	s.Equal(int64(n-1), processed.Load())
	s.Equal("100", s.store.user(user.ID).Balance.String())
	s.Equal("3", s.store.user(referrer.ID).ReferralWallet.String())
	s.Len(s.store.allCommissions(), 1)

	_, err := s.ledgerService.RejectFundRequest(context.Background(), req.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
}

func (s *LedgerServiceTestSuite) TestReject() {
	user := fakeUser(decimal.Zero)
	s.store.putUser(user)
	req := s.fundRequest(user.ID, 100)

	rejected, err := s.ledgerService.RejectFundRequest(context.Background(), req.ID)
	s.Require().NoError(err)
	s.Equal(domain.FundRequestRejected, rejected.Status)
	s.True(s.store.user(user.ID).Balance.IsZero())

	_, err = s.ledgerService.ApproveFundRequest(context.Background(), req.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
}

func (s *LedgerServiceTestSuite) TestCreateFundRequest_Validation() {
	user := fakeUser(decimal.Zero)
	s.store.putUser(user)

	_, err := s.ledgerService.CreateFundRequest(context.Background(), user.ID, decimal.Zero, "txn")
	s.Require().ErrorIs(err, domain.ErrInvalidRequest)
	_, err = s.ledgerService.CreateFundRequest(context.Background(), user.ID, decimal.NewFromInt(10), " ")
	s.Require().ErrorIs(err, domain.ErrInvalidRequest)
	_, err = s.ledgerService.CreateFundRequest(context.Background(), "missing", decimal.NewFromInt(10), "txn")
	s.Require().ErrorIs(err, domain.ErrUserNotFound)
}

// Суммы с точностью больше копейки отклоняются до любых изменений: денежные колонки округлили бы
// списание и сумму заявки по отдельности.
func (s *LedgerServiceTestSuite) TestAmountPrecision() {
	user := fakeUser(decimal.Zero)
	user.ReferralWallet = decimal.RequireFromString("50.01")
	s.store.putUser(user)

	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "three places", amount: "50.005", wantErr: true},
		{name: "below cent", amount: "0.001", wantErr: true},
		{name: "two places", amount: "50.01"},
		{name: "trailing zeros", amount: "50.000"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			amount := decimal.RequireFromString(tt.amount)

			fund, fundErr := s.ledgerService.CreateFundRequest(context.Background(), user.ID, amount, "txn-"+tt.name)
			w, wErr := s.ledgerService.CreateWithdrawal(context.Background(), user.ID, amount, "name@upi")
			if tt.wantErr {
				s.Require().ErrorIs(fundErr, domain.ErrInvalidRequest)
				s.Require().ErrorIs(wErr, domain.ErrInvalidRequest)
				s.Nil(fund)
				s.Equal("50.01", s.store.user(user.ID).ReferralWallet.String())
				return
			}
			s.Require().NoError(fundErr)
			s.Require().NoError(wErr)
			_, err := s.ledgerService.FailWithdrawal(context.Background(), w.ID)
			s.Require().NoError(err)
			s.Equal("50.01", s.store.user(user.ID).ReferralWallet.String())
		})
	}
}

func (s *LedgerServiceTestSuite) TestWithdrawal_ReservesAtCreation() {
	user := fakeUser(decimal.Zero)
	user.ReferralWallet = decimal.NewFromInt(120)
	s.store.putUser(user)

	w, err := s.ledgerService.CreateWithdrawal(context.Background(), user.ID, decimal.NewFromInt(100), "name@upi")
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalPending, w.Status)
	s.Equal("20", s.store.user(user.ID).ReferralWallet.String())

	completed, err := s.ledgerService.CompleteWithdrawal(context.Background(), w.ID)
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalCompleted, completed.Status)
	s.Equal("20", s.store.user(user.ID).ReferralWallet.String())

	_, err = s.ledgerService.FailWithdrawal(context.Background(), w.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
}

func (s *LedgerServiceTestSuite) TestWithdrawal_FailRefunds() {
	user := fakeUser(decimal.Zero)
	user.ReferralWallet = decimal.NewFromInt(60)
	s.store.putUser(user)

	w, err := s.ledgerService.CreateWithdrawal(context.Background(), user.ID, decimal.NewFromInt(60), "name@upi")
	s.Require().NoError(err)
	s.True(s.store.user(user.ID).ReferralWallet.IsZero())

	failed, err := s.ledgerService.FailWithdrawal(context.Background(), w.ID)
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalFailed, failed.Status)
	s.Equal("60", s.store.user(user.ID).ReferralWallet.String())
}

func (s *LedgerServiceTestSuite) TestWithdrawal_Errors() {
	user := fakeUser(decimal.Zero)
	user.ReferralWallet = decimal.NewFromInt(70)
	s.store.putUser(user)

	_, err := s.ledgerService.CreateWithdrawal(context.Background(), user.ID, decimal.NewFromInt(49), "name@upi")
	s.Require().ErrorIs(err, domain.ErrBelowMinimum)

	_, err = s.ledgerService.CreateWithdrawal(context.Background(), user.ID, decimal.NewFromInt(80), "name@upi")
	s.Require().ErrorIs(err, domain.ErrInsufficientReferralBalance)

	_, err = s.ledgerService.CreateWithdrawal(context.Background(), user.ID, decimal.NewFromInt(60), "")
	s.Require().ErrorIs(err, domain.ErrInvalidRequest)

	s.Equal("70", s.store.user(user.ID).ReferralWallet.String())
}

// Две одновременные заявки на вывод всего кошелька: проходит одна.
func (s *LedgerServiceTestSuite) TestWithdrawal_ConcurrentSingleSuccess() {
	user := fakeUser(decimal.Zero)
	user.ReferralWallet = decimal.NewFromInt(50)
	s.store.putUser(user)

	var (
		wg        sync.WaitGroup
		successes atomic.Int64
	)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ledgerService.CreateWithdrawal(
				context.Background(), user.ID, decimal.NewFromInt(50), "name@upi",
			); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()
	s.Equal(int64(1), successes.Load())
	s.True(s.store.user(user.ID).ReferralWallet.IsZero())
}

func (s *LedgerServiceTestSuite) TestAdminLists() {
	user := fakeUser(decimal.Zero)
	s.store.putUser(user)
	first := s.fundRequest(user.ID, 10)
	s.fundRequest(user.ID, 20)
	_, err := s.ledgerService.ApproveFundRequest(context.Background(), first.ID)
	s.Require().NoError(err)

	pending, err := s.ledgerService.AllFundRequests(context.Background(), domain.FundRequestPending, repoargs.Page{})
	s.Require().NoError(err)
	s.Len(pending, 1)

	all, err := s.ledgerService.AllFundRequests(context.Background(), "", repoargs.Page{})
	s.Require().NoError(err)
	s.Len(all, 2)

	own, err := s.ledgerService.ListFundRequests(context.Background(), user.ID, repoargs.Page{})
	s.Require().NoError(err)
	s.Len(own, 2)
}
