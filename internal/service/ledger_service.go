package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/metrics"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	opApproveFund        = "approve_fund"
	opRejectFund         = "reject_fund"
	opCreateWithdrawal   = "create_withdrawal"
	opCompleteWithdrawal = "complete_withdrawal"
	opFailWithdrawal     = "fail_withdrawal"
)

// LedgerService заявки на пополнение и вывод реферального кошелька.
//
// Каждый переход статуса выполняется в одной транзакции, которая сначала блокирует строку заявки и
// перечитывает ее статус. Поэтому повторное или конкурентное одобрение одной заявки дает
// domain.ErrAlreadyProcessed, а не второе зачисление.
type LedgerService struct {
	uow            uow.UOW
	userRepo       UserRepository
	fundRepo       FundRequestRepository
	withdrawalRepo WithdrawalRepository
	metrics        *metrics.Metrics
	commission     decimal.Decimal
	minWithdrawal  decimal.Decimal
	log            *logrus.Entry
}

func NewLedgerService(u uow.UOW, m *metrics.Metrics, settings Settings, l *logrus.Logger) (*LedgerService, error) {
	userRepo, err := repoFrom[UserRepository](u, repoargs.UserRepoName)
	if err != nil {
		return nil, err
	}
	fundRepo, err := repoFrom[FundRequestRepository](u, repoargs.FundRequestRepoName)
	if err != nil {
		return nil, err
	}
	withdrawalRepo, err := repoFrom[WithdrawalRepository](u, repoargs.WithdrawalRepoName)
	if err != nil {
		return nil, err
	}
	return &LedgerService{
		uow:            u,
		userRepo:       userRepo,
		fundRepo:       fundRepo,
		withdrawalRepo: withdrawalRepo,
		metrics:        m,
		commission:     settings.ReferralCommission,
		minWithdrawal:  settings.MinWithdrawal,
		log:            l.WithFields(logrus.Fields{"component": "service", "module": "ledger"}),
	}, nil
}

// CreateFundRequest регистрирует заявку на пополнение. Баланс не меняется до одобрения.
func (s *LedgerService) CreateFundRequest(
	ctx context.Context,
	userID string,
	amount decimal.Decimal,
	transactionID string,
) (*domain.FundRequest, error) {
	transactionID = strings.TrimSpace(transactionID)
	if err := validateAmount("amount", amount); err != nil {
		return nil, fmt.Errorf("creating fund request: %w", err)
	}
	if transactionID == "" {
		return nil, fmt.Errorf("creating fund request: %w",
			domain.NewInvalidRequestError("transactionId", "empty"))
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("creating fund request: %w", userNotFound(err))
	}
	req, err := s.fundRepo.Create(ctx, repoargs.CreateFundRequest{
		UserID:        userID,
		UserEmail:     user.Email,
		Amount:        amount,
		TransactionID: transactionID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating fund request: %w", err)
	}
	return req, nil
}

// ApproveFundRequest зачисляет сумму заявки на баланс юзера. Если юзер пришел по реферальному коду,
// в той же транзакции реферер получает комиссию на реферальный кошелек.
func (s *LedgerService) ApproveFundRequest(ctx context.Context, requestID string) (*domain.FundRequest, error) {
	var approved *domain.FundRequest
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		fundRepo, err := txRepo[FundRequestRepository](tx, repoargs.FundRequestRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		userRepo, err := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}

		req, err := fundRepo.FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if req.Status != domain.FundRequestPending {
			return fmt.Errorf("fund request is %s: %w", req.Status, domain.ErrAlreadyProcessed)
		}

		user, err := userRepo.FindByIDForUpdate(ctx, req.UserID)
		if err != nil {
			return userNotFound(err)
		}
		if _, err = userRepo.AddBalance(ctx, req.UserID, req.Amount); err != nil {
			return err //nolint:wrapcheck
		}
		if approved, err = fundRepo.SetStatus(ctx, requestID, domain.FundRequestApproved); err != nil {
			return err //nolint:wrapcheck
		}

		if user.ReferredBy == nil || *user.ReferredBy == "" {
			return nil
		}
		return s.payCommission(ctx, tx, user, req)
	})
	s.metrics.LedgerOperation(opApproveFund, ledgerOutcome(err))
	if err != nil {
		return nil, fmt.Errorf("approving fund request: %w", err)
	}
	return approved, nil
}

func (s *LedgerService) payCommission(
	ctx context.Context,
	tx uow.TX,
	user *domain.User,
	req *domain.FundRequest,
) error {
	userRepo, err := txRepo[UserRepository](tx, repoargs.UserRepoName)
	if err != nil {
		return err //nolint:wrapcheck
	}
	commissionRepo, err := txRepo[ReferralCommissionRepository](tx, repoargs.ReferralCommissionRepoName)
	if err != nil {
		return err //nolint:wrapcheck
	}

	commission := req.Amount.Mul(s.commission).Round(2)
	if !commission.IsPositive() {
		return nil
	}
	if _, err = userRepo.AddReferralWallet(ctx, *user.ReferredBy, commission); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			// реферер удален, зачисление юзеру остается в силе
			s.log.WithField("referrerId", *user.ReferredBy).Warn("referrer not found, commission skipped")
			return nil
		}
		return err //nolint:wrapcheck
	}
	_, err = commissionRepo.Create(ctx, repoargs.CreateReferralCommission{
		ReferrerID:       *user.ReferredBy,
		ReferredUserID:   user.ID,
		ReferredUsername: user.Username,
		FundRequestID:    req.ID,
		FundedAmount:     req.Amount,
		CommissionAmount: commission,
	})
	return err //nolint:wrapcheck
}

// RejectFundRequest отклоняет заявку без движения средств.
func (s *LedgerService) RejectFundRequest(ctx context.Context, requestID string) (*domain.FundRequest, error) {
	var rejected *domain.FundRequest
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		fundRepo, err := txRepo[FundRequestRepository](tx, repoargs.FundRequestRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		req, err := fundRepo.FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if req.Status != domain.FundRequestPending {
			return fmt.Errorf("fund request is %s: %w", req.Status, domain.ErrAlreadyProcessed)
		}
		rejected, err = fundRepo.SetStatus(ctx, requestID, domain.FundRequestRejected)
		return err //nolint:wrapcheck
	})
	s.metrics.LedgerOperation(opRejectFund, ledgerOutcome(err))
	if err != nil {
		return nil, fmt.Errorf("rejecting fund request: %w", err)
	}
	return rejected, nil
}

// CreateWithdrawal списывает сумму с реферального кошелька сразу при создании заявки.
func (s *LedgerService) CreateWithdrawal(
	ctx context.Context,
	userID string,
	amount decimal.Decimal,
	upiID string,
) (*domain.WithdrawalRequest, error) {
	upiID = strings.TrimSpace(upiID)
	if upiID == "" {
		return nil, fmt.Errorf("creating withdrawal: %w", domain.NewInvalidRequestError("upiId", "empty"))
	}
	if err := validateAmount("amount", amount); err != nil {
		return nil, fmt.Errorf("creating withdrawal: %w", err)
	}
	if amount.LessThan(s.minWithdrawal) {
		return nil, fmt.Errorf("creating withdrawal: minimum is %s: %w", s.minWithdrawal, domain.ErrBelowMinimum)
	}

	var created *domain.WithdrawalRequest
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		userRepo, err := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		withdrawalRepo, err := txRepo[WithdrawalRepository](tx, repoargs.WithdrawalRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return userNotFound(err)
		}
		if user.ReferralWallet.LessThan(amount) {
			return domain.ErrInsufficientReferralBalance
		}
		if _, err = userRepo.AddReferralWallet(ctx, userID, amount.Neg()); err != nil {
			return err //nolint:wrapcheck
		}
		created, err = withdrawalRepo.Create(ctx, repoargs.CreateWithdrawal{
			UserID:    userID,
			UserEmail: user.Email,
			Amount:    amount,
			UpiID:     upiID,
		})
		return err //nolint:wrapcheck
	})
	s.metrics.LedgerOperation(opCreateWithdrawal, ledgerOutcome(err))
	if err != nil {
		return nil, fmt.Errorf("creating withdrawal: %w", err)
	}
	return created, nil
}

// CompleteWithdrawal отмечает выплату выполненной. Средства уже списаны при создании заявки.
func (s *LedgerService) CompleteWithdrawal(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	res, err := s.finishWithdrawal(ctx, requestID, domain.WithdrawalCompleted)
	s.metrics.LedgerOperation(opCompleteWithdrawal, ledgerOutcome(err))
	if err != nil {
		return nil, fmt.Errorf("completing withdrawal: %w", err)
	}
	return res, nil
}

// FailWithdrawal отмечает выплату неудачной и возвращает сумму на реферальный кошелек.
func (s *LedgerService) FailWithdrawal(ctx context.Context, requestID string) (*domain.WithdrawalRequest, error) {
	res, err := s.finishWithdrawal(ctx, requestID, domain.WithdrawalFailed)
	s.metrics.LedgerOperation(opFailWithdrawal, ledgerOutcome(err))
	if err != nil {
		return nil, fmt.Errorf("failing withdrawal: %w", err)
	}
	return res, nil
}

func (s *LedgerService) finishWithdrawal(
	ctx context.Context,
	requestID string,
	status domain.WithdrawalStatus,
) (*domain.WithdrawalRequest, error) {
	var res *domain.WithdrawalRequest
	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		withdrawalRepo, err := txRepo[WithdrawalRepository](tx, repoargs.WithdrawalRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		req, err := withdrawalRepo.FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if req.Status != domain.WithdrawalPending {
			return fmt.Errorf("withdrawal is %s: %w", req.Status, domain.ErrAlreadyProcessed)
		}

		if status == domain.WithdrawalFailed {
			userRepo, repoErr := txRepo[UserRepository](tx, repoargs.UserRepoName)
			if repoErr != nil {
				return repoErr //nolint:wrapcheck
			}
			if _, err = userRepo.AddReferralWallet(ctx, req.UserID, req.Amount); err != nil {
				return userNotFound(err)
			}
		}

		res, err = withdrawalRepo.SetStatus(ctx, requestID, status)
		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return res, nil
}

func (s *LedgerService) ListFundRequests(
	ctx context.Context,
	userID string,
	page repoargs.Page,
) ([]domain.FundRequest, error) {
	res, err := s.fundRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("listing fund requests: %w", err)
	}
	return res, nil
}

func (s *LedgerService) ListWithdrawals(
	ctx context.Context,
	userID string,
	page repoargs.Page,
) ([]domain.WithdrawalRequest, error) {
	res, err := s.withdrawalRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("listing withdrawals: %w", err)
	}
	return res, nil
}

// AllFundRequests заявки всех юзеров. Пустой status означает все статусы.
func (s *LedgerService) AllFundRequests(
	ctx context.Context,
	status domain.FundRequestStatus,
	page repoargs.Page,
) ([]domain.FundRequest, error) {
	res, err := s.fundRepo.List(ctx, status, page)
	if err != nil {
		return nil, fmt.Errorf("listing all fund requests: %w", err)
	}
	return res, nil
}

// AllWithdrawals заявки на вывод всех юзеров. Пустой status означает все статусы.
func (s *LedgerService) AllWithdrawals(
	ctx context.Context,
	status domain.WithdrawalStatus,
	page repoargs.Page,
) ([]domain.WithdrawalRequest, error) {
	res, err := s.withdrawalRepo.List(ctx, status, page)
	if err != nil {
		return nil, fmt.Errorf("listing all withdrawals: %w", err)
	}
	return res, nil
}

func ledgerOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrAlreadyProcessed):
		return "already_processed"
	case errors.Is(err, domain.ErrInsufficientReferralBalance):
		return "insufficient"
	default:
		return "error"
	}
}
