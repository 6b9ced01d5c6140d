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

const opCreditPayment = "credit_payment"

// PaymentService зачисление внешних платежей. Каждый PaymentID зачисляется не более одного раза:
// уникальная запись платежа и пополнение баланса фиксируются одной транзакцией.
type PaymentService struct {
	uow     uow.UOW
	metrics *metrics.Metrics
	log     *logrus.Entry
}

func NewPaymentService(u uow.UOW, m *metrics.Metrics, l *logrus.Logger) *PaymentService {
	return &PaymentService{
		uow:     u,
		metrics: m,
		log:     l.WithFields(logrus.Fields{"component": "service", "module": "payment"}),
	}
}

type CreditPaymentArgs struct {
	PaymentID string
	Source    string
	UserID    string
	Amount    decimal.Decimal
}

// CreditPayment пополняет баланс. Возвращает false без ошибки, если платеж уже был зачислен.
func (s *PaymentService) CreditPayment(ctx context.Context, args CreditPaymentArgs) (bool, error) {
	args.PaymentID = strings.TrimSpace(args.PaymentID)
	if args.PaymentID == "" {
		return false, fmt.Errorf("crediting payment: %w", domain.NewInvalidRequestError("paymentId", "empty"))
	}
	if err := validateAmount("amount", args.Amount); err != nil {
		return false, fmt.Errorf("crediting payment: %w", err)
	}

	err := s.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		paymentRepo, err := txRepo[PaymentRepository](tx, repoargs.PaymentRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		userRepo, err := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if _, err = paymentRepo.Create(ctx, repoargs.CreatePayment(args)); err != nil {
			return err //nolint:wrapcheck
		}
		_, err = userRepo.AddBalance(ctx, args.UserID, args.Amount)
		return userNotFound(err)
	})

	if errors.Is(err, domain.ErrDuplicateKey) {
		s.metrics.LedgerOperation(opCreditPayment, "duplicate")
		s.log.WithField("paymentId", args.PaymentID).Info("payment already credited, skipping")
		return false, nil
	}
	if err != nil {
		s.metrics.LedgerOperation(opCreditPayment, "error")
		return false, fmt.Errorf("crediting payment `%s`: %w", args.PaymentID, err)
	}
	s.metrics.LedgerOperation(opCreditPayment, "ok")
	return true, nil
}
