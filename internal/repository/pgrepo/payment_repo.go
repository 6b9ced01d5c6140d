package pgrepo

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
)

type PaymentRepository struct {
	conn uow.DBTX
}

func NewPaymentRepository(conn uow.DBTX) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

// Create фиксирует внешний платеж. Повтор того же PaymentID возвращает domain.ErrDuplicateKey.
func (p *PaymentRepository) Create(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error) {
	var pm domain.Payment
	err := p.conn.QueryRow(ctx, `
		INSERT INTO payments (payment_id, source, user_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING payment_id, created_at, source, user_id, amount`,
		args.PaymentID, args.Source, args.UserID, args.Amount,
	).Scan(&pm.PaymentID, &pm.CreatedAt, &pm.Source, &pm.UserID, &pm.Amount)
	if err != nil {
		return nil, convertErr(err, "creating payment `%s`", args.PaymentID)
	}
	return &pm, nil
}
