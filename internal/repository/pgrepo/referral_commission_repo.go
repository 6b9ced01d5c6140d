package pgrepo

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/google/uuid"
)

const commissionColumns = `id, created_at, referrer_id, referred_user_id, referred_username, fund_request_id,
	funded_amount, commission_amount`

type ReferralCommissionRepository struct {
	conn uow.DBTX
}

func NewReferralCommissionRepository(conn uow.DBTX) *ReferralCommissionRepository {
	return &ReferralCommissionRepository{conn: conn}
}

// Create добавляет запись о комиссии. Повтор для той же заявки на пополнение возвращает
// domain.ErrDuplicateKey.
func (r *ReferralCommissionRepository) Create(
	ctx context.Context,
	args repoargs.CreateReferralCommission,
) (*domain.ReferralCommission, error) {
	var c domain.ReferralCommission
	err := r.conn.QueryRow(ctx, `
		INSERT INTO referral_commissions (id, referrer_id, referred_user_id, referred_username, fund_request_id,
			funded_amount, commission_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+commissionColumns,
		uuid.NewString(), args.ReferrerID, args.ReferredUserID, args.ReferredUsername, args.FundRequestID,
		args.FundedAmount, args.CommissionAmount,
	).Scan(commissionDest(&c)...)
	if err != nil {
		return nil, convertErr(err, "creating commission for fund request `%s`", args.FundRequestID)
	}
	return &c, nil
}

func (r *ReferralCommissionRepository) ListByReferrer(
	ctx context.Context,
	referrerID string,
	page repoargs.Page,
) ([]domain.ReferralCommission, error) {
	limit, offset, pErr := pageArgs(page)
	if pErr != nil {
		return nil, convertErr(pErr, "converting page")
	}
	rows, err := r.conn.Query(ctx, `
		SELECT `+commissionColumns+` FROM referral_commissions
		WHERE referrer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, referrerID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing commissions of user `%s`", referrerID)
	}
	defer rows.Close()

	var res []domain.ReferralCommission
	for rows.Next() {
		var c domain.ReferralCommission
		if scanErr := rows.Scan(commissionDest(&c)...); scanErr != nil {
			return nil, convertErr(scanErr, "scanning commissions")
		}
		res = append(res, c)
	}
	if rows.Err() != nil {
		return nil, convertErr(rows.Err(), "scanning commissions")
	}
	return res, nil
}

func commissionDest(c *domain.ReferralCommission) []any {
	return []any{
		&c.ID, &c.CreatedAt, &c.ReferrerID, &c.ReferredUserID, &c.ReferredUsername, &c.FundRequestID,
		&c.FundedAmount, &c.CommissionAmount,
	}
}
