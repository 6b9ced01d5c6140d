package pgrepo

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, created_at, updated_at, user_id, user_email, amount, upi_id, status`

type WithdrawalRepository struct {
	conn uow.DBTX
}

func NewWithdrawalRepository(conn uow.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{conn: conn}
}

func (w *WithdrawalRepository) Create(
	ctx context.Context,
	args repoargs.CreateWithdrawal,
) (*domain.WithdrawalRequest, error) {
	row := w.conn.QueryRow(ctx, `
		INSERT INTO withdrawal_requests (id, user_id, user_email, amount, upi_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+withdrawalColumns,
		uuid.NewString(), args.UserID, args.UserEmail, args.Amount, args.UpiID,
		string(domain.WithdrawalPending),
	)
	req, err := scanWithdrawal(row)
	if err != nil {
		return nil, convertErr(err, "creating withdrawal request for user `%s`", args.UserID)
	}
	return req, nil
}

func (w *WithdrawalRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.WithdrawalRequest, error) {
	req, err := scanWithdrawal(w.conn.QueryRow(ctx,
		`SELECT `+withdrawalColumns+` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, convertErr(err, "locking withdrawal request `%s`", id)
	}
	return req, nil
}

func (w *WithdrawalRepository) SetStatus(
	ctx context.Context,
	id string,
	status domain.WithdrawalStatus,
) (*domain.WithdrawalRequest, error) {
	req, err := scanWithdrawal(w.conn.QueryRow(ctx, `
		UPDATE withdrawal_requests SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+withdrawalColumns, id, string(status)))
	if err != nil {
		return nil, convertErr(err, "setting status of withdrawal request `%s`", id)
	}
	return req, nil
}

func (w *WithdrawalRepository) ListByUser(
	ctx context.Context,
	userID string,
	page repoargs.Page,
) ([]domain.WithdrawalRequest, error) {
	limit, offset, pErr := pageArgs(page)
	if pErr != nil {
		return nil, convertErr(pErr, "converting page")
	}
	rows, err := w.conn.Query(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing withdrawal requests of user `%s`", userID)
	}
	return collectWithdrawals(rows)
}

// List возвращает заявки с указанным статусом. Пустой статус означает все заявки.
func (w *WithdrawalRepository) List(
	ctx context.Context,
	status domain.WithdrawalStatus,
	page repoargs.Page,
) ([]domain.WithdrawalRequest, error) {
	limit, offset, pErr := pageArgs(page)
	if pErr != nil {
		return nil, convertErr(pErr, "converting page")
	}
	rows, err := w.conn.Query(ctx, `
		SELECT `+withdrawalColumns+` FROM withdrawal_requests
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, string(status), limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing withdrawal requests")
	}
	return collectWithdrawals(rows)
}

func (w *WithdrawalRepository) CountByStatus(ctx context.Context, status domain.WithdrawalStatus) (int64, error) {
	var n int64
	if err := w.conn.QueryRow(ctx, `SELECT count(*) FROM withdrawal_requests WHERE status = $1`, string(status)).
		Scan(&n); err != nil {
		return 0, convertErr(err, "counting withdrawal requests")
	}
	return n, nil
}

func withdrawalDest(r *domain.WithdrawalRequest) []any {
	return []any{&r.ID, &r.CreatedAt, &r.UpdatedAt, &r.UserID, &r.UserEmail, &r.Amount, &r.UpiID, &r.Status}
}

func scanWithdrawal(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var r domain.WithdrawalRequest
	if err := row.Scan(withdrawalDest(&r)...); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &r, nil
}

func collectWithdrawals(rows pgx.Rows) ([]domain.WithdrawalRequest, error) {
	defer rows.Close()
	var res []domain.WithdrawalRequest
	for rows.Next() {
		var r domain.WithdrawalRequest
		if err := rows.Scan(withdrawalDest(&r)...); err != nil {
			return nil, convertErr(err, "scanning withdrawal requests")
		}
		res = append(res, r)
	}
	if rows.Err() != nil {
		return nil, convertErr(rows.Err(), "scanning withdrawal requests")
	}
	return res, nil
}
