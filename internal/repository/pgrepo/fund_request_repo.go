package pgrepo

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const fundRequestColumns = `id, created_at, updated_at, user_id, user_email, amount, transaction_id, status`

type FundRequestRepository struct {
	conn uow.DBTX
}

func NewFundRequestRepository(conn uow.DBTX) *FundRequestRepository {
	return &FundRequestRepository{conn: conn}
}

func (f *FundRequestRepository) Create(
	ctx context.Context,
	args repoargs.CreateFundRequest,
) (*domain.FundRequest, error) {
	row := f.conn.QueryRow(ctx, `
		INSERT INTO fund_requests (id, user_id, user_email, amount, transaction_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+fundRequestColumns,
		uuid.NewString(), args.UserID, args.UserEmail, args.Amount, args.TransactionID,
		string(domain.FundRequestPending),
	)
	req, err := scanFundRequest(row)
	if err != nil {
		return nil, convertErr(err, "creating fund request for user `%s`", args.UserID)
	}
	return req, nil
}

func (f *FundRequestRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.FundRequest, error) {
	req, err := scanFundRequest(f.conn.QueryRow(ctx,
		`SELECT `+fundRequestColumns+` FROM fund_requests WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, convertErr(err, "locking fund request `%s`", id)
	}
	return req, nil
}

func (f *FundRequestRepository) SetStatus(
	ctx context.Context,
	id string,
	status domain.FundRequestStatus,
) (*domain.FundRequest, error) {
	req, err := scanFundRequest(f.conn.QueryRow(ctx, `
		UPDATE fund_requests SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+fundRequestColumns, id, string(status)))
	if err != nil {
		return nil, convertErr(err, "setting status of fund request `%s`", id)
	}
	return req, nil
}

func (f *FundRequestRepository) ListByUser(
	ctx context.Context,
	userID string,
	page repoargs.Page,
) ([]domain.FundRequest, error) {
	limit, offset, pErr := pageArgs(page)
	if pErr != nil {
		return nil, convertErr(pErr, "converting page")
	}
	rows, err := f.conn.Query(ctx, `
		SELECT `+fundRequestColumns+` FROM fund_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing fund requests of user `%s`", userID)
	}
	return collectFundRequests(rows)
}

// List возвращает заявки с указанным статусом. Пустой статус означает все заявки.
func (f *FundRequestRepository) List(
	ctx context.Context,
	status domain.FundRequestStatus,
	page repoargs.Page,
) ([]domain.FundRequest, error) {
	limit, offset, pErr := pageArgs(page)
	if pErr != nil {
		return nil, convertErr(pErr, "converting page")
	}
	rows, err := f.conn.Query(ctx, `
		SELECT `+fundRequestColumns+` FROM fund_requests
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, string(status), limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing fund requests")
	}
	return collectFundRequests(rows)
}

func (f *FundRequestRepository) CountByStatus(ctx context.Context, status domain.FundRequestStatus) (int64, error) {
	var n int64
	if err := f.conn.QueryRow(ctx, `SELECT count(*) FROM fund_requests WHERE status = $1`, string(status)).
		Scan(&n); err != nil {
		return 0, convertErr(err, "counting fund requests")
	}
	return n, nil
}

func fundRequestDest(r *domain.FundRequest) []any {
	return []any{&r.ID, &r.CreatedAt, &r.UpdatedAt, &r.UserID, &r.UserEmail, &r.Amount, &r.TransactionID, &r.Status}
}

func scanFundRequest(row pgx.Row) (*domain.FundRequest, error) {
	var r domain.FundRequest
	if err := row.Scan(fundRequestDest(&r)...); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &r, nil
}

func collectFundRequests(rows pgx.Rows) ([]domain.FundRequest, error) {
	defer rows.Close()
	var res []domain.FundRequest
	for rows.Next() {
		var r domain.FundRequest
		if err := rows.Scan(fundRequestDest(&r)...); err != nil {
			return nil, convertErr(err, "scanning fund requests")
		}
		res = append(res, r)
	}
	if rows.Err() != nil {
		return nil, convertErr(rows.Err(), "scanning fund requests")
	}
	return res, nil
}
