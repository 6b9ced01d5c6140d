package pgrepo

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reconciliationColumns = `id, created_at, resolved_at, user_id, provider_order_id, service_id, service_name,
	link, quantity, charge, profit, coins, reason, status, order_id`

// ReconciliationRepository записи о заказах, принятых провайдером, но не проведенных локально.
type ReconciliationRepository struct {
	conn uow.DBTX
}

func NewReconciliationRepository(conn uow.DBTX) *ReconciliationRepository {
	return &ReconciliationRepository{conn: conn}
}

func (r *ReconciliationRepository) Create(
	ctx context.Context,
	args repoargs.CreateReconciliation,
) (*domain.Reconciliation, error) {
	rec, err := scanReconciliation(r.conn.QueryRow(ctx, `
		INSERT INTO reconciliations (id, user_id, provider_order_id, service_id, service_name, link, quantity,
			charge, profit, coins, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+reconciliationColumns,
		uuid.NewString(), args.UserID, args.ProviderOrderID, args.ServiceID, args.ServiceName, args.Link,
		args.Quantity, args.Charge, args.Profit, args.Coins, args.Reason, string(domain.ReconciliationPending),
	))
	if err != nil {
		return nil, convertErr(err, "creating reconciliation for provider order `%s`", args.ProviderOrderID)
	}
	return rec, nil
}

func (r *ReconciliationRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Reconciliation, error) {
	rec, err := scanReconciliation(r.conn.QueryRow(ctx,
		`SELECT `+reconciliationColumns+` FROM reconciliations WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, convertErr(err, "locking reconciliation `%s`", id)
	}
	return rec, nil
}

// List возвращает записи с указанным статусом, старые первыми. Пустой статус означает все записи.
func (r *ReconciliationRepository) List(
	ctx context.Context,
	status domain.ReconciliationStatus,
	page repoargs.Page,
) ([]domain.Reconciliation, error) {
	limit, offset, pErr := pageArgs(page)
	if pErr != nil {
		return nil, convertErr(pErr, "converting page")
	}
	rows, err := r.conn.Query(ctx, `
		SELECT `+reconciliationColumns+` FROM reconciliations
		WHERE $1 = '' OR status = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3`, string(status), limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing reconciliations")
	}
	defer rows.Close()

	var res []domain.Reconciliation
	for rows.Next() {
		var rec domain.Reconciliation
		if scanErr := rows.Scan(reconciliationDest(&rec)...); scanErr != nil {
			return nil, convertErr(scanErr, "scanning reconciliations")
		}
		res = append(res, rec)
	}
	if rows.Err() != nil {
		return nil, convertErr(rows.Err(), "scanning reconciliations")
	}
	return res, nil
}

func (r *ReconciliationRepository) Resolve(
	ctx context.Context,
	args repoargs.ResolveReconciliation,
) (*domain.Reconciliation, error) {
	rec, err := scanReconciliation(r.conn.QueryRow(ctx, `
		UPDATE reconciliations SET status = $2, order_id = $3, resolved_at = now()
		WHERE id = $1
		RETURNING `+reconciliationColumns, args.ID, string(args.Status), args.OrderID))
	if err != nil {
		return nil, convertErr(err, "resolving reconciliation `%s`", args.ID)
	}
	return rec, nil
}

func (r *ReconciliationRepository) CountByStatus(
	ctx context.Context,
	status domain.ReconciliationStatus,
) (int64, error) {
	var n int64
	if err := r.conn.QueryRow(ctx, `SELECT count(*) FROM reconciliations WHERE status = $1`, string(status)).
		Scan(&n); err != nil {
		return 0, convertErr(err, "counting reconciliations")
	}
	return n, nil
}

func reconciliationDest(r *domain.Reconciliation) []any {
	return []any{
		&r.ID, &r.CreatedAt, &r.ResolvedAt, &r.UserID, &r.ProviderOrderID, &r.ServiceID, &r.ServiceName, &r.Link,
		&r.Quantity, &r.Charge, &r.Profit, &r.Coins, &r.Reason, &r.Status, &r.OrderID,
	}
}

func scanReconciliation(row pgx.Row) (*domain.Reconciliation, error) {
	var rec domain.Reconciliation
	if err := row.Scan(reconciliationDest(&rec)...); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &rec, nil
}
