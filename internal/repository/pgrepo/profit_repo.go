package pgrepo

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const profitColumns = `id, created_at, order_id, user_id, username, service_id, service_name, profit`

// ProfitRepository журнал прибыли. Записи только добавляются.
type ProfitRepository struct {
	conn uow.DBTX
}

func NewProfitRepository(conn uow.DBTX) *ProfitRepository {
	return &ProfitRepository{conn: conn}
}

func (p *ProfitRepository) CreateEntry(
	ctx context.Context,
	args repoargs.CreateProfitEntry,
) (*domain.ProfitEntry, error) {
	var e domain.ProfitEntry
	err := p.conn.QueryRow(ctx, `
		INSERT INTO profit_ledger (id, order_id, user_id, username, service_id, service_name, profit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+profitColumns,
		uuid.NewString(), args.OrderID, args.UserID, args.Username, args.ServiceID, args.ServiceName, args.Profit,
	).Scan(&e.ID, &e.CreatedAt, &e.OrderID, &e.UserID, &e.Username, &e.ServiceID, &e.ServiceName, &e.Profit)
	if err != nil {
		return nil, convertErr(err, "creating profit entry for order `%s`", args.OrderID)
	}
	return &e, nil
}

func (p *ProfitRepository) List(ctx context.Context, page repoargs.Page) ([]domain.ProfitEntry, error) {
	limit, offset, pErr := pageArgs(page)
	if pErr != nil {
		return nil, convertErr(pErr, "converting page")
	}
	rows, err := p.conn.Query(ctx, `
		SELECT `+profitColumns+` FROM profit_ledger
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing profit entries")
	}
	defer rows.Close()

	var entries []domain.ProfitEntry
	for rows.Next() {
		var e domain.ProfitEntry
		if scanErr := rows.Scan(
			&e.ID, &e.CreatedAt, &e.OrderID, &e.UserID, &e.Username, &e.ServiceID, &e.ServiceName, &e.Profit,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning profit entries")
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, convertErr(rows.Err(), "listing profit entries")
	}
	return entries, nil
}

func (p *ProfitRepository) Total(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := p.conn.QueryRow(ctx, `SELECT COALESCE(sum(profit), 0) FROM profit_ledger`).Scan(&total); err != nil {
		return decimal.Zero, convertErr(err, "summing profit")
	}
	return total, nil
}
