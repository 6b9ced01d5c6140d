package pgrepo

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, user_id, provider_order_id, service_id, service_name, link,
	quantity, charge, status, start_count, remains, refill_id`

// terminalStatuses статусы, после которых провайдер заказ не меняет. Синхронизируются с
// domain.IsTerminalOrderStatus.
var terminalStatuses = []string{
	domain.OrderStatusCompleted, domain.OrderStatusPartial, domain.OrderStatusCanceled, "Cancelled", "Refunded",
}

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

func (o *OrderRepository) CreateOrder(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `
		INSERT INTO orders (id, user_id, provider_order_id, service_id, service_name, link, quantity, charge,
			status, start_count, remains)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING `+orderColumns,
		uuid.NewString(), args.UserID, args.ProviderOrderID, args.ServiceID, args.ServiceName, args.Link,
		args.Quantity, args.Charge, args.Status, domain.NotAvailable,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order with provider id `%s`", args.ProviderOrderID)
	}
	return order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding order `%s`", id)
	}
	return order, nil
}

// ListByUser Возвращает заказы юзера, отсортированные по дате создания по убыванию.
func (o *OrderRepository) ListByUser(ctx context.Context, userID string, page repoargs.Page) ([]domain.Order, error) {
	limit, offset, pErr := pageArgs(page)
	if pErr != nil {
		return nil, convertErr(pErr, "converting page")
	}
	rows, err := o.conn.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing orders of user `%s`", userID)
	}
	return collectOrders(rows, "listing orders of user `%s`", userID)
}

func (o *OrderRepository) List(ctx context.Context, page repoargs.Page) ([]domain.Order, error) {
	limit, offset, pErr := pageArgs(page)
	if pErr != nil {
		return nil, convertErr(pErr, "converting page")
	}
	rows, err := o.conn.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing orders")
	}
	return collectOrders(rows, "listing orders")
}

// ListActiveByUser возвращает незавершенные заказы юзера.
func (o *OrderRepository) ListActiveByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE user_id = $1 AND NOT (status = ANY($2))
		ORDER BY created_at DESC`, userID, terminalStatuses)
	if err != nil {
		return nil, convertErr(err, "listing active orders of user `%s`", userID)
	}
	return collectOrders(rows, "listing active orders of user `%s`", userID)
}

// ListForSync возвращает незавершенные заказы всех юзеров, давно не синхронизированные первыми.
func (o *OrderRepository) ListForSync(ctx context.Context, limit uint) ([]domain.Order, error) {
	safeLimit, safeLimitErr := safeConvertUintToInt32(limit)
	if safeLimitErr != nil {
		return nil, convertErr(safeLimitErr, "converting limit to int32")
	}
	rows, err := o.conn.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE NOT (status = ANY($1))
		ORDER BY synced_at ASC NULLS FIRST, created_at ASC
		LIMIT $2`, terminalStatuses, safeLimit)
	if err != nil {
		return nil, convertErr(err, "listing orders for sync")
	}
	return collectOrders(rows, "listing orders for sync")
}

// BatchUpdateStatus обновляет поля статуса пачкой. fn вызывается для каждого элемента updates.
func (o *OrderRepository) BatchUpdateStatus(
	ctx context.Context,
	updates []repoargs.UpdateOrderStatus,
	fn repoargs.OrderBatchQueryRow,
) {
	batch := new(pgx.Batch)
	for _, u := range updates {
		batch.Queue(`
			UPDATE orders SET status = $2, start_count = $3, remains = $4, updated_at = now(), synced_at = now()
			WHERE id = $1`, u.ID, u.Status, u.StartCount, u.Remains)
	}
	br := o.conn.SendBatch(ctx, batch)
	defer br.Close()

	for i, u := range updates {
		tag, err := br.Exec()
		if err == nil && tag.RowsAffected() == 0 {
			err = pgx.ErrNoRows
		}
		fn(i, convertErr(err, "updating status of order `%s`", u.ID))
	}
}

// MarkSynced отмечает попытку синхронизации без изменения статуса.
func (o *OrderRepository) MarkSynced(ctx context.Context, ids []string) error {
	if _, err := o.conn.Exec(ctx, `UPDATE orders SET synced_at = now() WHERE id = ANY($1)`, ids); err != nil {
		return convertErr(err, "marking orders `%v` synced", ids)
	}
	return nil
}

func (o *OrderRepository) SetRefillID(ctx context.Context, id, refillID string) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `
		UPDATE orders SET refill_id = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+orderColumns, id, refillID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "setting refill id of order `%s`", id)
	}
	return order, nil
}

func (o *OrderRepository) Totals(ctx context.Context) (*repoargs.OrderTotals, error) {
	var t repoargs.OrderTotals
	err := o.conn.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE NOT (status = ANY($1))), COALESCE(sum(charge), 0)
		FROM orders`, terminalStatuses).Scan(&t.OrdersCount, &t.ActiveCount, &t.TotalCharged)
	if err != nil {
		return nil, convertErr(err, "aggregating orders")
	}
	return &t, nil
}

func orderDest(order *domain.Order) []any {
	return []any{
		&order.ID, &order.CreatedAt, &order.UpdatedAt, &order.UserID, &order.ProviderOrderID, &order.ServiceID,
		&order.ServiceName, &order.Link, &order.Quantity, &order.Charge, &order.Status, &order.StartCount,
		&order.Remains, &order.RefillID,
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(orderDest(&order)...); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &order, nil
}

func collectOrders(rows pgx.Rows, format string, args ...any) ([]domain.Order, error) {
	defer rows.Close()
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(orderDest(&order)...); err != nil {
			return nil, convertErr(err, format, args...)
		}
		orders = append(orders, order)
	}
	if rows.Err() != nil {
		return nil, convertErr(rows.Err(), format, args...)
	}
	return orders, nil
}
