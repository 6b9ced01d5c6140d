package pgrepo

import (
	"context"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const userColumns = `id, created_at, updated_at, email, username, name, balance, coins,
	COALESCE(referral_code, ''), referred_by, referral_wallet`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// CreateUser создает юзера. В случае конфликта id или реферального кода возвращает ошибку
// domain.ErrDuplicateKey.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	var code *string
	if args.ReferralCode != "" {
		code = &args.ReferralCode
	}
	row := u.conn.QueryRow(ctx, `
		INSERT INTO users (id, email, username, name, coins, referral_code, referred_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		args.ID, args.Email, args.Username, args.Name, args.Coins, code, args.ReferredBy,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user `%s`", args.ID)
	}
	return user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := scanUser(u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding user `%s`", id)
	}
	return user, nil
}

// FindByIDForUpdate блокирует строку юзера до конца транзакции. Вне транзакции смысла не имеет.
func (u *UserRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.User, error) {
	user, err := scanUser(u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, convertErr(err, "locking user `%s`", id)
	}
	return user, nil
}

func (u *UserRepository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	user, err := scanUser(u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE referral_code = $1`, code))
	if err != nil {
		return nil, convertErr(err, "finding user by referral code `%s`", code)
	}
	return user, nil
}

func (u *UserRepository) SetReferralCode(ctx context.Context, id, code string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		UPDATE users SET referral_code = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, code)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting referral code for user `%s`", id)
	}
	return user, nil
}

// AddBalance меняет баланс на delta. Отрицательный итог отклоняется ограничением таблицы.
func (u *UserRepository) AddBalance(ctx context.Context, id string, delta decimal.Decimal) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		UPDATE users SET balance = balance + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, delta)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "changing balance of user `%s` by %s", id, delta)
	}
	return user, nil
}

func (u *UserRepository) AddCoins(ctx context.Context, id string, delta int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		UPDATE users SET coins = coins + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, delta)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "changing coins of user `%s` by %d", id, delta)
	}
	return user, nil
}

func (u *UserRepository) AddReferralWallet(
	ctx context.Context,
	id string,
	delta decimal.Decimal,
) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		UPDATE users SET referral_wallet = referral_wallet + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, delta)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "changing referral wallet of user `%s` by %s", id, delta)
	}
	return user, nil
}

// SetBalances выставляет баланс и монеты напрямую (ручная корректировка админом).
func (u *UserRepository) SetBalances(
	ctx context.Context,
	id string,
	balance decimal.Decimal,
	coins int64,
) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		UPDATE users SET balance = $2, coins = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, balance, coins)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "setting balances of user `%s`", id)
	}
	return user, nil
}

// List возвращает юзеров с количеством заказов, новые первыми.
func (u *UserRepository) List(ctx context.Context, page repoargs.Page) ([]repoargs.UserWithStats, error) {
	limit, offset, pErr := pageArgs(page)
	if pErr != nil {
		return nil, convertErr(pErr, "converting page")
	}
	rows, err := u.conn.Query(ctx, `
		SELECT u.id, u.created_at, u.updated_at, u.email, u.username, u.name, u.balance, u.coins,
			COALESCE(u.referral_code, ''), u.referred_by, u.referral_wallet,
			(SELECT count(*) FROM orders o WHERE o.user_id = u.id)
		FROM users u
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, convertErr(err, "listing users")
	}
	defer rows.Close()

	var res []repoargs.UserWithStats
	for rows.Next() {
		var item repoargs.UserWithStats
		if scanErr := rows.Scan(userDest(&item.User, &item.OrdersCount)...); scanErr != nil {
			return nil, convertErr(scanErr, "scanning users")
		}
		res = append(res, item)
	}
	if rows.Err() != nil {
		return nil, convertErr(rows.Err(), "listing users")
	}
	return res, nil
}

func (u *UserRepository) CountReferred(ctx context.Context, referrerID string) (int64, error) {
	var n int64
	if err := u.conn.QueryRow(ctx, `SELECT count(*) FROM users WHERE referred_by = $1`, referrerID).
		Scan(&n); err != nil {
		return 0, convertErr(err, "counting referrals of user `%s`", referrerID)
	}
	return n, nil
}

func (u *UserRepository) Totals(ctx context.Context) (*repoargs.UserTotals, error) {
	var t repoargs.UserTotals
	err := u.conn.QueryRow(ctx, `
		SELECT count(*), COALESCE(sum(balance), 0), COALESCE(sum(referral_wallet), 0),
			count(*) FILTER (WHERE referred_by IS NOT NULL)
		FROM users`).Scan(&t.UsersCount, &t.TotalBalance, &t.TotalReferral, &t.ReferredsCount)
	if err != nil {
		return nil, convertErr(err, "aggregating users")
	}
	return &t, nil
}

func userDest(user *domain.User, extra ...any) []any {
	dest := []any{
		&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.Username, &user.Name,
		&user.Balance, &user.Coins, &user.ReferralCode, &user.ReferredBy, &user.ReferralWallet,
	}
	return append(dest, extra...)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(userDest(&user)...); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
