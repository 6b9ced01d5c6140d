package uow

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 20 * time.Millisecond
)

type txStarter func(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)

type UnitOfWork struct {
	conn         *pgxpool.Pool
	begin        txStarter
	repositories map[RepositoryName]RepositoryFactory
	txOptions    pgx.TxOptions
	maxRetries   int
	retryDelay   time.Duration
}

type Option func(*UnitOfWork)

// WithIsoLevel задает уровень изоляции транзакций. По умолчанию read committed.
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(u *UnitOfWork) {
		u.txOptions.IsoLevel = level
	}
}

// WithRetries задает число повторов транзакции при конфликте сериализации или дедлоке.
func WithRetries(n int, delay time.Duration) Option {
	return func(u *UnitOfWork) {
		u.maxRetries = n
		u.retryDelay = delay
	}
}

func NewUnitOfWork(conn *pgxpool.Pool, opts ...Option) *UnitOfWork {
	u := &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
		maxRetries:   defaultMaxRetries,
		retryDelay:   defaultRetryDelay,
	}
	if conn != nil {
		u.begin = conn.BeginTx
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Register регистрирует репозиторий у себя в мапе. Если репозиторий уже зарегистрирован, возвращает
// ошибку ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет функцию fn внутри транзакции. Если транзакция откатилась из-за конфликта сериализации
// или дедлока, fn выполняется заново, поэтому fn не должна иметь побочных эффектов вне транзакции.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) error {
	var err error
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errors.Join(ctx.Err(), err)
			case <-time.After(u.retryDelay * time.Duration(attempt)):
			}
		}
		err = u.do(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}
	return errors.Join(ErrRetriesExhausted, err)
}

func (u *UnitOfWork) do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.begin(ctx, u.txOptions)
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			if err == nil {
				err = rollbackErr
			} else {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	transErr := fn(ctx, NewTransaction(tx, u.repositories))
	if transErr != nil {
		return transErr
	}
	err = tx.Commit(ctx)
	return
}

// GetRepository возвращает репозиторий или ошибку ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if repoFactory, ok := u.repositories[name]; ok {
		return repoFactory(u.conn), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetRepositoryAs возвращает репозиторий по имени name и приводит его к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)

	if !ok {
		return res, ErrInvalidRepositoryType
	}

	return r, nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
}
