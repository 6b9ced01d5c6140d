package uow

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	unlockTimeout         = 5 * time.Second
	defaultLockPollPeriod = 25 * time.Millisecond
	maxLockPollPeriod     = 250 * time.Millisecond
	lockPollBackoffFactor = 2
)

// lockSession соединение, на котором держится сессионная блокировка.
type lockSession interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	// Release возвращает соединение в пул. broken закрывает соединение: состояние блокировок на нем
	// неизвестно.
	Release(broken bool)
}

type sessionSource func(ctx context.Context) (lockSession, error)

// AdvisoryLocker реализует Locker на сессионных advisory-блокировках postgres.
//
// Соединение занимается только владельцем блокировки: ожидающие делают pg_try_advisory_lock, при неудаче
// возвращают соединение в пул и повторяют попытку с нарастающей паузой. Пул должен быть отдельным от
// пула репозиториев (см. pgrepo.ConnectLockPool), тогда блокировки не отнимают соединения у запросов.
type AdvisoryLocker struct {
	acquire    sessionSource
	pollPeriod time.Duration
}

func NewAdvisoryLocker(pool *pgxpool.Pool) *AdvisoryLocker {
	return newAdvisoryLocker(func(ctx context.Context) (lockSession, error) {
		conn, err := pool.Acquire(ctx)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		return pooledSession{conn}, nil
	})
}

func newAdvisoryLocker(acquire sessionSource) *AdvisoryLocker {
	return &AdvisoryLocker{acquire: acquire, pollPeriod: defaultLockPollPeriod}
}

// Lock ждет блокировку по ключу key, пока не отменен ctx.
func (l *AdvisoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	if key == "" {
		return nil, ErrEmptyLockKey
	}
	wait := l.pollPeriod
	for {
		sess, locked, err := l.tryLock(ctx, key)
		if err != nil {
			return nil, err
		}
		if locked {
			return l.unlockFunc(sess, key), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err() //nolint:wrapcheck
		case <-time.After(wait):
		}
		wait = min(wait*lockPollBackoffFactor, maxLockPollPeriod)
	}
}

// tryLock занимает соединение и пробует взять блокировку. Если блокировка занята, соединение сразу
// возвращается в пул.
func (l *AdvisoryLocker) tryLock(ctx context.Context, key string) (lockSession, bool, error) {
	sess, err := l.acquire(ctx)
	if err != nil {
		return nil, false, err
	}
	var locked bool
	if scanErr := sess.QueryRow(ctx, "SELECT pg_try_advisory_lock(hashtext($1))", key).
		Scan(&locked); scanErr != nil {
		sess.Release(true)
		return nil, false, scanErr //nolint:wrapcheck
	}
	if !locked {
		sess.Release(false)
		return nil, false, nil
	}
	return sess, true, nil
}

func (l *AdvisoryLocker) unlockFunc(sess lockSession, key string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			unlockCtx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
			defer cancel()
			var released bool
			err := sess.QueryRow(unlockCtx, "SELECT pg_advisory_unlock(hashtext($1))", key).Scan(&released)
			sess.Release(err != nil || !released)
		})
	}
}

type pooledSession struct {
	conn *pgxpool.Conn
}

func (s pooledSession) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return s.conn.QueryRow(ctx, sql, args...)
}

func (s pooledSession) Release(broken bool) {
	if broken {
		closeCtx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()
		_ = s.conn.Conn().Close(closeCtx)
	}
	s.conn.Release()
}

// KeyedMutex реализация Locker в пределах одного процесса. Используется без базы данных и в тестах.
type KeyedMutex struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{slots: make(map[string]chan struct{})}
}

func (k *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	if key == "" {
		return nil, ErrEmptyLockKey
	}
	k.mu.Lock()
	slot, ok := k.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		k.slots[key] = slot
	}
	k.mu.Unlock()

	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err() //nolint:wrapcheck
	}
	var once sync.Once
	return func() { once.Do(func() { <-slot }) }, nil
}
