package pgrepo

import (
	"errors"
	"testing"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertErr(t *testing.T) {
	assert.NoError(t, convertErr(nil, "noop"))

	err := convertErr(pgx.ErrNoRows, "finding user `%s`", "u1")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "[repository/finding user `u1`]")

	err = convertErr(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "creating")
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	err = convertErr(&pgconn.PgError{Code: pgerrcode.SerializationFailure}, "updating")
	assert.ErrorIs(t, err, domain.ErrUnknown)
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr), "serialization failure must stay in chain for retry")

	err = convertErr(&pgconn.PgError{Code: pgerrcode.CheckViolation}, "debiting")
	assert.ErrorIs(t, err, domain.ErrUnknown)
	assert.False(t, errors.As(err, &pgErr))
}

func TestRegisterRepositories(t *testing.T) {
	u := uow.NewUnitOfWork(nil)
	require.NoError(t, RegisterRepositories(u))

	repo, err := uow.GetRepositoryAs[*OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	require.NoError(t, err)
	assert.NotNil(t, repo)

	_, err = uow.GetRepositoryAs[*UserRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	require.ErrorIs(t, err, uow.ErrInvalidRepositoryType)

	// Повторная регистрация запрещена.
	require.ErrorIs(t, RegisterRepositories(u), uow.ErrRepositoryAlreadyRegistered)
}
