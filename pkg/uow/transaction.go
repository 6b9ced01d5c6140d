package uow

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Transaction открытая транзакция Do. Репозитории создаются лениво поверх tx и живут до ее конца,
// поэтому повторный Get в рамках одной транзакции отдает тот же экземпляр.
type Transaction struct {
	factories map[RepositoryName]RepositoryFactory
	created   map[RepositoryName]Repository
	tx        DBTX
}

func NewTransaction(tx pgx.Tx, factories map[RepositoryName]RepositoryFactory) *Transaction {
	return newTransaction(tx, factories)
}

func newTransaction(tx DBTX, factories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		factories: factories,
		created:   make(map[RepositoryName]Repository, len(factories)),
		tx:        tx,
	}
}

// Get возвращает репозиторий, привязанный к транзакции, или ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.created[name]; ok {
		return repo, nil
	}
	factory, ok := t.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryNotRegistered, name)
	}
	repo := factory(t.tx)
	t.created[name] = repo
	return repo, nil
}

// GetAs то же, что Get, с приведением к T. При несовпадении типа вернется ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var zero T
	repo, err := t.Get(name)
	if err != nil {
		return zero, err //nolint:wrapcheck
	}
	typed, ok := repo.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrInvalidRepositoryType, name, repo)
	}
	return typed, nil
}
