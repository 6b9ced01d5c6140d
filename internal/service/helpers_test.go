package service

import (
	"io"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func fakeUser(balance decimal.Decimal) domain.User {
	return domain.User{
		ID:       gofakeit.UUID(),
		Email:    gofakeit.Email(),
		Username: gofakeit.Username(),
		Balance:  balance,
	}
}

func ptr[T any](v T) *T {
	return &v
}
