package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// convertErr приводит ошибку pgx к ошибкам domain, дописывая контекст операции:
//   - pgx.ErrNoRows: domain.ErrRecordNotFound;
//   - unique_violation: domain.ErrDuplicateKey (повтор платежа, заявки, кода);
//   - serialization_failure и deadlock_detected: domain.ErrUnknown, но *pgconn.PgError остается в цепочке
//     и unit of work повторит транзакцию;
//   - остальное: domain.ErrUnknown с текстом исходной ошибки.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("[repository/%s] %w: %s", msg, domain.ErrDuplicateKey, err.Error())
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return fmt.Errorf("[repository/%s] %w: %w", msg, domain.ErrUnknown, err)
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, domain.ErrUnknown, err.Error())
}
