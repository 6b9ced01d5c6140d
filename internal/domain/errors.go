package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrUnauthenticated             = errors.New("unauthenticated")
	ErrForbidden                   = errors.New("forbidden")
	ErrUserNotFound                = errors.New("user not found")
	ErrServiceNotFound             = errors.New("service not found")
	ErrInsufficientBalance         = errors.New("insufficient balance")
	ErrInsufficientReferralBalance = errors.New("insufficient referral balance")
	ErrAlreadyProcessed            = errors.New("already processed")
	ErrProviderUnavailable         = errors.New("provider unavailable")
	ErrProviderRejected            = errors.New("provider rejected")
	ErrProviderAmbiguous           = errors.New("provider outcome unknown")
	ErrReconciliationPending       = errors.New("reconciliation pending")
	ErrBelowMinimum                = errors.New("below minimum")
	ErrInvalidRequest              = errors.New("invalid request")
)

// ProviderRejectedError структурированная ошибка, которую провайдер вернул на действие Action.
type ProviderRejectedError struct {
	Action  string
	Message string
}

func NewProviderRejectedError(action, message string) error {
	return &ProviderRejectedError{Action: action, Message: message}
}

func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("provider rejected action `%s`: %s", e.Action, e.Message)
}

func (e *ProviderRejectedError) Is(target error) bool {
	return target == ErrProviderRejected
}

// ReconciliationPendingError заказ принят провайдером (или исход неизвестен), но локальная фиксация
// не подтверждена. Запись сверки сохранена под ReconciliationID.
type ReconciliationPendingError struct {
	ReconciliationID string
	ProviderOrderID  string
	Cause            error
}

func (e *ReconciliationPendingError) Error() string {
	return fmt.Sprintf(
		"order %q awaits reconciliation %q: %v",
		e.ProviderOrderID,
		e.ReconciliationID,
		e.Cause,
	)
}

func (e *ReconciliationPendingError) Is(target error) bool {
	return target == ErrReconciliationPending
}

func (e *ReconciliationPendingError) Unwrap() error {
	return e.Cause
}

// InvalidRequestError ошибка валидации входных данных с указанием поля.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func NewInvalidRequestError(field, reason string) error {
	return &InvalidRequestError{Field: field, Reason: reason}
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidRequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// ProviderAmbiguousError исход запроса к провайдеру неизвестен: запрос мог быть принят (таймаут после
// отправки, нечитаемый ответ). Считается разновидностью ErrProviderUnavailable.
type ProviderAmbiguousError struct {
	Action string
	Cause  error
}

func (e *ProviderAmbiguousError) Error() string {
	return fmt.Sprintf("provider action `%s` outcome unknown: %v", e.Action, e.Cause)
}

func (e *ProviderAmbiguousError) Is(target error) bool {
	return target == ErrProviderUnavailable || target == ErrProviderAmbiguous
}

func (e *ProviderAmbiguousError) Unwrap() error {
	return e.Cause
}
