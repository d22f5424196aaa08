package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode представляет код ошибки
type ErrorCode string

const (
	// Общие ошибки
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeNotAuthorized ErrorCode = "NOT_AUTHORIZED"

	// Ошибки хранилища
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeDatabaseError    ErrorCode = "DATABASE_ERROR"

	// Ошибки внешних API
	ErrCodeTelegramAPI ErrorCode = "TELEGRAM_API_ERROR"
)

// AppError представляет типизированную ошибку приложения
type AppError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error возвращает строковое представление ошибки
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap возвращает причину ошибки
func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsNotFound проверяет, является ли ошибка ошибкой "не найдено"
func (e *AppError) IsNotFound() bool {
	return e.Code == ErrCodeNotFound
}

// IsValidation проверяет, является ли ошибка ошибкой валидации
func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeValidation
}

// IsNotAuthorized проверяет, является ли ошибка ошибкой авторизации
func (e *AppError) IsNotAuthorized() bool {
	return e.Code == ErrCodeNotAuthorized
}

// IsStoreUnavailable проверяет, является ли ошибка недоступностью хранилища
func (e *AppError) IsStoreUnavailable() bool {
	return e.Code == ErrCodeStoreUnavailable
}

// WithDetail добавляет детальную информацию к ошибке
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New создает новую ошибку приложения
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap оборачивает существующую ошибку
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// Wrapf оборачивает существующую ошибку с форматированием
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// Конструкторы для часто используемых ошибок

// NewValidationError создает ошибку валидации
func NewValidationError(field, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("Validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// NewNotFoundError создает ошибку "не найдено"
func NewNotFoundError(resource string, id interface{}) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("resource", resource).
		WithDetail("id", id)
}

// NewNotAuthorizedError создает ошибку авторизации
func NewNotAuthorizedError(username string) *AppError {
	return New(ErrCodeNotAuthorized, "Administrator rights required").
		WithDetail("username", username)
}

// NewStoreUnavailableError создает ошибку недоступности хранилища.
// Все операции над ненастроенным хранилищем возвращают её единообразно.
func NewStoreUnavailableError() *AppError {
	return New(ErrCodeStoreUnavailable, "Database is not configured or unavailable")
}

// NewDatabaseError создает ошибку базы данных
func NewDatabaseError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeDatabaseError, fmt.Sprintf("Database operation failed: %s", operation)).
		WithDetail("operation", operation)
}

// AsAppError приводит ошибку к AppError, разворачивая цепочку обёрток
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf возвращает код ошибки или INTERNAL_ERROR для нетипизированных ошибок
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// Предикаты уровня пакета: поверхности проверяют код ошибки, не
// приводя её к *AppError самостоятельно.

// IsNotFound сообщает, несет ли err код NOT_FOUND
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

// IsValidation сообщает, несет ли err код VALIDATION_ERROR
func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeValidation
}

// IsNotAuthorized сообщает, несет ли err код NOT_AUTHORIZED
func IsNotAuthorized(err error) bool {
	return CodeOf(err) == ErrCodeNotAuthorized
}

// IsStoreUnavailable сообщает, несет ли err код STORE_UNAVAILABLE
func IsStoreUnavailable(err error) bool {
	return CodeOf(err) == ErrCodeStoreUnavailable
}
