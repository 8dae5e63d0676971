package errors

import (
	"net/http"

	"guildbook/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Ledger balance errors
	ErrInsufficientFunds = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_FUNDS",
		"Saldo insuficiente",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_STOCK",
		"Quantidade insuficiente em estoque",
		"",
	)

	ErrConversionTooSmall = NewBaseError(
		http.StatusUnprocessableEntity,
		"CONVERSION_TOO_SMALL",
		"Quantidade pequena demais para gerar uma unidade da moeda de destino",
		"",
	)

	// Lookup errors
	ErrGuildNotFound = NewBaseError(
		http.StatusNotFound,
		"GUILD_NOT_FOUND",
		"Guilda não encontrada",
		"",
	)

	ErrMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"Membro não encontrado",
		"",
	)

	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item não encontrado",
		"",
	)

	ErrBaseNotFound = NewBaseError(
		http.StatusNotFound,
		"BASE_NOT_FOUND",
		"Base não encontrada",
		"",
	)

	ErrRoomNotFound = NewBaseError(
		http.StatusNotFound,
		"ROOM_NOT_FOUND",
		"Cômodo não encontrado",
		"",
	)

	ErrDomainNotFound = NewBaseError(
		http.StatusNotFound,
		"DOMAIN_NOT_FOUND",
		"Domínio não encontrado",
		"",
	)

	ErrNPCNotFound = NewBaseError(
		http.StatusNotFound,
		"NPC_NOT_FOUND",
		"NPC não encontrado",
		"",
	)

	ErrQuestNotFound = NewBaseError(
		http.StatusNotFound,
		"QUEST_NOT_FOUND",
		"Missão não encontrada",
		"",
	)

	// ErrPreconditionViolated is returned when an operation cannot compute a
	// result because its target is gone.
	ErrPreconditionViolated = NewBaseError(
		http.StatusConflict,
		"PRECONDITION_VIOLATED",
		"O alvo da operação não existe mais",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	// Authentication-related errors
	ErrAccessDenied = NewBaseError(
		http.StatusForbidden,
		"ACCESS_DENIED",
		"Senha incorreta para esta guilda",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciais inválidas",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Sessão expirada ou inválida",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Falha ao processar a senha",
		"",
	)

	// Persistence-related errors
	ErrSaveFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"SAVE_FAILED",
		"Alteração aplicada, mas não foi possível salvar a guilda",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falha na transação do banco de dados",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falha ao executar operação no banco de dados"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
