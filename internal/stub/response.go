package stub

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shaiso/kptest/internal/domain"
)

// ErrorCode — код ошибки заглушки.
type ErrorCode string

const (
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse — структура ответа с ошибкой.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail — детали ошибки.
type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// DataResponse — структура успешного ответа.
type DataResponse struct {
	Data any `json:"data"`
}

// JSON отправляет JSON ответ.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Success отправляет успешный ответ с данными.
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, DataResponse{Data: data})
}

// Error отправляет ответ с ошибкой.
func Error(w http.ResponseWriter, status int, code ErrorCode, message string) {
	JSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// BadRequest отправляет ошибку 400.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

// NotFound отправляет ошибку 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, ErrCodeNotFound, message)
}

// InternalError отправляет ошибку 500.
func InternalError(w http.ResponseWriter, logger *slog.Logger, err any) {
	logger.Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
}

// RPCResult отправляет успешный ответ JSON-RPC.
func RPCResult(w http.ResponseWriter, id int, result any) {
	JSON(w, http.StatusOK, domain.JSONRPCResponse{
		JSONRPC: domain.JSONRPCVersion,
		ID:      id,
		Result:  result,
	})
}

// RPCError отправляет ошибку JSON-RPC. HTTP-статус остаётся 200, как у Kodi.
func RPCError(w http.ResponseWriter, id int, code int, message string) {
	JSON(w, http.StatusOK, domain.JSONRPCResponse{
		JSONRPC: domain.JSONRPCVersion,
		ID:      id,
		Error:   &domain.JSONRPCError{Code: code, Message: message},
	})
}
