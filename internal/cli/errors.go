package cli

import (
	"errors"
	"fmt"
)

// Ошибки CLI.
var (
	// ErrUsage — неверные аргументы командной строки.
	ErrUsage = errors.New("invalid usage")

	// ErrTransport — запрос не дошёл до прокси или ответ не прочитан.
	ErrTransport = errors.New("transport error")
)

// Коды завершения процесса.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode возвращает код завершения для ошибки Execute.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// HTTPError — прокси ответил статусом вне 2xx.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

// Error реализует интерфейс error.
func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %s", e.Status)
	}
	return fmt.Sprintf("HTTP %s: %s", e.Status, e.Body)
}

// IsHTTPError проверяет, является ли ошибка HTTP ошибкой.
func IsHTTPError(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr)
}
