// Package telemetry обеспечивает наблюдаемость утилит.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики заглушки прокси
//
// CLI пишет логи в stderr, чтобы stdout содержал только тело ответа.
// Заглушка экспортирует метрики на /metrics endpoint.
package telemetry
