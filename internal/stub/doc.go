// Package stub содержит заглушку прокси домашней автоматизации.
//
// Структура:
//   - handler.go            — Handler с DI (состояние, метрики, logger)
//   - state.go              — состояние эмулируемых устройств в памяти
//   - routes.go             — регистрация маршрутов
//   - middleware.go         — middleware (recovery, request id, logging, metrics)
//   - response.go           — унифицированные JSON-ответы
//   - cec_handler.go        — обработчики для /cec
//   - avreceiver_handler.go — обработчики для /avreceiver
//   - jsonrpc_handler.go    — JSON-RPC 2.0 для /jsonrpc/
//
// Заглушка отвечает на те же маршруты, что и настоящий прокси, и позволяет
// проверять kptest без шины CEC, ресивера и Kodi.
package stub
