// Package cli реализует инструмент командной строки kptest.
//
// # Обзор
//
// CLI — диагностическая утилита для ручных запросов к прокси домашней
// автоматизации (шина CEC, AV-ресивер, Kodi через JSON-RPC). Один запуск —
// ровно один синхронный HTTP-запрос, тело ответа выводится в stdout как есть.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент прокси. Строит запрос через domain.BuildRequest, добавляет
// X-Request-ID и возвращает сырое тело. Ошибки соединения — ErrTransport,
// статус вне 2xx — *HTTPError. Повторов нет.
//
//	client := cli.NewClient()
//	body, err := client.Dispatch(ctx, domain.NewInvocation(domain.DeviceCEC, domain.ActionCECOn))
//
// ## Output
//
// Тело ответа — в stdout, сообщения об ошибках — в stderr.
//
// ## Commands
//
// Cobra-команды по подсистемам:
//   - av: mute, unmute, on, off, volume --level N
//   - cec: on, off [--device N]
//   - kodi: mute, unmute, volume-decr, volume-incr, introspect, off
//
// Каждая команда создаётся фабричной функцией (NewCECCmd и т.д.),
// принимающей Globals и замыкания clientFn/outputFn.
package cli
