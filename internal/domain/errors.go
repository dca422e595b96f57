package domain

import "errors"

// Ошибки построения запроса.
var (
	// ErrUnknownDevice — подсистема не поддерживается.
	ErrUnknownDevice = errors.New("unknown device")

	// ErrUnknownAction — действие не входит в набор подсистемы.
	ErrUnknownAction = errors.New("unknown action")

	// ErrMissingLevel — для установки громкости не задан уровень.
	ErrMissingLevel = errors.New("volume level is required")

	// ErrUnexpectedLevel — уровень громкости задан для действия, которое его не принимает.
	ErrUnexpectedLevel = errors.New("volume level is only accepted by the volume action")

	// ErrUnexpectedAddress — адрес устройства задан не для CEC.
	ErrUnexpectedAddress = errors.New("device address is only accepted by cec")
)
