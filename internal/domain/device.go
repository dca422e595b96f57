package domain

// Device — подсистема прокси, к которой адресован запрос.
//
// Каждый вариант имеет свой фиксированный набор действий (см. Actions).
type Device string

const (
	// DeviceAV — AV-ресивер (/avreceiver/...).
	DeviceAV Device = "av"

	// DeviceCEC — шина CEC (/cec/...).
	DeviceCEC Device = "cec"

	// DeviceKodi — медиаплеер Kodi через JSON-RPC (/jsonrpc/).
	DeviceKodi Device = "kodi"
)

// Action — действие над подсистемой.
type Action string

// Действия CEC.
const (
	ActionCECOn  Action = "on"
	ActionCECOff Action = "off"
)

// Действия AV-ресивера.
const (
	ActionAVMute   Action = "mute"
	ActionAVUnmute Action = "unmute"
	ActionAVOn     Action = "on"
	ActionAVOff    Action = "off"

	// ActionAVVolume — установка абсолютной громкости, требует Level.
	ActionAVVolume Action = "volume"
)

// Действия Kodi.
const (
	ActionKodiMute       Action = "mute"
	ActionKodiUnmute     Action = "unmute"
	ActionKodiVolumeDecr Action = "volume-decr"
	ActionKodiVolumeIncr Action = "volume-incr"
	ActionKodiIntrospect Action = "introspect"
	ActionKodiOff        Action = "off"
)

var deviceActions = map[Device][]Action{
	DeviceAV:   {ActionAVMute, ActionAVUnmute, ActionAVOn, ActionAVOff, ActionAVVolume},
	DeviceCEC:  {ActionCECOn, ActionCECOff},
	DeviceKodi: {ActionKodiMute, ActionKodiUnmute, ActionKodiVolumeDecr, ActionKodiVolumeIncr, ActionKodiIntrospect, ActionKodiOff},
}

// Devices возвращает все поддерживаемые подсистемы.
func Devices() []Device {
	return []Device{DeviceAV, DeviceCEC, DeviceKodi}
}

// Actions возвращает допустимые действия для подсистемы в порядке объявления.
// Для неизвестной подсистемы возвращает nil.
func Actions(d Device) []Action {
	actions := deviceActions[d]
	if actions == nil {
		return nil
	}
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// IsValid возвращает true, если подсистема известна.
func (d Device) IsValid() bool {
	_, ok := deviceActions[d]
	return ok
}

// Supports возвращает true, если действие допустимо для подсистемы.
func (d Device) Supports(a Action) bool {
	for _, known := range deviceActions[d] {
		if known == a {
			return true
		}
	}
	return false
}
