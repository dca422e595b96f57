package domain

// DefaultPort — порт, на котором прокси слушает по умолчанию.
const DefaultPort = 8079

// Invocation — разобранная командная строка.
//
// Создаётся один раз при старте и передаётся по значению, глобального
// изменяемого состояния нет.
type Invocation struct {
	// Port — порт прокси на localhost.
	Port int

	// Device — целевая подсистема.
	Device Device

	// Action — действие из набора Actions(Device).
	Action Action

	// Address — логический адрес CEC-устройства. nil — широковещательно.
	Address *int

	// Level — абсолютная громкость для av volume.
	Level *int
}

// NewInvocation создаёт Invocation с портом по умолчанию.
func NewInvocation(device Device, action Action) Invocation {
	return Invocation{
		Port:   DefaultPort,
		Device: device,
		Action: action,
	}
}

// WithAddress возвращает копию с заданным адресом CEC-устройства.
func (inv Invocation) WithAddress(addr int) Invocation {
	inv.Address = &addr
	return inv
}

// WithLevel возвращает копию с заданным уровнем громкости.
func (inv Invocation) WithLevel(level int) Invocation {
	inv.Level = &level
	return inv
}
