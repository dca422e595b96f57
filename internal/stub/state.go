package stub

import "sync"

// BroadcastAddress — логический адрес CEC для широковещательных команд.
const BroadcastAddress = 15

// Питание CEC-устройства.
const (
	PowerOn      = "on"
	PowerStandby = "standby"
)

// Значения по умолчанию при старте.
const (
	defaultAVVolume   = -40
	defaultKodiVolume = 50
	maxKodiVolume     = 100
)

// State — состояние эмулируемых устройств.
//
// Доступ потокобезопасен: HTTP-сервер обрабатывает запросы параллельно.
type State struct {
	mu sync.Mutex

	cec map[int]string

	avPower  string
	avVolume int
	avMute   bool

	kodiVolume int
	kodiMute   bool
	kodiQuit   bool
}

// Snapshot — копия состояния для чтения.
type Snapshot struct {
	CEC        map[int]string
	AVPower    string
	AVVolume   int
	AVMute     bool
	KodiVolume int
	KodiMute   bool
	KodiQuit   bool
}

// NewState создаёт состояние по умолчанию: всё выключено, звук включён.
func NewState() *State {
	return &State{
		cec:        make(map[int]string),
		avPower:    "off",
		avVolume:   defaultAVVolume,
		kodiVolume: defaultKodiVolume,
	}
}

// SetCECPower сохраняет питание устройства. Широковещательная команда
// применяется ко всем известным устройствам.
func (s *State) SetCECPower(addr int, power string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if addr == BroadcastAddress {
		for known := range s.cec {
			s.cec[known] = power
		}
	}
	s.cec[addr] = power
}

// SetAVPower включает или выключает ресивер.
func (s *State) SetAVPower(power string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.avPower = power
}

// SetAVMute меняет mute ресивера и возвращает громкость и mute.
func (s *State) SetAVMute(mute bool) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.avMute = mute
	return s.avVolume, s.avMute
}

// SetAVVolume устанавливает громкость ресивера и возвращает громкость и mute.
func (s *State) SetAVVolume(volume int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.avVolume = volume
	return s.avVolume, s.avMute
}

// AVVolume возвращает громкость и mute ресивера.
func (s *State) AVVolume() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.avVolume, s.avMute
}

// SetKodiMute меняет mute Kodi.
func (s *State) SetKodiMute(mute bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kodiMute = mute
	return s.kodiMute
}

// StepKodiVolume меняет громкость Kodi на delta в пределах 0..100.
func (s *State) StepKodiVolume(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kodiVolume = clamp(s.kodiVolume+delta, 0, maxKodiVolume)
	return s.kodiVolume
}

// SetKodiVolume устанавливает громкость Kodi в пределах 0..100.
func (s *State) SetKodiVolume(volume int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kodiVolume = clamp(volume, 0, maxKodiVolume)
	return s.kodiVolume
}

// QuitKodi отмечает, что Kodi получил Application.Quit.
func (s *State) QuitKodi() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kodiQuit = true
}

// Snapshot возвращает копию состояния.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cec := make(map[int]string, len(s.cec))
	for addr, power := range s.cec {
		cec[addr] = power
	}

	return Snapshot{
		CEC:        cec,
		AVPower:    s.avPower,
		AVVolume:   s.avVolume,
		AVMute:     s.avMute,
		KodiVolume: s.kodiVolume,
		KodiMute:   s.kodiMute,
		KodiQuit:   s.kodiQuit,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
