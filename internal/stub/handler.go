package stub

import (
	"log/slog"

	"github.com/shaiso/kptest/internal/telemetry"
)

// Handler — главный обработчик заглушки с зависимостями.
type Handler struct {
	state   *State
	metrics *telemetry.StubMetrics
	logger  *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	State   *State
	Metrics *telemetry.StubMetrics
	Logger  *slog.Logger
}

// NewHandler создаёт новый Handler.
// Пустые State и Logger заменяются значениями по умолчанию, Metrics может быть nil.
func NewHandler(cfg Config) *Handler {
	h := &Handler{
		state:   cfg.State,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
	if h.state == nil {
		h.state = NewState()
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	return h
}

// State возвращает состояние эмулируемых устройств.
func (h *Handler) State() *State {
	return h.state
}
