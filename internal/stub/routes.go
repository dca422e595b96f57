package stub

import (
	"net/http"

	"github.com/shaiso/kptest/internal/domain"
)

// RegisterRoutes регистрирует маршруты прокси.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	h.handle(mux, "GET "+domain.PathCECPowerOn, h.CECPowerOn)
	h.handle(mux, "GET "+domain.PathCECStandby, h.CECStandby)

	h.handle(mux, "GET "+domain.PathAVVolume, h.AVVolume)
	h.handle(mux, "GET "+domain.PathAVPower, h.AVPower)

	h.handle(mux, "POST "+domain.PathJSONRPC, h.JSONRPC)

	h.handle(mux, "/", h.UnknownRoute)
}

// UnknownRoute отвечает JSON 404 на маршруты, которых нет у прокси.
func (h *Handler) UnknownRoute(w http.ResponseWriter, r *http.Request) {
	NotFound(w, "route not found: "+r.Method+" "+r.URL.Path)
}

func (h *Handler) handle(mux *http.ServeMux, pattern string, fn http.HandlerFunc) {
	chain := Chain(
		Recovery(h.logger),
		RequestID(h.logger),
		Logging(),
		Metrics(h.metrics, pattern),
	)
	mux.Handle(pattern, chain(fn))
}
