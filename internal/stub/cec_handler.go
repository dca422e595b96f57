package stub

import (
	"net/http"
	"strconv"

	"github.com/shaiso/kptest/internal/telemetry"
)

// CECPowerResponse — ответ на команду питания CEC.
type CECPowerResponse struct {
	Device int    `json:"device"`
	Power  string `json:"power"`
}

// CECPowerOn включает устройство.
// GET /cec/power-on[?device=N]
func (h *Handler) CECPowerOn(w http.ResponseWriter, r *http.Request) {
	h.cecPower(w, r, PowerOn)
}

// CECStandby переводит устройство в standby.
// GET /cec/standby[?device=N]
func (h *Handler) CECStandby(w http.ResponseWriter, r *http.Request) {
	h.cecPower(w, r, PowerStandby)
}

func (h *Handler) cecPower(w http.ResponseWriter, r *http.Request, power string) {
	addr := BroadcastAddress
	if query := r.URL.Query(); query.Has("device") {
		parsed, err := strconv.Atoi(query.Get("device"))
		if err != nil || parsed < 0 || parsed > BroadcastAddress {
			BadRequest(w, "Invalid device parameter")
			return
		}
		addr = parsed
	}

	h.state.SetCECPower(addr, power)
	telemetry.FromContext(r.Context()).Info("cec power", "device", addr, "power", power)

	Success(w, CECPowerResponse{Device: addr, Power: power})
}
