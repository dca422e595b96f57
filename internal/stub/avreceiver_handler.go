package stub

import (
	"net/http"
	"strconv"
)

// AVVolumeResponse — громкость ресивера.
type AVVolumeResponse struct {
	Volume int  `json:"volume"`
	Mute   bool `json:"mute"`
}

// AVPowerResponse — питание ресивера.
type AVPowerResponse struct {
	Power string `json:"power"`
}

// AVVolume меняет mute или громкость ресивера и возвращает текущие значения.
// Без параметров только читает состояние.
// GET /avreceiver/volume?mute=true|false
// GET /avreceiver/volume?volume=N
func (h *Handler) AVVolume(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var volume int
	var mute bool
	switch {
	case query.Has("mute"):
		volume, mute = h.state.SetAVMute(query.Get("mute") == "true")
	case query.Has("volume"):
		v, err := strconv.ParseInt(query.Get("volume"), 10, 16)
		if err != nil {
			BadRequest(w, "Invalid volume")
			return
		}
		volume, mute = h.state.SetAVVolume(int(v))
	default:
		volume, mute = h.state.AVVolume()
	}

	Success(w, AVVolumeResponse{Volume: volume, Mute: mute})
}

// AVPower включает или выключает ресивер.
// GET /avreceiver/power?power=on|off
func (h *Handler) AVPower(w http.ResponseWriter, r *http.Request) {
	power := r.URL.Query().Get("power")
	if power != "on" && power != "off" {
		BadRequest(w, "Invalid power parameter")
		return
	}

	h.state.SetAVPower(power)
	Success(w, AVPowerResponse{Power: power})
}
