package domain

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Пути прокси.
const (
	PathCECPowerOn = "/cec/power-on"
	PathCECStandby = "/cec/standby"
	PathAVVolume   = "/avreceiver/volume"
	PathAVPower    = "/avreceiver/power"
	PathJSONRPC    = "/jsonrpc/"
)

const (
	kodiRequestID      = 1
	contentTypeJSONRPC = "application/json"
)

// Request — один HTTP-запрос, однозначно выведенный из Invocation.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte

	// ContentType заполняется только для запросов с телом.
	ContentType string
}

// URL собирает полный адрес запроса относительно baseURL.
func (r Request) URL(baseURL string) string {
	u := baseURL + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

// BuildRequest строит запрос для Invocation.
//
// Функция чистая: одинаковые Invocation дают одинаковые Request.
func BuildRequest(inv Invocation) (Request, error) {
	if !inv.Device.IsValid() {
		return Request{}, fmt.Errorf("%w: %q", ErrUnknownDevice, inv.Device)
	}
	if !inv.Device.Supports(inv.Action) {
		return Request{}, fmt.Errorf("%w: %s %q", ErrUnknownAction, inv.Device, inv.Action)
	}
	if inv.Address != nil && inv.Device != DeviceCEC {
		return Request{}, ErrUnexpectedAddress
	}
	if inv.Level != nil && !(inv.Device == DeviceAV && inv.Action == ActionAVVolume) {
		return Request{}, ErrUnexpectedLevel
	}

	switch inv.Device {
	case DeviceCEC:
		return buildCEC(inv), nil
	case DeviceAV:
		return buildAV(inv)
	default:
		return buildKodi(inv)
	}
}

func buildCEC(inv Invocation) Request {
	path := PathCECStandby
	if inv.Action == ActionCECOn {
		path = PathCECPowerOn
	}

	req := Request{Method: http.MethodGet, Path: path}
	if inv.Address != nil {
		req.Query = url.Values{"device": {strconv.Itoa(*inv.Address)}}
	}
	return req
}

func buildAV(inv Invocation) (Request, error) {
	if inv.Action == ActionAVVolume {
		if inv.Level == nil {
			return Request{}, ErrMissingLevel
		}
		return Request{
			Method: http.MethodGet,
			Path:   PathAVVolume,
			Query:  url.Values{"volume": {strconv.Itoa(*inv.Level)}},
		}, nil
	}
	switch inv.Action {
	case ActionAVMute, ActionAVUnmute:
		return Request{
			Method: http.MethodGet,
			Path:   PathAVVolume,
			Query:  url.Values{"mute": {strconv.FormatBool(inv.Action == ActionAVMute)}},
		}, nil
	default:
		return Request{
			Method: http.MethodGet,
			Path:   PathAVPower,
			Query:  url.Values{"power": {string(inv.Action)}},
		}, nil
	}
}

func buildKodi(inv Invocation) (Request, error) {
	msg := kodiRequest{JSONRPC: JSONRPCVersion, ID: kodiRequestID}
	switch inv.Action {
	case ActionKodiMute, ActionKodiUnmute:
		msg.Method = MethodSetMute
		msg.Params = SetMuteParams{Mute: inv.Action == ActionKodiMute}
	case ActionKodiVolumeIncr, ActionKodiVolumeDecr:
		volume := VolumeDecrement
		if inv.Action == ActionKodiVolumeIncr {
			volume = VolumeIncrement
		}
		msg.Method = MethodSetVolume
		msg.Params = SetVolumeParams{Volume: volume}
	case ActionKodiIntrospect:
		msg.Method = MethodIntrospect
	default:
		msg.Method = MethodQuit
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return Request{}, fmt.Errorf("marshal jsonrpc request: %w", err)
	}

	return Request{
		Method:      http.MethodPost,
		Path:        PathJSONRPC,
		Body:        body,
		ContentType: contentTypeJSONRPC,
	}, nil
}
