package stub

import (
	"encoding/json"
	"net/http"

	"github.com/shaiso/kptest/internal/domain"
	"github.com/shaiso/kptest/internal/telemetry"
)

// rpcMethod обрабатывает вызов и возвращает result либо ошибку JSON-RPC.
type rpcMethod func(params json.RawMessage) (any, *domain.JSONRPCError)

// rpcMethodNames — методы, которые знает заглушка (ответ JSONRPC.Introspect).
var rpcMethodNames = []string{
	domain.MethodQuit,
	domain.MethodSetMute,
	domain.MethodSetVolume,
	domain.MethodIntrospect,
}

func (h *Handler) lookupRPC(name string) (rpcMethod, bool) {
	switch name {
	case domain.MethodSetMute:
		return h.rpcSetMute, true
	case domain.MethodSetVolume:
		return h.rpcSetVolume, true
	case domain.MethodIntrospect:
		return h.rpcIntrospect, true
	case domain.MethodQuit:
		return h.rpcQuit, true
	default:
		return nil, false
	}
}

// JSONRPC принимает вызов JSON-RPC 2.0, адресованный Kodi.
// POST /jsonrpc/
func (h *Handler) JSONRPC(w http.ResponseWriter, r *http.Request) {
	var req domain.JSONRPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RPCError(w, 0, domain.JSONRPCParseError, "Parse error")
		return
	}

	if req.JSONRPC != domain.JSONRPCVersion || req.Method == "" {
		RPCError(w, req.ID, domain.JSONRPCInvalidRequest, "Invalid request")
		return
	}

	method, ok := h.lookupRPC(req.Method)
	if !ok {
		RPCError(w, req.ID, domain.JSONRPCMethodNotFound, "Method not found")
		return
	}

	telemetry.FromContext(r.Context()).Info("jsonrpc call", "method", req.Method)

	result, rpcErr := method(req.Params)
	if rpcErr != nil {
		RPCError(w, req.ID, rpcErr.Code, rpcErr.Message)
		return
	}

	RPCResult(w, req.ID, result)
}

func (h *Handler) rpcSetMute(params json.RawMessage) (any, *domain.JSONRPCError) {
	var p domain.SetMuteParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, invalidParams()
	}
	return h.state.SetKodiMute(p.Mute), nil
}

// rpcSetVolume принимает "increment", "decrement" или число 0..100.
func (h *Handler) rpcSetVolume(params json.RawMessage) (any, *domain.JSONRPCError) {
	var p struct {
		Volume json.RawMessage `json:"volume"`
	}
	if err := json.Unmarshal(params, &p); err != nil || p.Volume == nil {
		return nil, invalidParams()
	}

	var step string
	if err := json.Unmarshal(p.Volume, &step); err == nil {
		switch step {
		case domain.VolumeIncrement:
			return h.state.StepKodiVolume(1), nil
		case domain.VolumeDecrement:
			return h.state.StepKodiVolume(-1), nil
		default:
			return nil, invalidParams()
		}
	}

	var level int
	if err := json.Unmarshal(p.Volume, &level); err != nil {
		return nil, invalidParams()
	}
	return h.state.SetKodiVolume(level), nil
}

func (h *Handler) rpcIntrospect(json.RawMessage) (any, *domain.JSONRPCError) {
	methods := make(map[string]any, len(rpcMethodNames))
	for _, name := range rpcMethodNames {
		methods[name] = map[string]string{"type": "method"}
	}

	return map[string]any{"methods": methods}, nil
}

func (h *Handler) rpcQuit(json.RawMessage) (any, *domain.JSONRPCError) {
	h.state.QuitKodi()
	return "OK", nil
}

func invalidParams() *domain.JSONRPCError {
	return &domain.JSONRPCError{Code: domain.JSONRPCInvalidParams, Message: "Invalid params"}
}
