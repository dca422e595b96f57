package domain

import "encoding/json"

// JSONRPCVersion — версия протокола в каждом сообщении.
const JSONRPCVersion = "2.0"

// Методы Kodi, которые умеет вызывать CLI.
const (
	MethodSetMute    = "Application.SetMute"
	MethodSetVolume  = "Application.SetVolume"
	MethodIntrospect = "JSONRPC.Introspect"
	MethodQuit       = "Application.Quit"
)

// Значения параметра volume для Application.SetVolume.
const (
	VolumeIncrement = "increment"
	VolumeDecrement = "decrement"
)

// Коды ошибок JSON-RPC 2.0.
const (
	JSONRPCParseError     = -32700
	JSONRPCInvalidRequest = -32600
	JSONRPCMethodNotFound = -32601
	JSONRPCInvalidParams  = -32602
)

// JSONRPCRequest — запрос JSON-RPC 2.0.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse — ответ JSON-RPC 2.0.
type JSONRPCResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Result  any           `json:"result,omitempty"`
	Error   *JSONRPCError `json:"error,omitempty"`
}

// JSONRPCError — объект ошибки JSON-RPC.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SetMuteParams — параметры Application.SetMute.
type SetMuteParams struct {
	Mute bool `json:"mute"`
}

// SetVolumeParams — параметры Application.SetVolume.
type SetVolumeParams struct {
	Volume string `json:"volume"`
}

// kodiRequest — исходящее сообщение; Params nil опускается.
type kodiRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}
