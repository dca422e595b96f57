package domain

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const base = "http://localhost:8079"

func TestBuildRequest_CEC(t *testing.T) {
	tests := []struct {
		name string
		inv  Invocation
		want string
	}{
		{"on", NewInvocation(DeviceCEC, ActionCECOn), base + "/cec/power-on"},
		{"off", NewInvocation(DeviceCEC, ActionCECOff), base + "/cec/standby"},
		{"on with device", NewInvocation(DeviceCEC, ActionCECOn).WithAddress(5), base + "/cec/power-on?device=5"},
		{"off with device 0", NewInvocation(DeviceCEC, ActionCECOff).WithAddress(0), base + "/cec/standby?device=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildRequest(tt.inv)
			require.NoError(t, err)
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, tt.want, req.URL(base))
			assert.Nil(t, req.Body)
		})
	}
}

func TestBuildRequest_AV(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionAVMute, base + "/avreceiver/volume?mute=true"},
		{ActionAVUnmute, base + "/avreceiver/volume?mute=false"},
		{ActionAVOn, base + "/avreceiver/power?power=on"},
		{ActionAVOff, base + "/avreceiver/power?power=off"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			req, err := BuildRequest(NewInvocation(DeviceAV, tt.action))
			require.NoError(t, err)
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, tt.want, req.URL(base))
		})
	}
}

func TestBuildRequest_AVVolume(t *testing.T) {
	req, err := BuildRequest(NewInvocation(DeviceAV, ActionAVVolume).WithLevel(-30))
	require.NoError(t, err)
	assert.Equal(t, base+"/avreceiver/volume?volume=-30", req.URL(base))

	_, err = BuildRequest(NewInvocation(DeviceAV, ActionAVVolume))
	assert.ErrorIs(t, err, ErrMissingLevel)

	_, err = BuildRequest(NewInvocation(DeviceAV, ActionAVMute).WithLevel(10))
	assert.ErrorIs(t, err, ErrUnexpectedLevel)
}

func TestBuildRequest_Kodi(t *testing.T) {
	tests := []struct {
		action Action
		body   string
	}{
		{ActionKodiMute, `{"jsonrpc":"2.0","id":1,"method":"Application.SetMute","params":{"mute":true}}`},
		{ActionKodiUnmute, `{"jsonrpc":"2.0","id":1,"method":"Application.SetMute","params":{"mute":false}}`},
		{ActionKodiVolumeIncr, `{"jsonrpc":"2.0","id":1,"method":"Application.SetVolume","params":{"volume":"increment"}}`},
		{ActionKodiVolumeDecr, `{"jsonrpc":"2.0","id":1,"method":"Application.SetVolume","params":{"volume":"decrement"}}`},
		{ActionKodiIntrospect, `{"jsonrpc":"2.0","id":1,"method":"JSONRPC.Introspect"}`},
		{ActionKodiOff, `{"jsonrpc":"2.0","id":1,"method":"Application.Quit"}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			req, err := BuildRequest(NewInvocation(DeviceKodi, tt.action))
			require.NoError(t, err)
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, base+"/jsonrpc/", req.URL(base))
			assert.Equal(t, "application/json", req.ContentType)
			assert.JSONEq(t, tt.body, string(req.Body))
		})
	}
}

func TestBuildRequest_KodiIntrospectHasNoParams(t *testing.T) {
	req, err := BuildRequest(NewInvocation(DeviceKodi, ActionKodiIntrospect))
	require.NoError(t, err)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &msg))
	_, hasParams := msg["params"]
	assert.False(t, hasParams)
}

func TestBuildRequest_Invalid(t *testing.T) {
	_, err := BuildRequest(NewInvocation("tv", ActionCECOn))
	assert.ErrorIs(t, err, ErrUnknownDevice)

	_, err = BuildRequest(NewInvocation(DeviceCEC, ActionAVMute))
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = BuildRequest(NewInvocation(DeviceKodi, "off-introspect"))
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = BuildRequest(NewInvocation(DeviceAV, ActionAVOn).WithAddress(3))
	assert.ErrorIs(t, err, ErrUnexpectedAddress)
}

func TestBuildRequest_Idempotent(t *testing.T) {
	for _, d := range Devices() {
		for _, a := range Actions(d) {
			inv := NewInvocation(d, a)
			if a == ActionAVVolume {
				inv = inv.WithLevel(40)
			}

			first, err := BuildRequest(inv)
			require.NoError(t, err)
			second, err := BuildRequest(inv)
			require.NoError(t, err)

			assert.Equal(t, first, second, "%s %s", d, a)
		}
	}
}

func TestActions_ReturnsCopy(t *testing.T) {
	actions := Actions(DeviceCEC)
	actions[0] = "broken"

	assert.Equal(t, []Action{ActionCECOn, ActionCECOff}, Actions(DeviceCEC))
	assert.Nil(t, Actions("tv"))
}
