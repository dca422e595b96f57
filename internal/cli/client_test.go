package cli

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaiso/kptest/internal/domain"
)

func TestClient_Send_GET(t *testing.T) {
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cec/power-on", r.URL.Path)
		assert.Equal(t, "device=5", r.URL.RawQuery)
		gotRequestID = r.Header.Get(HeaderRequestID)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	req, err := domain.BuildRequest(domain.NewInvocation(domain.DeviceCEC, domain.ActionCECOn).WithAddress(5))
	require.NoError(t, err)

	body, err := NewClient().Send(context.Background(), server.URL, req)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	_, err = uuid.Parse(gotRequestID)
	assert.NoError(t, err, "request id should be a uuid")
}

func TestClient_Send_POSTBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/jsonrpc/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"method":"Application.SetMute","params":{"mute":true}}`, string(body))
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":true}`))
	}))
	defer server.Close()

	req, err := domain.BuildRequest(domain.NewInvocation(domain.DeviceKodi, domain.ActionKodiMute))
	require.NoError(t, err)

	body, err := NewClient().Send(context.Background(), server.URL, req)
	require.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"result":true}`, string(body))
}

func TestClient_Send_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Invalid device parameter"))
	}))
	defer server.Close()

	req, err := domain.BuildRequest(domain.NewInvocation(domain.DeviceCEC, domain.ActionCECOff))
	require.NoError(t, err)

	_, err = NewClient().Send(context.Background(), server.URL, req)
	require.Error(t, err)
	assert.True(t, IsHTTPError(err))

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "Invalid device parameter", httpErr.Body)
}

func TestClient_Send_ConnectionRefused(t *testing.T) {
	req, err := domain.BuildRequest(domain.NewInvocation(domain.DeviceAV, domain.ActionAVMute))
	require.NoError(t, err)

	_, err = NewClient().Send(context.Background(), "http://"+closedAddr(t), req)
	assert.ErrorIs(t, err, ErrTransport)
	assert.False(t, IsHTTPError(err))
}

func TestClient_Dispatch_InvalidInvocation(t *testing.T) {
	_, err := NewClient().Dispatch(context.Background(), domain.NewInvocation(domain.DeviceAV, domain.ActionAVVolume))
	assert.ErrorIs(t, err, ErrUsage)
}

func TestClient_BaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8079", NewClient().BaseURL(domain.DefaultPort))
	assert.Equal(t, "http://127.0.0.1:9000", NewClient(WithHost("127.0.0.1")).BaseURL(9000))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
	assert.Equal(t, 203, len(truncate(strings.Repeat("x", 500), maxErrorBody)))
}

// closedAddr возвращает адрес, на котором никто не слушает.
func closedAddr(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestClient_Dispatch_KeepsDomainError(t *testing.T) {
	_, err := NewClient().Dispatch(context.Background(), domain.NewInvocation(domain.DeviceAV, domain.ActionAVMute).WithLevel(3))
	assert.ErrorIs(t, err, ErrUsage)
	assert.ErrorIs(t, err, domain.ErrUnexpectedLevel)
}

func TestClient_WithHTTPClientTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))

	req, err := domain.BuildRequest(domain.NewInvocation(domain.DeviceCEC, domain.ActionCECOn))
	require.NoError(t, err)

	_, err = client.Send(context.Background(), server.URL, req)
	assert.ErrorIs(t, err, ErrTransport)
}
