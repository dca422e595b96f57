package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/kptest/internal/domain"
	"github.com/shaiso/kptest/internal/telemetry"
)

const (
	defaultHost    = "localhost"
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 200

	// HeaderRequestID — заголовок для корреляции логов CLI и прокси.
	HeaderRequestID = "X-Request-ID"
)

// Client — HTTP-клиент для прокси.
//
// Не хранит состояния между вызовами: каждый Dispatch — ровно один запрос.
type Client struct {
	host       string
	httpClient *http.Client
}

// ClientOption настраивает Client.
type ClientOption func(*Client)

// WithHost задаёт хост прокси вместо localhost.
func WithHost(host string) ClientOption {
	return func(c *Client) {
		c.host = host
	}
}

// WithHTTPClient подменяет HTTP-клиент.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создаёт клиент для прокси на localhost.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		host: defaultHost,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL возвращает адрес прокси для порта.
func (c *Client) BaseURL(port int) string {
	return fmt.Sprintf("http://%s:%d", c.host, port)
}

// Dispatch строит запрос из Invocation, отправляет его и возвращает сырое тело ответа.
func (c *Client) Dispatch(ctx context.Context, inv domain.Invocation) ([]byte, error) {
	req, err := domain.BuildRequest(inv)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	logger := telemetry.WithDevice(telemetry.FromContext(ctx), string(inv.Device))
	ctx = telemetry.WithLogger(ctx, logger)

	return c.Send(ctx, c.BaseURL(inv.Port), req)
}

// Send выполняет запрос относительно baseURL.
//
// Ошибки соединения оборачиваются в ErrTransport, статус вне 2xx
// возвращается как *HTTPError. Повторов нет.
func (c *Client) Send(ctx context.Context, baseURL string, r domain.Request) ([]byte, error) {
	var bodyReader io.Reader
	if r.Body != nil {
		bodyReader = bytes.NewReader(r.Body)
	}

	target := r.URL(baseURL)
	req, err := http.NewRequestWithContext(ctx, r.Method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}

	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)

	logger := telemetry.WithRequestID(telemetry.FromContext(ctx), requestID)
	logger.Debug("sending request", "method", r.Method, "url", target)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	logger.Debug("response received",
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       truncate(string(body), maxErrorBody),
		}
	}

	return body, nil
}

// truncate обрезает строку до указанной длины.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
