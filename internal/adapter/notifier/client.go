// Package notifier talks to the external notification service that
// owns customer email delivery. Delivery is best-effort from the point
// of view of the order flow.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/polkiloo/storemart/internal/domain/model"
)

// ErrRejected indicates the notification service refused the payload.
var ErrRejected = errors.New("notification rejected")

// TooManyRequestsError represents a rate limiting signal from the service.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client exposes the notification operations the order flow needs.
type Client interface {
	OrderStatusChanged(ctx context.Context, order *model.Order, previous model.OrderStatus) error
}

// HTTPClient implements Client via the notification service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// payload mirrors the JSON body the notification service accepts.
type payload struct {
	Email          string `json:"email"`
	OrderNumber    string `json:"order_number"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
}

// NewHTTPClient creates an HTTP notifier client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse notifier url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("notifier url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// OrderStatusChanged posts a status-change notification for the order's owner.
func (c *HTTPClient) OrderStatusChanged(ctx context.Context, order *model.Order, previous model.OrderStatus) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/notifications/order-status")

	body, err := json.Marshal(payload{
		Email:          order.UserEmail,
		OrderNumber:    order.Number,
		PreviousStatus: string(previous),
		NewStatus:      string(order.Status),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusTooManyRequests:
		return TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrRejected
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("notification request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(respBody)))
		return fmt.Errorf("notifier error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}

// NopClient is used when no notifier address is configured.
type NopClient struct{}

func (NopClient) OrderStatusChanged(context.Context, *model.Order, model.OrderStatus) error {
	return nil
}
