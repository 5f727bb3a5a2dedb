package cms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент headless CMS
type Client struct {
	baseURL         string
	token           string
	defaultTimezone string
	httpClient      *http.Client
	log             Logger
}

// NewClient создает новый экземпляр клиента CMS
func NewClient(baseURL, token, defaultTimezone string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		token:           token,
		defaultTimezone: defaultTimezone,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailabilitySettings получает документ настроек доступности
// Некорректные записи документа пропускаются
func (c *Client) GetAvailabilitySettings(ctx context.Context) (*domain.AvailabilitySettings, error) {
	url := fmt.Sprintf("%s/availability-settings", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrSettingsNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var doc AvailabilitySettingsDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	settings, skipped := doc.ToDomain(c.defaultTimezone)
	if skipped > 0 {
		c.log.Warn("CMS: skipped %d malformed availability entries", skipped)
	}

	c.log.Info("CMS: loaded availability settings: startTimes=%d, openRanges=%d, closedDates=%d, blockedSlots=%d",
		len(settings.StartTimes), len(settings.OpenRanges), len(settings.ClosedDates), len(settings.BlockedSlots))

	return settings, nil
}
