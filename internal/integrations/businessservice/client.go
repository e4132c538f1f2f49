package businessservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с BusinessService
// BusinessService владеет бизнесами, их владельцами и публичными booking link'ами;
// этот сервис только читает их
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BusinessService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBusiness получает бизнес по ID
func (c *Client) GetBusiness(ctx context.Context, businessID int64) (*Business, error) {
	endpoint := fmt.Sprintf("%s/internal/businesses/%d", c.baseURL, businessID)
	return c.fetchBusiness(ctx, endpoint, ErrBusinessNotFound)
}

// ResolveBookingLink находит бизнес по публичному slug страницы бронирования
func (c *Client) ResolveBookingLink(ctx context.Context, bookingLink string) (*Business, error) {
	endpoint := fmt.Sprintf("%s/internal/businesses/by-link/%s", c.baseURL, url.PathEscape(bookingLink))
	return c.fetchBusiness(ctx, endpoint, ErrBookingLinkNotFound)
}

func (c *Client) fetchBusiness(ctx context.Context, endpoint string, notFound error) (*Business, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var business Business
	if err := json.NewDecoder(resp.Body).Decode(&business); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Валидируем форму ответа на границе I/O, чтобы некорректные данные
	// не проникали в логику планирования
	if business.ID <= 0 || business.OwnerID <= 0 {
		return nil, fmt.Errorf("%w: business payload missing id or owner_id", ErrInvalidResponse)
	}

	return &business, nil
}
