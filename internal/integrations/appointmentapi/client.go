package appointmentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с backend API записей.
// Таймаут транспорта - единственное ограничение времени запроса;
// отдельного дедлайна на отправку формы нет.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента backend API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBookedSlots получает занятые интервалы в диапазоне [from, to)
func (c *Client) GetBookedSlots(ctx context.Context, from, to time.Time) ([]domain.Interval, error) {
	query := url.Values{}
	query.Set("from", from.Format(time.RFC3339))
	query.Set("to", to.Format(time.RFC3339))
	reqURL := fmt.Sprintf("%s/api/v1/appointments/booked?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.serverError(resp)
	}

	var payload BookedSlotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	intervals := make([]domain.Interval, 0, len(payload.Slots))
	for _, slot := range payload.Slots {
		start, err := time.Parse(time.RFC3339, slot.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot start %q: %v", ErrInvalidResponse, slot.StartTime, err)
		}
		end, err := time.Parse(time.RFC3339, slot.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot end %q: %v", ErrInvalidResponse, slot.EndTime, err)
		}
		intervals = append(intervals, domain.Interval{Start: start, End: end})
	}

	return intervals, nil
}

// GetServices получает каталог услуг
func (c *Client) GetServices(ctx context.Context) ([]ServiceItem, error) {
	reqURL := fmt.Sprintf("%s/api/v1/services", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.serverError(resp)
	}

	var payload ServicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return payload.Services, nil
}

// CreateAppointment отправляет запрос на создание записи.
// 2xx → ответ с redirect-целью; не-2xx → *ServerError с сообщением сервера
// (если оно есть); транспортная ошибка → ErrRequestFailed.
func (c *Client) CreateAppointment(ctx context.Context, req *CreateAppointmentRequest) (*CreateAppointmentResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/api/v1/appointments", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.serverError(resp)
	}

	var payload CreateAppointmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &payload, nil
}

// serverError строит *ServerError из не-2xx ответа.
// Тело может быть не-JSON (например, от прокси) - тогда сообщение пустое
// и вызывающий код подставит общий текст.
func (c *Client) serverError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		c.log.Warn("appointmentapi: non-JSON error body for status %d", resp.StatusCode)
		return &ServerError{StatusCode: resp.StatusCode}
	}

	return &ServerError{StatusCode: resp.StatusCode, Message: errResp.Error}
}
