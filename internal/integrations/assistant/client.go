package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с сервисом-ассистентом, классифицирующим
// гостевые вопросы
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ассистента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Classify отправляет текст вопроса ассистенту и возвращает распознанное
// намерение и готовый ответ
func (c *Client) Classify(ctx context.Context, hotelID int64, query string) (*Classification, error) {
	url := fmt.Sprintf("%s/internal/assistant/classify", c.baseURL)

	payload, err := json.Marshal(ClassifyRequest{HotelID: hotelID, Query: query})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
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
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid query payload", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var classification Classification
	if err := json.NewDecoder(resp.Body).Decode(&classification); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &classification, nil
}

// ClassifyWithGracefulDegradation классифицирует вопрос с graceful degradation.
// При недоступности ассистента возвращает ErrServiceDegraded, что позволяет
// сервису ответить шаблоном с намерением "general" вместо отказа гостю.
func (c *Client) ClassifyWithGracefulDegradation(ctx context.Context, hotelID int64, query string) (*Classification, error) {
	c.log.Info("Classifying guest query for hotel_id=%d", hotelID)

	classification, err := c.Classify(ctx, hotelID, query)
	if err != nil {
		// Для всех ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Assistant unavailable, applying graceful degradation for hotel_id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: hotel_id=%d, error=%v", ErrServiceDegraded, hotelID, err)
	}

	c.log.Info("Successfully classified query for hotel_id=%d, intent=%s", hotelID, classification.Intent)
	return classification, nil
}
