package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "speakyz-backend/internal/common/errors"
)

const defaultBaseURL = "https://api.telegram.org"

// Client — минимальный клиент Telegram Bot API поверх net/http.
type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
}

// Response представляет ответ от Telegram API
type Response struct {
	Ok          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
}

func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{
			// Длинные опросы getUpdates держат соединение дольше
			// обычного запроса, таймаут должен это учитывать.
			Timeout: 60 * time.Second,
		},
		token:   token,
		baseURL: defaultBaseURL,
	}
}

// call выполняет метод Bot API и возвращает сырой result.
func (c *Client) call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s params: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeTelegramAPI, "failed to call %s", method)
	}
	defer resp.Body.Close()

	var apiResp Response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeTelegramAPI, "failed to decode %s response", method)
	}

	if !apiResp.Ok {
		return nil, apperrors.New(apperrors.ErrCodeTelegramAPI, fmt.Sprintf("%s: %s", method, apiResp.Description)).
			WithDetail("error_code", apiResp.ErrorCode)
	}

	return apiResp.Result, nil
}

// GetUpdates выполняет длинный опрос обновлений начиная с offset.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeoutSeconds int) ([]Update, error) {
	params := map[string]interface{}{
		"offset":          offset,
		"timeout":         timeoutSeconds,
		"allowed_updates": []string{"message", "callback_query"},
	}

	result, err := c.call(ctx, "getUpdates", params)
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updates: %w", err)
	}

	return updates, nil
}

// SendMessage отправляет текстовое сообщение с опциональной клавиатурой.
func (c *Client) SendMessage(ctx context.Context, params SendMessageParams) error {
	_, err := c.call(ctx, "sendMessage", params)
	return err
}

// EditMessageText редактирует текст ранее отправленного сообщения.
func (c *Client) EditMessageText(ctx context.Context, params EditMessageTextParams) error {
	_, err := c.call(ctx, "editMessageText", params)
	return err
}

// AnswerCallbackQuery подтверждает нажатие inline-кнопки.
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID, text string) error {
	params := map[string]interface{}{
		"callback_query_id": callbackID,
	}
	if text != "" {
		params["text"] = text
	}

	_, err := c.call(ctx, "answerCallbackQuery", params)
	return err
}

// DeleteWebhook отключает webhook перед запуском длинного опроса.
func (c *Client) DeleteWebhook(ctx context.Context, dropPending bool) error {
	_, err := c.call(ctx, "deleteWebhook", map[string]interface{}{
		"drop_pending_updates": dropPending,
	})
	return err
}
