package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 5 * time.Second

// TelegramSender posts messages to a Telegram chat via the Bot API.
type TelegramSender struct {
	botToken string
	chatID   string
	client   *http.Client
	baseURL  string
}

// NewTelegramSender creates a sender. An empty token or chat id leaves the
// sender disabled; Send becomes a no-op.
func NewTelegramSender(botToken, chatID string, timeout time.Duration) *TelegramSender {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &TelegramSender{
		botToken: botToken,
		chatID:   chatID,
		client:   &http.Client{Timeout: timeout},
		baseURL:  "https://api.telegram.org",
	}
}

// Enabled reports whether the sender is configured.
func (s *TelegramSender) Enabled() bool {
	return s != nil && s.botToken != "" && s.chatID != ""
}

// SendMessage delivers one text message to the configured chat.
func (s *TelegramSender) SendMessage(ctx context.Context, text string) error {
	if !s.Enabled() {
		return nil
	}

	payload := map[string]interface{}{
		"chat_id": s.chatID,
		"text":    text,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram sendMessage failed: status=%d body=%s", resp.StatusCode, string(data))
	}
	return nil
}
