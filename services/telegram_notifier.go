package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"course-payment-service/wayforpay"

	"go.uber.org/zap"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier posts payment alerts to the operator chat via the
// Telegram bot API.
type TelegramNotifier struct {
	BaseURL string

	botToken   string
	chatID     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewTelegramNotifier(botToken, chatID string, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		BaseURL:  telegramAPIBase,
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type telegramSendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendPaymentAlert sends the operator message for a verified callback.
// Missing bot credentials are a logged skip, not an error.
func (n *TelegramNotifier) SendPaymentAlert(ctx context.Context, cb *wayforpay.CallbackPayload, productName string) error {
	if n.botToken == "" || n.chatID == "" {
		n.logger.Warn("Telegram credentials not configured, skipping payment alert")
		return nil
	}

	body, err := json.Marshal(telegramSendMessageRequest{
		ChatID:    n.chatID,
		Text:      formatPaymentAlert(cb, productName),
		ParseMode: "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.BaseURL, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram send failed: status %d: %s", resp.StatusCode, detail)
	}

	return nil
}

func formatPaymentAlert(cb *wayforpay.CallbackPayload, productName string) string {
	statusEmoji := "❌"
	if cb.TransactionStatus == wayforpay.StatusApproved {
		statusEmoji = "✅"
	}

	lines := []string{
		"💰 Нова оплата!",
		"",
		"📦 Тариф: " + productName,
		fmt.Sprintf("💵 Сума: %s %s", wayforpay.FormatAmount(cb.AmountValue()), cb.Currency),
		"📋 Замовлення: " + cb.OrderReference,
		"📧 Email: " + orDefault(cb.Email, "Не вказано"),
		"📱 Телефон: " + orDefault(cb.Phone, "Не вказано"),
		"",
		fmt.Sprintf("%s Статус: %s", statusEmoji, cb.TransactionStatus),
	}
	if cb.TransactionStatus != wayforpay.StatusApproved {
		lines = append(lines, "❗ Причина: "+cb.Reason)
	}
	lines = append(lines,
		"🏦 Банк: "+orDefault(cb.IssuerBankName, "Невідомо"),
		"💳 Картка: "+cb.CardPan,
	)

	return strings.Join(lines, "\n")
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
