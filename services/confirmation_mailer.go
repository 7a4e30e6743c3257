package services

import (
	"context"
	"fmt"
	"strings"

	"course-payment-service/repository"
	"course-payment-service/sender"
	"course-payment-service/wayforpay"

	"go.uber.org/zap"
)

const purchaseConfirmationSlug = "purchase_confirmation"

// TemplatedMailer sends the purchase-confirmation email by looking up the
// active template and substituting its {{variable}} placeholders.
type TemplatedMailer struct {
	templates repository.EmailTemplateRepository
	sender    sender.EmailSender
	logger    *zap.Logger
}

func NewTemplatedMailer(templates repository.EmailTemplateRepository, s sender.EmailSender, logger *zap.Logger) *TemplatedMailer {
	return &TemplatedMailer{
		templates: templates,
		sender:    s,
		logger:    logger,
	}
}

func (m *TemplatedMailer) SendPurchaseConfirmation(ctx context.Context, p ConfirmationParams) error {
	tpl, err := m.templates.FindActiveBySlug(ctx, purchaseConfirmationSlug)
	if err != nil {
		return fmt.Errorf("template %q lookup failed: %w", purchaseConfirmationSlug, err)
	}

	r := strings.NewReplacer(
		"{{product_name}}", p.ProductName,
		"{{amount}}", wayforpay.FormatAmount(p.Amount),
		"{{currency}}", p.Currency,
		"{{order_reference}}", p.OrderReference,
		"{{customer_name}}", "",
		"{{customer_email}}", p.To,
	)

	if _, err := m.sender.SendEmail(ctx, p.To, r.Replace(tpl.Subject), r.Replace(tpl.BodyHTML)); err != nil {
		return err
	}

	m.logger.Info("Purchase confirmation sent",
		zap.String("order_reference", p.OrderReference),
	)
	return nil
}
