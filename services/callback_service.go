package services

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"course-payment-service/models"
	"course-payment-service/repository"
	"course-payment-service/wayforpay"

	"go.uber.org/zap"
)

// OperatorNotifier delivers the fire-and-forget payment alert to the
// operator channel. Implementations return errors, never panic past their
// boundary.
type OperatorNotifier interface {
	SendPaymentAlert(ctx context.Context, cb *wayforpay.CallbackPayload, productName string) error
}

// ConfirmationParams describes a purchase-confirmation email.
type ConfirmationParams struct {
	To             string
	ProductName    string
	Amount         float64
	Currency       string
	OrderReference string
}

// ConfirmationMailer sends the customer purchase-confirmation email.
type ConfirmationMailer interface {
	SendPurchaseConfirmation(ctx context.Context, p ConfirmationParams) error
}

// CallbackService runs the verified-callback pipeline.
type CallbackService interface {
	HandleCallback(ctx context.Context, cb *wayforpay.CallbackPayload) (*wayforpay.ResponseAck, *ServiceError)
}

type callbackServiceImpl struct {
	signer            GatewaySigner
	orders            repository.OrderRepository
	notifier          OperatorNotifier
	mailer            ConfirmationMailer
	tiers             map[string]models.PricingTier
	logger            *zap.Logger
	now               func() time.Time
	sideEffectTimeout time.Duration
}

func NewCallbackService(
	signer GatewaySigner,
	orders repository.OrderRepository,
	notifier OperatorNotifier,
	mailer ConfirmationMailer,
	tiers map[string]models.PricingTier,
	logger *zap.Logger,
) CallbackService {
	return &callbackServiceImpl{
		signer:            signer,
		orders:            orders,
		notifier:          notifier,
		mailer:            mailer,
		tiers:             tiers,
		logger:            logger,
		now:               time.Now,
		sideEffectTimeout: 10 * time.Second,
	}
}

var tierPrefix = regexp.MustCompile(`^(?i)(basic|premium|vip)_`)

// Display fallback when the order reference carries no known tier prefix.
const fallbackProductName = "Невідомий"

// HandleCallback gates the payload on its signature, then runs order
// reconciliation and notification dispatch concurrently (they have no data
// dependency), and finally produces the signed acknowledgement. Structural
// validation happens at the binding layer before this is called; the two
// phases never swap.
func (s *callbackServiceImpl) HandleCallback(ctx context.Context, cb *wayforpay.CallbackPayload) (*wayforpay.ResponseAck, *ServiceError) {
	if !s.signer.VerifyCallback(cb) {
		// Full context server-side; the caller gets no hint which field
		// caused the mismatch.
		s.logger.Warn("Callback signature mismatch",
			zap.String("order_reference", cb.OrderReference),
			zap.String("transaction_status", cb.TransactionStatus),
			zap.Float64("amount", cb.AmountValue()),
		)
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid signature"}
	}

	product := s.productName(cb.OrderReference)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.reconcile(ctx, cb, product)
	}()
	go func() {
		defer wg.Done()
		s.dispatchNotifications(ctx, cb, product)
	}()
	wg.Wait()

	t := s.now().Unix()
	return &wayforpay.ResponseAck{
		OrderReference: cb.OrderReference,
		Status:         "accept",
		Time:           t,
		Signature:      s.signer.ResponseSignature(cb.OrderReference, "accept", t),
	}, nil
}

// productName derives a display name from the order reference's tier
// prefix. Cosmetic only, not a security check.
func (s *callbackServiceImpl) productName(orderReference string) string {
	m := tierPrefix.FindStringSubmatch(orderReference)
	if m == nil {
		return fallbackProductName
	}
	if tier, ok := s.tiers[strings.ToLower(m[1])]; ok {
		return tier.Title
	}
	return fallbackProductName
}

// reconcile upserts the order row. A persistence failure is logged and
// swallowed: the payment already settled at the gateway, and failing the
// ack here would only make the gateway redeliver and risk duplicate
// customer-facing notifications.
func (s *callbackServiceImpl) reconcile(ctx context.Context, cb *wayforpay.CallbackPayload, product string) {
	ctx, cancel := context.WithTimeout(ctx, s.sideEffectTimeout)
	defer cancel()

	order := &models.Order{
		OrderReference: cb.OrderReference,
		Amount:         cb.AmountValue(),
		Currency:       cb.Currency,
		Status:         cb.TransactionStatus,
		CustomerEmail:  nullable(cb.Email),
		CustomerPhone:  nullable(cb.Phone),
		ProductName:    nullable(product),
		CardPan:        nullable(cb.CardPan),
		CardType:       nullable(cb.CardType),
		PaymentSystem:  nullable(cb.PaymentSystem),
	}
	if cb.ProcessingDate > 0 {
		processedAt := time.Unix(cb.ProcessingDate, 0).UTC()
		order.ProcessedAt = &processedAt
	}

	if err := s.orders.Upsert(ctx, order); err != nil {
		s.logger.Error("Failed to persist order",
			zap.String("order_reference", cb.OrderReference),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Order reconciled",
		zap.String("order_reference", cb.OrderReference),
		zap.String("status", cb.TransactionStatus),
	)
}

// dispatchNotifications maps the transaction status to side effects.
// Approved gets the operator alert plus, when an email is present, the
// confirmation email; Declined and Refunded get the alert only; everything
// else is a logged no-op. Each side effect is fault-isolated.
func (s *callbackServiceImpl) dispatchNotifications(ctx context.Context, cb *wayforpay.CallbackPayload, product string) {
	switch cb.TransactionStatus {
	case wayforpay.StatusApproved:
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.sendAlert(ctx, cb, product)
		}()
		if cb.Email != "" {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.sendConfirmation(ctx, cb, product)
			}()
		}
		wg.Wait()
	case wayforpay.StatusDeclined, wayforpay.StatusRefunded:
		s.sendAlert(ctx, cb, product)
	default:
		s.logger.Info("No notification for transaction status",
			zap.String("order_reference", cb.OrderReference),
			zap.String("transaction_status", cb.TransactionStatus),
		)
	}
}

func (s *callbackServiceImpl) sendAlert(ctx context.Context, cb *wayforpay.CallbackPayload, product string) {
	ctx, cancel := context.WithTimeout(ctx, s.sideEffectTimeout)
	defer cancel()

	if err := s.notifier.SendPaymentAlert(ctx, cb, product); err != nil {
		s.logger.Error("Payment alert failed",
			zap.String("order_reference", cb.OrderReference),
			zap.Error(err),
		)
	}
}

func (s *callbackServiceImpl) sendConfirmation(ctx context.Context, cb *wayforpay.CallbackPayload, product string) {
	if s.mailer == nil {
		s.logger.Warn("Mailer not configured, skipping confirmation email",
			zap.String("order_reference", cb.OrderReference),
		)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.sideEffectTimeout)
	defer cancel()

	err := s.mailer.SendPurchaseConfirmation(ctx, ConfirmationParams{
		To:             cb.Email,
		ProductName:    product,
		Amount:         cb.AmountValue(),
		Currency:       cb.Currency,
		OrderReference: cb.OrderReference,
	})
	if err != nil {
		s.logger.Error("Confirmation email failed",
			zap.String("order_reference", cb.OrderReference),
			zap.Error(err),
		)
	}
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
