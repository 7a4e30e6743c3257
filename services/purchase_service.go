package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"course-payment-service/config"
	"course-payment-service/models"
	"course-payment-service/wayforpay"

	"go.uber.org/zap"
)

// GatewaySigner is the slice of the signature engine the services depend on.
type GatewaySigner interface {
	PurchaseSignature(p wayforpay.PurchaseSignatureParams) string
	CallbackSignature(cb *wayforpay.CallbackPayload) string
	VerifyCallback(cb *wayforpay.CallbackPayload) bool
	ResponseSignature(orderReference, status string, t int64) string
}

// PurchaseService builds signed payment-initiation requests.
type PurchaseService interface {
	BuildPurchaseRequest(ctx context.Context, tier string) (*wayforpay.PurchaseRequest, *ServiceError)
}

type purchaseServiceImpl struct {
	cfg    *config.Config
	signer GatewaySigner
	tiers  map[string]models.PricingTier
	logger *zap.Logger
	now    func() time.Time
}

func NewPurchaseService(cfg *config.Config, signer GatewaySigner, tiers map[string]models.PricingTier, logger *zap.Logger) PurchaseService {
	return &purchaseServiceImpl{
		cfg:    cfg,
		signer: signer,
		tiers:  tiers,
		logger: logger,
		now:    time.Now,
	}
}

// BuildPurchaseRequest assembles the signed form payload for a pricing
// tier. The tier must be a known key before any signature work happens.
// The order reference generated here is the idempotency key for every
// downstream operation on this purchase.
func (s *purchaseServiceImpl) BuildPurchaseRequest(_ context.Context, tier string) (*wayforpay.PurchaseRequest, *ServiceError) {
	tierCfg, ok := s.tiers[tier]
	if !ok {
		s.logger.Warn("Purchase requested for unknown tier", zap.String("tier", tier))
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid tier"}
	}

	now := s.now()
	orderReference := fmt.Sprintf("%s_%d", tier, now.UnixMilli())
	orderDate := now.Unix()
	const currency = "UAH"

	productNames := []string{`Курс "` + tierCfg.Title + `"`}
	productPrices := []int{tierCfg.Price}
	productCounts := []int{1}

	signature := s.signer.PurchaseSignature(wayforpay.PurchaseSignatureParams{
		MerchantAccount: s.cfg.MerchantLogin,
		MerchantDomain:  s.cfg.MerchantDomain,
		OrderReference:  orderReference,
		OrderDate:       orderDate,
		Amount:          tierCfg.Price,
		Currency:        currency,
		ProductNames:    productNames,
		ProductCounts:   productCounts,
		ProductPrices:   productPrices,
	})

	// Return/callback URLs come from server configuration only; the
	// client's Origin/Referer headers are never consulted.
	base := s.cfg.PublicBaseURL

	req := &wayforpay.PurchaseRequest{
		MerchantAccount:    s.cfg.MerchantLogin,
		MerchantDomainName: s.cfg.MerchantDomain,
		MerchantSignature:  signature,
		OrderReference:     orderReference,
		OrderDate:          orderDate,
		Amount:             tierCfg.Price,
		Currency:           currency,
		ProductName:        productNames,
		ProductPrice:       productPrices,
		ProductCount:       productCounts,
		ReturnURL:          base + "/payment/success/callback",
		ApprovedURL:        base + "/payment/success/callback",
		DeclinedURL:        base + "/payment/failure/callback",
		ServiceURL:         base + "/api/payments/callback",
		Language:           "UA",
	}

	s.logger.Info("Purchase request built",
		zap.String("tier", tier),
		zap.String("order_reference", orderReference),
		zap.Int("amount", tierCfg.Price),
	)

	return req, nil
}
