package services_test

import (
	"context"
	"net/http"
	"regexp"
	"testing"

	"course-payment-service/config"
	"course-payment-service/models"
	"course-payment-service/services"
	"course-payment-service/wayforpay"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "flk3409refn54t54t*FNJRET"

// ---- counting signer mock ----

type countingSigner struct {
	purchaseCalls int
	callbackCalls int
	responseCalls int
}

func (s *countingSigner) PurchaseSignature(_ wayforpay.PurchaseSignatureParams) string {
	s.purchaseCalls++
	return "sig"
}
func (s *countingSigner) CallbackSignature(_ *wayforpay.CallbackPayload) string {
	s.callbackCalls++
	return "sig"
}
func (s *countingSigner) VerifyCallback(_ *wayforpay.CallbackPayload) bool {
	s.callbackCalls++
	return false
}
func (s *countingSigner) ResponseSignature(_, _ string, _ int64) string {
	s.responseCalls++
	return "sig"
}

// ---- helpers ----

func testConfig() *config.Config {
	return &config.Config{
		MerchantLogin:  "test_merch_n1",
		MerchantDomain: "www.market.ua",
		MerchantSecret: testSecret,
		PublicBaseURL:  "https://course.example.com",
	}
}

func realSigner(t *testing.T) *wayforpay.Signer {
	t.Helper()
	s, err := wayforpay.NewSigner(testSecret)
	assert.NoError(t, err)
	return s
}

// ---- tests ----

func TestBuildPurchaseRequest_BasicTier(t *testing.T) {
	signer := realSigner(t)
	svc := services.NewPurchaseService(testConfig(), signer, models.DefaultPricingTiers(), zap.NewNop())

	req, svcErr := svc.BuildPurchaseRequest(context.Background(), "basic")
	assert.Nil(t, svcErr)

	assert.Equal(t, "test_merch_n1", req.MerchantAccount)
	assert.Equal(t, "www.market.ua", req.MerchantDomainName)
	assert.Equal(t, 799, req.Amount)
	assert.Equal(t, "UAH", req.Currency)
	assert.Equal(t, []string{`Курс "Базовий"`}, req.ProductName)
	assert.Equal(t, []int{799}, req.ProductPrice)
	assert.Equal(t, []int{1}, req.ProductCount)
	assert.Regexp(t, regexp.MustCompile(`^basic_\d+$`), req.OrderReference)
	assert.Equal(t, "UA", req.Language)
}

// The returned signature must verify against a recomputation over the
// returned fields with the same secret.
func TestBuildPurchaseRequest_SignatureRoundTrip(t *testing.T) {
	signer := realSigner(t)
	svc := services.NewPurchaseService(testConfig(), signer, models.DefaultPricingTiers(), zap.NewNop())

	req, svcErr := svc.BuildPurchaseRequest(context.Background(), "premium")
	assert.Nil(t, svcErr)

	expected := signer.PurchaseSignature(wayforpay.PurchaseSignatureParams{
		MerchantAccount: req.MerchantAccount,
		MerchantDomain:  req.MerchantDomainName,
		OrderReference:  req.OrderReference,
		OrderDate:       req.OrderDate,
		Amount:          req.Amount,
		Currency:        req.Currency,
		ProductNames:    req.ProductName,
		ProductCounts:   req.ProductCount,
		ProductPrices:   req.ProductPrice,
	})
	assert.Equal(t, expected, req.MerchantSignature)
}

func TestBuildPurchaseRequest_URLsFromConfiguredBase(t *testing.T) {
	signer := realSigner(t)
	svc := services.NewPurchaseService(testConfig(), signer, models.DefaultPricingTiers(), zap.NewNop())

	req, svcErr := svc.BuildPurchaseRequest(context.Background(), "vip")
	assert.Nil(t, svcErr)

	assert.Equal(t, 12999, req.Amount)
	assert.Equal(t, "https://course.example.com/payment/success/callback", req.ReturnURL)
	assert.Equal(t, "https://course.example.com/payment/success/callback", req.ApprovedURL)
	assert.Equal(t, "https://course.example.com/payment/failure/callback", req.DeclinedURL)
	assert.Equal(t, "https://course.example.com/api/payments/callback", req.ServiceURL)
}

func TestBuildPurchaseRequest_UnknownTier(t *testing.T) {
	signer := &countingSigner{}
	svc := services.NewPurchaseService(testConfig(), signer, models.DefaultPricingTiers(), zap.NewNop())

	req, svcErr := svc.BuildPurchaseRequest(context.Background(), "platinum")
	assert.Nil(t, req)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	// rejected before any signature work
	assert.Equal(t, 0, signer.purchaseCalls)
}
