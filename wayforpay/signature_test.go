package wayforpay_test

import (
	"testing"

	"course-payment-service/wayforpay"

	"github.com/stretchr/testify/assert"
)

// WayForPay's published sandbox secret; safe to hardcode in tests.
const testSecret = "flk3409refn54t54t*FNJRET"

func newSigner(t *testing.T) *wayforpay.Signer {
	t.Helper()
	s, err := wayforpay.NewSigner(testSecret)
	assert.NoError(t, err)
	return s
}

func validCallback() *wayforpay.CallbackPayload {
	return &wayforpay.CallbackPayload{
		MerchantAccount:   "test_merch_n1",
		OrderReference:    "basic_1700000000000",
		Amount:            wayforpay.Float64(799),
		Currency:          "UAH",
		AuthCode:          "541963",
		CardPan:           "444455XXXXXX1111",
		TransactionStatus: wayforpay.StatusApproved,
		ReasonCode:        1100,
	}
}

func TestNewSigner_EmptySecret(t *testing.T) {
	s, err := wayforpay.NewSigner("")
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestSign_KnownVector(t *testing.T) {
	s := newSigner(t)
	assert.Equal(t, "d27cdf8e4b46a56165c482d6bc4bad1f", s.Sign([]string{"a", "b", "c"}))
}

func TestSign_Deterministic(t *testing.T) {
	s := newSigner(t)
	fields := []string{"test_merch_n1", "order_1", "100", "UAH"}
	assert.Equal(t, s.Sign(fields), s.Sign(fields))
}

func TestPurchaseSignature_KnownVector(t *testing.T) {
	s := newSigner(t)

	sig := s.PurchaseSignature(wayforpay.PurchaseSignatureParams{
		MerchantAccount: "test_merch_n1",
		MerchantDomain:  "www.market.ua",
		OrderReference:  "basic_1700000000000",
		OrderDate:       1700000000,
		Amount:          799,
		Currency:        "UAH",
		ProductNames:    []string{`Курс "Базовий"`},
		ProductCounts:   []int{1},
		ProductPrices:   []int{799},
	})

	assert.Equal(t, "50193bcbd60fc5142f19e5a622ac61f9", sig)
}

// Product fields are grouped by kind, not interleaved per line item.
func TestPurchaseSignature_MultiItemFieldOrder(t *testing.T) {
	s := newSigner(t)

	sig := s.PurchaseSignature(wayforpay.PurchaseSignatureParams{
		MerchantAccount: "m",
		MerchantDomain:  "d",
		OrderReference:  "ref",
		OrderDate:       10,
		Amount:          30,
		Currency:        "UAH",
		ProductNames:    []string{"A", "B"},
		ProductCounts:   []int{1, 2},
		ProductPrices:   []int{10, 20},
	})

	// names, then counts, then prices
	assert.Equal(t, s.Sign([]string{"m", "d", "ref", "10", "30", "UAH", "A", "B", "1", "2", "10", "20"}), sig)
}

func TestCallbackSignature_KnownVector(t *testing.T) {
	s := newSigner(t)
	assert.Equal(t, "0f9a87db7f50c5186c9962460bcd7c83", s.CallbackSignature(validCallback()))
}

func TestResponseSignature_KnownVector(t *testing.T) {
	s := newSigner(t)
	assert.Equal(t, "98aec6a7ab6c047657e51bc77f9f3a2d", s.ResponseSignature("basic_1700000000000", "accept", 1700000100))
}

func TestVerifyCallback_RoundTrip(t *testing.T) {
	s := newSigner(t)
	cb := validCallback()
	cb.MerchantSignature = s.CallbackSignature(cb)
	assert.True(t, s.VerifyCallback(cb))
}

func TestVerifyCallback_TamperSensitivity(t *testing.T) {
	s := newSigner(t)

	tests := []struct {
		name   string
		mutate func(cb *wayforpay.CallbackPayload)
	}{
		{"amount changed", func(cb *wayforpay.CallbackPayload) { cb.Amount = wayforpay.Float64(800) }},
		{"card pan changed", func(cb *wayforpay.CallbackPayload) { cb.CardPan = "444455XXXXXX1112" }},
		{"status changed", func(cb *wayforpay.CallbackPayload) { cb.TransactionStatus = wayforpay.StatusDeclined }},
		{"order reference changed", func(cb *wayforpay.CallbackPayload) { cb.OrderReference = "basic_1700000000001" }},
		{"reason code changed", func(cb *wayforpay.CallbackPayload) { cb.ReasonCode = 1101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := validCallback()
			cb.MerchantSignature = s.CallbackSignature(cb)
			tt.mutate(cb)
			assert.False(t, s.VerifyCallback(cb))
		})
	}
}

func TestVerifyCallback_SignatureCaseSensitive(t *testing.T) {
	s := newSigner(t)
	cb := validCallback()
	cb.MerchantSignature = "0F9A87DB7F50C5186C9962460BCD7C83"
	assert.False(t, s.VerifyCallback(cb))
}

func TestVerifyCallback_DifferentSecret(t *testing.T) {
	s := newSigner(t)
	other, err := wayforpay.NewSigner("some-other-secret")
	assert.NoError(t, err)

	cb := validCallback()
	cb.MerchantSignature = other.CallbackSignature(cb)
	assert.False(t, s.VerifyCallback(cb))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "799", wayforpay.FormatAmount(799))
	assert.Equal(t, "799.5", wayforpay.FormatAmount(799.5))
	assert.Equal(t, "0.1", wayforpay.FormatAmount(0.1))
	assert.Equal(t, "12999", wayforpay.FormatAmount(12999))
}
