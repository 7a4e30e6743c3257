package wayforpay

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Signer computes the keyed signatures the WayForPay protocol mandates:
// HMAC with an MD5 digest over the fields joined with ";". The digest
// algorithm is fixed by the gateway protocol, not chosen here.
type Signer struct {
	secret []byte
}

// NewSigner returns a Signer for the merchant secret. An empty secret is a
// configuration error: a request signed with an empty key would be silently
// wrong and accepted by nothing legitimate.
func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, fmt.Errorf("merchant secret is not configured")
	}
	return &Signer{secret: []byte(secret)}, nil
}

// Sign joins the fields with ";" and returns the lowercase hex HMAC-MD5
// digest of the resulting UTF-8 string.
func (s *Signer) Sign(fields []string) string {
	mac := hmac.New(md5.New, s.secret)
	mac.Write([]byte(strings.Join(fields, ";")))
	return hex.EncodeToString(mac.Sum(nil))
}

// PurchaseSignatureParams carries the fields of the purchase signature in
// protocol terms. Product arrays are parallel per line item.
type PurchaseSignatureParams struct {
	MerchantAccount string
	MerchantDomain  string
	OrderReference  string
	OrderDate       int64
	Amount          int
	Currency        string
	ProductNames    []string
	ProductCounts   []int
	ProductPrices   []int
}

// PurchaseSignature signs a payment-initiation request. The gateway
// mandates all names first, then all counts, then all prices — not
// interleaved per line item.
func (s *Signer) PurchaseSignature(p PurchaseSignatureParams) string {
	fields := []string{
		p.MerchantAccount,
		p.MerchantDomain,
		p.OrderReference,
		strconv.FormatInt(p.OrderDate, 10),
		strconv.Itoa(p.Amount),
		p.Currency,
	}
	fields = append(fields, p.ProductNames...)
	for _, count := range p.ProductCounts {
		fields = append(fields, strconv.Itoa(count))
	}
	for _, price := range p.ProductPrices {
		fields = append(fields, strconv.Itoa(price))
	}
	return s.Sign(fields)
}

// CallbackSignature recomputes the signature the gateway asserts on an
// inbound callback.
func (s *Signer) CallbackSignature(cb *CallbackPayload) string {
	return s.Sign([]string{
		cb.MerchantAccount,
		cb.OrderReference,
		FormatAmount(cb.AmountValue()),
		cb.Currency,
		cb.AuthCode,
		cb.CardPan,
		cb.TransactionStatus,
		strconv.Itoa(cb.ReasonCode),
	})
}

// VerifyCallback reports whether the payload's asserted signature matches
// the recomputed one. Exact string equality, case-sensitive, no
// normalization.
func (s *Signer) VerifyCallback(cb *CallbackPayload) bool {
	return s.CallbackSignature(cb) == cb.MerchantSignature
}

// ResponseSignature signs the callback acknowledgement.
func (s *Signer) ResponseSignature(orderReference, status string, t int64) string {
	return s.Sign([]string{orderReference, status, strconv.FormatInt(t, 10)})
}

// FormatAmount renders an amount the way the gateway serializes numbers:
// integers without a decimal part, fractional amounts with minimal digits.
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
